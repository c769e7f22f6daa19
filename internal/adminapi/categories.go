package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastedir/catalogd/internal/catalog"
	"github.com/tastedir/catalogd/internal/webserver"
)

type categoryCreatePayload struct {
	BusinessID  int64   `json:"businessId"`
	Title       string  `json:"title" validate:"omitempty,max=45"`
	Description string  `json:"description" validate:"omitempty,max=255"`
	Pic         string  `json:"pic" validate:"omitempty,max=255"`
	Status      *int    `json:"status"`
	TagIDs      []int64 `json:"tag_ids"`
}

type categoryUpdatePayload struct {
	ID              int64   `json:"id"`
	Title           *string `json:"title" validate:"omitempty,max=45"`
	Description     *string `json:"description" validate:"omitempty,max=255"`
	Pic             *string `json:"pic" validate:"omitempty,max=255"`
	Status          *int    `json:"status"`
	TagIDs          []int64 `json:"tag_ids"`
	UpdateImageOnly bool    `json:"updateImageOnly"`
}

func registerCategoryRoutes() {
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiPOST("/categories", createCategory)
	webserver.ApiPUT("/categories", updateCategory)
	webserver.ApiDELETE("/categories", deleteCategory)
}

func listCategories(c echo.Context) error {
	businessID := parseBusinessID(c)
	if businessID == 0 {
		return fail(c, http.StatusBadRequest, "Missing businessId")
	}

	categories, err := srv.ListCategories(c.Request().Context(), businessID)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, categories)
}

func createCategory(c echo.Context) error {
	var payload categoryCreatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse category")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	category, err := srv.CreateCategory(c.Request().Context(), catalog.CategoryCreate{
		BusinessID:  payload.BusinessID,
		Title:       payload.Title,
		Description: payload.Description,
		Pic:         payload.Pic,
		Status:      payload.Status,
		TagIDs:      payload.TagIDs,
	})
	if err != nil {
		return handleError(c, err)
	}
	return created(c, category)
}

func updateCategory(c echo.Context) error {
	var payload categoryUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse category")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}
	if payload.ID <= 0 {
		return fail(c, http.StatusBadRequest, "Missing category id")
	}

	category, err := srv.UpdateCategory(c.Request().Context(), catalog.CategoryUpdate{
		ID:          payload.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Pic:         payload.Pic,
		Status:      payload.Status,
		TagIDs:      payload.TagIDs,
		ImageOnly:   payload.UpdateImageOnly,
	})
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, category)
}

func deleteCategory(c echo.Context) error {
	var payload idPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse request")
	}
	if payload.ID <= 0 {
		return fail(c, http.StatusBadRequest, "Missing category id")
	}

	if err := srv.DeleteCategory(c.Request().Context(), payload.ID); err != nil {
		return handleError(c, err)
	}
	return ok(c, map[string]interface{}{"success": true})
}
