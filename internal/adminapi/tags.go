package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastedir/catalogd/internal/webserver"
)

type tagCreatePayload struct {
	BusinessID int64  `json:"businessId"`
	Title      string `json:"title" validate:"omitempty,max=45"`
}

type tagUpdatePayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title" validate:"omitempty,max=45"`
}

func registerTagRoutes() {
	webserver.ApiGET("/tags", listTags)
	webserver.ApiPOST("/tags", createTag)
	webserver.ApiPUT("/tags", updateTag)
	webserver.ApiDELETE("/tags", deleteTag)
}

func listTags(c echo.Context) error {
	businessID := parseBusinessID(c)
	if businessID == 0 {
		return fail(c, http.StatusBadRequest, "Missing businessId")
	}

	tags, err := srv.ListTags(c.Request().Context(), businessID)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, tags)
}

func createTag(c echo.Context) error {
	var payload tagCreatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse tag")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	tag, err := srv.CreateTag(c.Request().Context(), payload.BusinessID, payload.Title)
	if err != nil {
		return handleError(c, err)
	}
	return created(c, tag)
}

func updateTag(c echo.Context) error {
	var payload tagUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse tag")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}
	if payload.ID <= 0 {
		return fail(c, http.StatusBadRequest, "Missing tag id")
	}

	tag, err := srv.UpdateTag(c.Request().Context(), payload.ID, payload.Title)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, tag)
}

func deleteTag(c echo.Context) error {
	var payload idPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse request")
	}
	if payload.ID <= 0 {
		return fail(c, http.StatusBadRequest, "Missing tag id")
	}

	if err := srv.DeleteTag(c.Request().Context(), payload.ID); err != nil {
		return handleError(c, err)
	}
	return ok(c, map[string]interface{}{"success": true})
}
