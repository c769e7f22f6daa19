package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastedir/catalogd/internal/catalog"
	"github.com/tastedir/catalogd/internal/webserver"
)

type productCreatePayload struct {
	BusinessID  int64    `json:"businessId"`
	Title       string   `json:"title" validate:"omitempty,max=100"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"product_price"`
	Pic         string   `json:"pic" validate:"omitempty,max=255"`
	CategoryID  *int64   `json:"category_id"`
	TagIDs      []int64  `json:"tag_ids"`
}

type productUpdatePayload struct {
	ID              int64    `json:"id"`
	Title           *string  `json:"title" validate:"omitempty,max=100"`
	Description     *string  `json:"description" validate:"omitempty,max=1000"`
	Price           *float64 `json:"product_price"`
	Pic             *string  `json:"pic" validate:"omitempty,max=255"`
	CategoryID      *int64   `json:"category_id"`
	Status          *int     `json:"status"`
	TagIDs          []int64  `json:"tag_ids"`
	UpdateImageOnly bool     `json:"updateImageOnly"`
}

// registerProductRoutes registers the product CRUD surface. Update and
// delete carry the target id in the JSON body, matching the dashboard
// client.
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/export", exportProducts)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products", updateProduct)
	webserver.ApiDELETE("/products", deleteProduct)
}

func listProducts(c echo.Context) error {
	businessID := parseBusinessID(c)
	if businessID == 0 {
		return fail(c, http.StatusBadRequest, "Missing businessId")
	}
	activeOnly := c.QueryParam("active") == "1"

	products, err := srv.ListProducts(c.Request().Context(), businessID, activeOnly)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, products)
}

func createProduct(c echo.Context) error {
	var payload productCreatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	product, err := srv.CreateProduct(c.Request().Context(), catalog.ProductCreate{
		BusinessID:  payload.BusinessID,
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Pic:         payload.Pic,
		CategoryID:  payload.CategoryID,
		TagIDs:      payload.TagIDs,
	})
	if err != nil {
		return handleError(c, err)
	}
	return created(c, product)
}

func updateProduct(c echo.Context) error {
	var payload productUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}
	if payload.ID <= 0 {
		return fail(c, http.StatusBadRequest, "Missing product id")
	}

	product, err := srv.UpdateProduct(c.Request().Context(), catalog.ProductUpdate{
		ID:          payload.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Pic:         payload.Pic,
		CategoryID:  payload.CategoryID,
		Status:      payload.Status,
		TagIDs:      payload.TagIDs,
		ImageOnly:   payload.UpdateImageOnly,
	})
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, product)
}

func deleteProduct(c echo.Context) error {
	var payload idPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse request")
	}
	if payload.ID <= 0 {
		return fail(c, http.StatusBadRequest, "Missing product id")
	}

	if err := srv.DeleteProduct(c.Request().Context(), payload.ID); err != nil {
		return handleError(c, err)
	}
	return ok(c, map[string]interface{}{"success": true})
}
