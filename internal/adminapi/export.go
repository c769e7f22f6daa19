package adminapi

import (
	"net/http"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

type productExportRow struct {
	ID          int64   `csv:"id"`
	Title       string  `csv:"title"`
	Description string  `csv:"description"`
	Price       float64 `csv:"price"`
	Pic         string  `csv:"pic"`
	Status      int     `csv:"status"`
	Tags        string  `csv:"tags"`
	CreatedAt   string  `csv:"created_at"`
}

// exportProducts streams the business's product catalog as CSV for the
// dashboard's table export.
func exportProducts(c echo.Context) error {
	businessID := parseBusinessID(c)
	if businessID == 0 {
		return fail(c, http.StatusBadRequest, "Missing businessId")
	}

	products, err := srv.ListProducts(c.Request().Context(), businessID, false)
	if err != nil {
		return handleError(c, err)
	}

	maxRows := appCtx.GetSettingsInt64Value("catalog", "export_max_rows")
	if maxRows <= 0 {
		maxRows = 5000
	}
	if int64(len(products)) > maxRows {
		products = products[:maxRows]
	}

	rows := make([]productExportRow, 0, len(products))
	for _, p := range products {
		titles := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			titles = append(titles, t.Title)
		}
		rows = append(rows, productExportRow{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Pic:         p.Pic,
			Status:      p.Status,
			Tags:        strings.Join(titles, "|"),
			CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(&rows, c.Response())
}
