package adminapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastedir/catalogd/internal/media"
	"github.com/tastedir/catalogd/internal/webserver"
)

func registerMediaRoutes() {
	webserver.ApiPOST("/media/upload", uploadMedia)
}

// uploadMedia forwards image binaries to the media gateway and returns the
// stored URLs. The client patches them back through an image-only update;
// a gateway failure never touches catalog rows.
func uploadMedia(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse upload")
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return fail(c, http.StatusBadRequest, "Missing files")
	}

	maxBytes := appCtx.GetSettingsInt64Value("media", "max_upload_mb") * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = 8 * 1024 * 1024
	}

	files := make([]media.File, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxBytes {
			return fail(c, http.StatusBadRequest, "File too large")
		}
		src, err := fh.Open()
		if err != nil {
			return fail(c, http.StatusBadRequest, "Unable to read upload")
		}
		data, err := io.ReadAll(src)
		_ = src.Close()
		if err != nil {
			return fail(c, http.StatusBadRequest, "Unable to read upload")
		}
		files = append(files, media.File{Name: fh.Filename, Data: data})
	}

	urls, err := mediaClient.Upload(c.Request().Context(), files)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, map[string]interface{}{"urls": urls})
}
