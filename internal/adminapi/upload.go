package adminapi

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"

	"github.com/brightcoat/showcase/internal/webserver"
)

func registerUploadRoutes(s *webserver.WebServer) {
	s.AdminPOST("/upload", uploadImage)
}

// uploadImage stores a multipart file under the upload directory with a
// randomized suffix to avoid collisions, and returns the public path.
func uploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "MISSING_FILE", "No file uploaded", nil)
	}

	src, err := file.Open()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to read uploaded file", err.Error())
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	if base == "" {
		base = "image"
	}
	name := base + "-" + random.String(16, random.Hex) + ext

	uploadDir := webserver.GetApp(c).Config().Web.UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to prepare upload directory", err.Error())
	}

	dst, err := os.Create(path.Join(uploadDir, name))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store uploaded file", err.Error())
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store uploaded file", err.Error())
	}

	return ok(c, echo.Map{
		"path":    "/properties/" + name,
		"message": "File uploaded successfully",
	})
}
