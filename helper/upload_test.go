package helper

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postMultipart(t *testing.T, app *fiber.App, field, filename string, content []byte) *http.Response {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func newUploadApp(results *[]string, errs *[]error) *fiber.App {
	app := fiber.New()
	app.Post("/upload", func(c *fiber.Ctx) error {
		path, err := SaveUploadedImage(c, "image")
		*results = append(*results, path)
		*errs = append(*errs, err)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestSaveUploadedImage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	var results []string
	var errs []error
	app := newUploadApp(&results, &errs)

	resp := postMultipart(t, app, "image", "venue.png", []byte("fake-png-bytes"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, errs, 1)
	require.NoError(t, errs[0])
	require.Len(t, results, 1)
	assert.True(t, strings.HasPrefix(results[0], "/uploads/"))
	assert.True(t, strings.HasSuffix(results[0], ".png"))

	// the file is actually on disk under the upload dir
	saved, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(results[0], "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png-bytes"), saved)
}

func TestSaveUploadedImageMissingFieldIsOptional(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	var results []string
	var errs []error
	app := newUploadApp(&results, &errs)

	resp := postMultipart(t, app, "image", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, errs, 1)
	assert.NoError(t, errs[0])
	assert.Equal(t, "", results[0])
}

func TestSaveUploadedImageRejectsUnknownExtension(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	var results []string
	var errs []error
	app := newUploadApp(&results, &errs)

	resp := postMultipart(t, app, "image", "payload.exe", []byte("nope"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, errs, 1)
	assert.Error(t, errs[0])
	assert.Equal(t, "", results[0])
}
