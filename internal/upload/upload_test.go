package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "Mug"))
	if filename != "" {
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func contextFor(req *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestSaveStoresFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	d := Disk{Dir: dir}

	name, err := d.Save(contextFor(multipartRequest(t, "Cat.PNG", "pixels")), "image")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.NotContains(t, name, "Cat")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}

func TestSaveWithoutFile(t *testing.T) {
	d := Disk{Dir: t.TempDir()}

	name, err := d.Save(contextFor(multipartRequest(t, "", "")), "image")
	require.NoError(t, err)
	assert.Empty(t, name)

	form := url.Values{"name": {"Mug"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	name, err = d.Save(contextFor(req), "image")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestSaveRejectsFormat(t *testing.T) {
	dir := t.TempDir()
	d := Disk{Dir: dir}

	_, err := d.Save(contextFor(multipartRequest(t, "evil.exe", "MZ")), "image")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
