// Package upload stores image files submitted with product forms.
package upload

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrUnsupportedFormat is returned for files whose extension is not an accepted image type.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Disk saves uploads into Dir under a generated name.
type Disk struct {
	Dir string
}

// Save stores the file submitted in field and returns its stored name.
// A request without that file yields "" and no error.
func (d Disk) Save(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read upload %q: %w", field, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, file.Filename)
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(d.Dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return name, nil
}
