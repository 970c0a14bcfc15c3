package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/keianmejia/maribelle-api/models"
)

// ObjectStore is the file storage bucket behind product galleries. Upload
// must refuse to overwrite an existing path.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader) error
	PublicURL(path string) string
}

// UploadFile is one file picked for a product gallery, in selection order.
type UploadFile struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// ImageUploadResult reports one file of a batch.
type ImageUploadResult struct {
	Name string
	URL  string
	Err  error
}

// UploadProductImages runs the batch strictly one file at a time: upload,
// insert the image row, then the next file. A failed file is reported on its
// result and the batch moves on. The sort index always reflects selection
// order, including files whose upload failed.
func UploadProductImages(ctx context.Context, store ObjectStore, backend Backend, productID string, files []UploadFile) []ImageUploadResult {
	results := make([]ImageUploadResult, 0, len(files))

	for i, file := range files {
		result := ImageUploadResult{Name: file.Name}

		body, err := file.Open()
		if err != nil {
			result.Err = fmt.Errorf("open %s: %w", file.Name, err)
			results = append(results, result)
			continue
		}

		path := fmt.Sprintf("%s/%s.%s", productID, uuid.NewString(), fileExtension(file.Name))
		err = store.Upload(ctx, path, file.ContentType, body)
		body.Close()
		if err != nil {
			result.Err = fmt.Errorf("upload %s: %w", file.Name, err)
			results = append(results, result)
			continue
		}

		result.URL = store.PublicURL(path)
		if err := backend.InsertImage(ctx, models.ProductImage{
			ProductID: productID,
			URL:       result.URL,
			Sort:      i,
		}); err != nil {
			result.Err = fmt.Errorf("save image record for %s: %w", file.Name, err)
		}
		results = append(results, result)
	}

	return results
}

func fileExtension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "jpg"
	}
	return strings.ToLower(ext)
}
