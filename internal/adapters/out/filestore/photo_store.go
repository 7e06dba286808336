// Package filestore persists delivery evidence photos on local disk.
package filestore

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"marketplace/internal/pkg/errs"
)

// DiskPhotoStore writes photos into a single directory, assigning each file a
// collision-resistant name of the form <millis>-<random><ext>. Only the
// generated name is recorded on the order; the upload's own filename
// contributes nothing but its extension.
type DiskPhotoStore struct {
	dir string
}

// NewDiskPhotoStore creates a store rooted at dir, creating it if needed.
func NewDiskPhotoStore(dir string) (*DiskPhotoStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &DiskPhotoStore{dir: dir}, nil
}

// Store writes the photo and returns the generated file name as its reference.
func (s *DiskPhotoStore) Store(ctx context.Context, originalFilename string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(content) == 0 {
		return "", errs.NewValueIsRequiredError("content")
	}

	name := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.IntN(1_000_000_000),
		filepath.Ext(originalFilename),
	)

	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o644); err != nil {
		return "", err
	}

	return name, nil
}
