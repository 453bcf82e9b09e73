package object

import (
	"context"
	"fmt"
	"io"
	"path"

	"resume-builder/internal/shared/util"
)

// ObjectStore writes binary objects by key. The document archive never reads back.
type ObjectStore interface {
	Put(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
}

// UserKey places fileName under the user's hashed namespace.
func UserKey(userID, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return path.Join(util.HashUserKey(userID), name), nil
}
