package model

import (
	"context"
	"io"
)

// Storage is an object store used to archive outgoing mail.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}
