package storage

import (
	"context"
	"io"
	"time"
)

// Package storage holds the object-store abstraction behind admin uploads.
// Announcement attachments and library files are uploaded here and
// referenced from sheet rows by presigned URL; the sheet itself never
// stores file content.

// PutOptions carries optional upload parameters. Size should be the exact
// byte count when known, -1 otherwise.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object store for uploaded portal files.
type Storage interface {
	// Put uploads an object under the given key using streaming I/O.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for the object.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
