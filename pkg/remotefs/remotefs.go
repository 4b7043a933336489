// Package remotefs defines the storage-backend contract the QRFS
// coordinator drives, along with adapters for S3, local disk, and an
// in-memory fake used in tests.
package remotefs

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a remote path has no corresponding object.
var ErrNotFound = errors.New("remotefs: object not found")

// FileInfo describes a remote object's metadata as reported by a backend's
// listing call.
type FileInfo struct {
	RemotePath   string
	Size         int64
	LastModified time.Time
}

// RemoteFs is the storage backend a Coordinator drives. Implementations
// need not be safe for concurrent DeleteFile/UploadFile/DownloadFile calls
// against the same remote path; the coordinator's dedup sets and
// serialized workers are what make that safe in practice.
type RemoteFs interface {
	// UploadFile copies the local file at localPath to remotePath and
	// returns the size, in bytes, the backend recorded for the uploaded
	// object.
	UploadFile(ctx context.Context, remotePath, localPath string) (int64, error)

	// DownloadFile copies remotePath to the local cache and returns the
	// local path it was written to. expectedFileSize, when non-negative,
	// is used by backends that can validate size as part of the transfer;
	// callers should still re-verify size themselves.
	DownloadFile(ctx context.Context, remotePath string, expectedFileSize int64) (string, error)

	// DeleteFile removes remotePath from the backend. Deleting a path
	// that does not exist is not an error.
	DeleteFile(ctx context.Context, remotePath string) error

	// List returns every remote path under prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// ListWithMetadata returns every remote object under prefix along
	// with its size and last-modified time.
	ListWithMetadata(ctx context.Context, prefix string) ([]FileInfo, error)

	// LocalPath returns the local filesystem path a remote path would be
	// cached at, without guaranteeing the file exists.
	LocalPath(remotePath string) string

	// LocalFile returns the local filesystem path for remotePath if, and
	// only if, the file already exists in the local cache.
	LocalFile(ctx context.Context, remotePath string) (string, error)
}
