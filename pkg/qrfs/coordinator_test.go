package qrfs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/marmos91/qrfs/pkg/remotefs"
	"github.com/marmos91/qrfs/pkg/remotefs/memfs"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload-src")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestUploadFile_Happy(t *testing.T) {
	fs := memfs.New(t)
	c := New(Config{UploadConcurrency: 1, DownloadConcurrency: 1, UploadToRemote: true}, fs, nil, nil)
	defer func() { c.Stop(); c.Wait() }()

	src := writeTempFile(t, make([]byte, 100))

	size, err := c.UploadFile(context.Background(), src, "data/a")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if size != 100 {
		t.Errorf("size = %d, want 100", size)
	}
	if c.deleted.contains("data/a") || c.downloading.contains("data/a") {
		t.Error("unexpected dedup set residue")
	}
}

// mismatchedListingFS wraps memfs.FS but reports a listing size one byte
// short of what UploadFile returned, to exercise the post-upload
// integrity check.
type mismatchedListingFS struct {
	*memfs.FS
}

func (f *mismatchedListingFS) ListWithMetadata(ctx context.Context, prefix string) ([]remotefs.FileInfo, error) {
	infos, err := f.FS.ListWithMetadata(ctx, prefix)
	if err != nil {
		return nil, err
	}
	for i := range infos {
		infos[i].Size--
	}
	return infos, nil
}

func TestUploadFile_SizeMismatch(t *testing.T) {
	fs := &mismatchedListingFS{FS: memfs.New(t)}
	c := New(Config{UploadConcurrency: 1, UploadToRemote: true}, fs, nil, nil)
	defer func() { c.Stop(); c.Wait() }()

	src := writeTempFile(t, make([]byte, 100))

	_, err := c.UploadFile(context.Background(), src, "data/a")
	if err == nil {
		t.Fatal("expected Internal size-mismatch error")
	}
	qerr, ok := err.(*Error)
	if !ok || qerr.Kind != Internal {
		t.Fatalf("err = %v, want Internal", err)
	}
}

func TestDownloadFile_Dedup(t *testing.T) {
	fs := memfs.New(t)
	fs.DownloadDelay = 50 * time.Millisecond
	fs.Seed("x", make([]byte, 42))

	c := New(Config{UploadConcurrency: 1, DownloadConcurrency: 1, UploadToRemote: true}, fs, nil, nil)
	defer func() { c.Stop(); c.Wait() }()

	var wg sync.WaitGroup
	paths := make([]string, 2)
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], errs[i] = c.DownloadFile(context.Background(), "x", 42, true)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("DownloadFile[%d]: %v", i, err)
		}
	}
	if paths[0] != paths[1] {
		t.Errorf("paths differ: %q vs %q", paths[0], paths[1])
	}
	if c.downloading.contains("x") {
		t.Error("downloading set should be empty after completion")
	}
	if got := fs.DownloadCalls(); got != 1 {
		t.Errorf("DownloadCalls = %d, want 1", got)
	}
}

func TestDownloadFile_Corrupt(t *testing.T) {
	fs := memfs.New(t)
	fs.Seed("x", make([]byte, 41))

	c := New(Config{UploadConcurrency: 1, DownloadConcurrency: 1, UploadToRemote: true}, fs, nil, nil)
	defer func() { c.Stop(); c.Wait() }()

	_, err := c.DownloadFile(context.Background(), "x", 42, true)
	if err == nil {
		t.Fatal("expected CorruptData error")
	}
	qerr, ok := err.(*Error)
	if !ok || qerr.Kind != CorruptData {
		t.Fatalf("err = %v, want CorruptData", err)
	}

	if _, statErr := os.Stat(fs.LocalPath("x")); !os.IsNotExist(statErr) {
		t.Error("corrupt local file should have been removed")
	}
	if c.downloading.contains("x") {
		t.Error("downloading set should not retain path after failure")
	}
}

func TestUploadFile_ShortCircuitWhenNotUploadingToRemote(t *testing.T) {
	fs := memfs.New(t)
	c := New(Config{UploadToRemote: false}, fs, nil, nil)
	defer func() { c.Stop(); c.Wait() }()

	src := writeTempFile(t, make([]byte, 7))

	size, err := c.UploadFile(context.Background(), src, "data/a")
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if size != 7 {
		t.Errorf("size = %d, want 7", size)
	}

	if err := c.DeleteFile(context.Background(), "data/a"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
}

func TestStop_IsIdempotentFailing(t *testing.T) {
	fs := memfs.New(t)
	c := New(Config{UploadToRemote: true}, fs, nil, nil)

	if err := c.Stop(); err != nil {
		t.Fatalf("first Stop: %v", err)
	}
	if err := c.Stop(); err != ErrAlreadyStopped {
		t.Fatalf("second Stop = %v, want ErrAlreadyStopped", err)
	}
	c.Wait()
}
