package s3fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_RequiresLocalCacheDir(t *testing.T) {
	if _, err := New(nil, Config{}); err == nil {
		t.Fatal("New: expected error for missing LocalCacheDir, got nil")
	}
}

func TestNew_CreatesLocalCacheDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	fs, err := New(nil, Config{Bucket: "b", LocalCacheDir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fs.localDir != dir {
		t.Errorf("localDir = %q, want %q", fs.localDir, dir)
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Errorf("expected %s to exist: %v", dir, statErr)
	}
}

func TestFullKey_PrependsKeyPrefix(t *testing.T) {
	fs := &FS{keyPrefix: "qrfs/"}
	if got := fs.fullKey("a/b.txt"); got != "qrfs/a/b.txt" {
		t.Errorf("fullKey = %q, want %q", got, "qrfs/a/b.txt")
	}
}

func TestFullKey_EmptyPrefixIsIdentity(t *testing.T) {
	fs := &FS{}
	if got := fs.fullKey("a/b.txt"); got != "a/b.txt" {
		t.Errorf("fullKey = %q, want %q", got, "a/b.txt")
	}
}

func TestLocalPath_JoinsLocalDir(t *testing.T) {
	fs := &FS{localDir: "/cache"}
	want := filepath.Join("/cache", "a/b.txt")
	if got := fs.LocalPath("a/b.txt"); got != want {
		t.Errorf("LocalPath = %q, want %q", got, want)
	}
}

func TestIsNotFoundError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("operation error S3: GetObject, https response error StatusCode: 404, NoSuchKey: The specified key does not exist."), true},
		{errors.New("NotFound: object not found"), true},
		{errors.New("connection refused"), false},
	}
	for _, c := range cases {
		if got := isNotFoundError(c.err); got != c.want {
			t.Errorf("isNotFoundError(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
