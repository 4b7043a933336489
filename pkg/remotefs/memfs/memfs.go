// Package memfs is an in-memory remotefs.RemoteFs used by QRFS coordinator
// tests. It keeps remote objects in a map and local cache files under a
// temp directory, so upload/download semantics (including size mismatches)
// can be exercised without real network or disk-backed storage.
package memfs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/marmos91/qrfs/pkg/remotefs"
)

// FS is an in-memory RemoteFs. The zero value is not usable; construct
// with New.
type FS struct {
	mu sync.Mutex

	localDir string
	objects  map[string]object

	// UploadDelay, if set, is slept before an UploadFile completes.
	// DownloadDelay is the equivalent for DownloadFile. Both simulate
	// network latency for dedup tests.
	UploadDelay   time.Duration
	DownloadDelay time.Duration

	downloadCalls int
}

type object struct {
	data         []byte
	lastModified time.Time
}

// New constructs an in-memory RemoteFs backed by a fresh temp directory
// for its local cache.
func New(t interface{ TempDir() string }) *FS {
	return &FS{
		localDir: t.TempDir(),
		objects:  make(map[string]object),
	}
}

// DownloadCalls reports how many times DownloadFile was invoked, for
// dedup assertions.
func (f *FS) DownloadCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloadCalls
}

// Seed inserts a remote object directly, bypassing UploadFile, for test
// setup.
func (f *FS) Seed(remotePath string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[remotePath] = object{data: data, lastModified: time.Now()}
}

func (f *FS) UploadFile(ctx context.Context, remotePath, localPath string) (int64, error) {
	if f.UploadDelay > 0 {
		time.Sleep(f.UploadDelay)
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return 0, err
	}

	f.mu.Lock()
	f.objects[remotePath] = object{data: data, lastModified: time.Now()}
	f.mu.Unlock()

	return int64(len(data)), nil
}

func (f *FS) DownloadFile(ctx context.Context, remotePath string, expectedFileSize int64) (string, error) {
	f.mu.Lock()
	f.downloadCalls++
	f.mu.Unlock()

	if f.DownloadDelay > 0 {
		time.Sleep(f.DownloadDelay)
	}

	f.mu.Lock()
	obj, ok := f.objects[remotePath]
	f.mu.Unlock()
	if !ok {
		return "", remotefs.ErrNotFound
	}

	localPath := f.LocalPath(remotePath)
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(localPath, obj.data, 0644); err != nil {
		return "", err
	}
	return localPath, nil
}

func (f *FS) DeleteFile(ctx context.Context, remotePath string) error {
	f.mu.Lock()
	delete(f.objects, remotePath)
	f.mu.Unlock()
	return nil
}

func (f *FS) List(ctx context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var names []string
	for name := range f.objects {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *FS) ListWithMetadata(ctx context.Context, prefix string) ([]remotefs.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var infos []remotefs.FileInfo
	for name, obj := range f.objects {
		if strings.HasPrefix(name, prefix) {
			infos = append(infos, remotefs.FileInfo{
				RemotePath:   name,
				Size:         int64(len(obj.data)),
				LastModified: obj.lastModified,
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].RemotePath < infos[j].RemotePath })
	return infos, nil
}

func (f *FS) LocalPath(remotePath string) string {
	return filepath.Join(f.localDir, filepath.FromSlash(remotePath))
}

func (f *FS) LocalFile(ctx context.Context, remotePath string) (string, error) {
	path := f.LocalPath(remotePath)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

var _ remotefs.RemoteFs = (*FS)(nil)
