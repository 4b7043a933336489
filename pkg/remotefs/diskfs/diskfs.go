// Package diskfs is a local-disk-backed remotefs.RemoteFs adapter: the
// "remote" store and the local cache are two directories on the same
// filesystem. Used when QRFS fronts a single-node deployment with no
// external object store.
package diskfs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/marmos91/qrfs/pkg/remotefs"
)

// Config configures a disk-backed RemoteFs.
type Config struct {
	// RemoteDir is the directory standing in for the remote object store.
	RemoteDir string

	// LocalDir is the local cache directory. Downloads copy from
	// RemoteDir into LocalDir; uploads copy from a caller-supplied local
	// path into RemoteDir.
	LocalDir string

	// DirMode is the permission mode for created directories. Default 0755.
	DirMode os.FileMode

	// FileMode is the permission mode for created files. Default 0644.
	FileMode os.FileMode
}

// FS is a local-disk-backed remotefs.RemoteFs.
type FS struct {
	remoteDir string
	localDir  string
	dirMode   os.FileMode
	fileMode  os.FileMode
}

// New constructs a disk-backed RemoteFs, creating RemoteDir and LocalDir
// if they do not exist.
func New(cfg Config) (*FS, error) {
	if cfg.RemoteDir == "" || cfg.LocalDir == "" {
		return nil, errors.New("diskfs: RemoteDir and LocalDir are required")
	}
	if cfg.DirMode == 0 {
		cfg.DirMode = 0755
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0644
	}

	if err := os.MkdirAll(cfg.RemoteDir, cfg.DirMode); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.LocalDir, cfg.DirMode); err != nil {
		return nil, err
	}

	return &FS{
		remoteDir: cfg.RemoteDir,
		localDir:  cfg.LocalDir,
		dirMode:   cfg.DirMode,
		fileMode:  cfg.FileMode,
	}, nil
}

func (f *FS) remotePathOnDisk(remotePath string) string {
	return filepath.Join(f.remoteDir, filepath.FromSlash(remotePath))
}

// UploadFile copies localPath into the remote directory, writing to a
// temp file first and renaming into place for atomicity: the remote
// object only becomes visible once fully written.
func (f *FS) UploadFile(ctx context.Context, remotePath, localPath string) (int64, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return 0, err
	}

	dst := f.remotePathOnDisk(remotePath)
	if err := os.MkdirAll(filepath.Dir(dst), f.dirMode); err != nil {
		return 0, err
	}

	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, f.fileMode); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return 0, err
	}

	return int64(len(data)), nil
}

// DownloadFile copies remotePath from the remote directory into the
// local cache.
func (f *FS) DownloadFile(ctx context.Context, remotePath string, expectedFileSize int64) (string, error) {
	src := f.remotePathOnDisk(remotePath)
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", remotefs.ErrNotFound
		}
		return "", err
	}

	dst := f.LocalPath(remotePath)
	if err := os.MkdirAll(filepath.Dir(dst), f.dirMode); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, f.fileMode); err != nil {
		return "", err
	}

	return dst, nil
}

func (f *FS) DeleteFile(ctx context.Context, remotePath string) error {
	err := os.Remove(f.remotePathOnDisk(remotePath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FS) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(f.remoteDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.remoteDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (f *FS) ListWithMetadata(ctx context.Context, prefix string) ([]remotefs.FileInfo, error) {
	var infos []remotefs.FileInfo
	err := filepath.WalkDir(f.remoteDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.remoteDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, remotefs.FileInfo{
			RemotePath:   name,
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
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
