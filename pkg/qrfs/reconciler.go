package qrfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/marmos91/qrfs/internal/logger"
	"github.com/marmos91/qrfs/internal/tracing"
	"github.com/marmos91/qrfs/pkg/metrics"
)

const reconcileInterval = 600 * time.Second

// reconcile runs until shutdown, periodically aligning the local cache
// directory with the remote listing. Started only when
// cfg.UploadToRemote is true.
func (c *Coordinator) reconcile() {
	log := c.log.With(logger.Op("reconcile"))

	ticker := time.NewTicker(reconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.shutdown:
			return
		case <-ticker.C:
			c.reconcileOnce(log)
		}
	}
}

func (c *Coordinator) reconcileOnce(log interface {
	Debug(string, ...any)
	Warn(string, ...any)
}) {
	start := time.Now()
	ctx, span := tracing.StartSpan(context.Background(), "qrfs.reconcile")
	defer span.End()

	localDir := c.remote.LocalPath("")
	local, err := localRegularFiles(localDir, log)
	if err != nil {
		log.Warn("reconciler failed to read local cache directory", logger.Err(err))
		tracing.RecordError(span, err)
		return
	}

	remote, err := c.remote.List(ctx, "")
	if err != nil {
		log.Warn("reconciler failed to list remote store", logger.Err(err))
		tracing.RecordError(span, err)
		return
	}

	for _, name := range remote {
		delete(local, name)
	}

	if len(local) == 0 {
		return
	}

	log.Debug("reconciler found residue", logger.ResidueCount(len(local)))
	for name := range local {
		log.Debug("reconciler residue entry", logger.LocalPath(name))
	}

	for name := range local {
		// Per-file deletion errors are silently ignored: the file may
		// have been uploaded and become remotely visible between the
		// listing above and this point.
		_ = os.Remove(filepath.Join(localDir, name))
	}

	metrics.RecordReconcilerResidue(c.m, len(local), time.Since(start))
}

// localRegularFiles collects the set of direct-child regular file names
// in dir. Symlinks and subdirectories are excluded; per-entry stat
// errors are logged and skipped.
func localRegularFiles(dir string, log interface {
	Debug(string, ...any)
	Warn(string, ...any)
}) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			log.Warn("reconciler failed to stat local entry", logger.LocalPath(entry.Name()), logger.Err(err))
			continue
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		names[entry.Name()] = struct{}{}
	}
	return names, nil
}
