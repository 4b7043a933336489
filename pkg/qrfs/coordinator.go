package qrfs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/marmos91/qrfs/internal/logger"
	"github.com/marmos91/qrfs/pkg/metrics"
	"github.com/marmos91/qrfs/pkg/remotefs"
)

// Config configures a Coordinator. Zero-value UploadConcurrency or
// DownloadConcurrency is treated as 1.
type Config struct {
	// UploadConcurrency is the number of upload workers (also handle
	// Delete operations).
	UploadConcurrency int

	// DownloadConcurrency is the number of download workers.
	DownloadConcurrency int

	// UploadToRemote, when false, makes upload_file/delete_file
	// short-circuit locally and keeps the reconciler from starting. The
	// worker pools are started either way.
	UploadToRemote bool
}

func (c Config) withDefaults() Config {
	if c.UploadConcurrency <= 0 {
		c.UploadConcurrency = 1
	}
	if c.DownloadConcurrency <= 0 {
		c.DownloadConcurrency = 1
	}
	return c
}

// Coordinator is the Queued Remote Filesystem Coordinator. It serializes,
// deduplicates, and verifies upload/download/delete operations against a
// remotefs.RemoteFs, shared by reference across all callers.
type Coordinator struct {
	cfg Config

	remote remotefs.RemoteFs
	m      metrics.QueueMetrics
	log    *slog.Logger

	uploadQueue   *opQueue
	downloadQueue *opQueue
	bus           *resultBus

	downloading *pathSet
	deleted     *pathSet

	shutdown     chan struct{}
	shutdownOnce sync.Once

	// wg supervises the worker pool and reconciler goroutines as one
	// group. None of them currently return an error (the panic path
	// covers genuine programming errors), but errgroup.Group also gives
	// Wait callers the propagation path if that changes.
	wg errgroup.Group
}

// New constructs a Coordinator and starts its worker pools and, if
// cfg.UploadToRemote, its reconciler. Callers must call Stop to release
// the workers and reconciler.
func New(cfg Config, remote remotefs.RemoteFs, m metrics.QueueMetrics, log *slog.Logger) *Coordinator {
	cfg = cfg.withDefaults()
	if log == nil {
		log = logger.With()
	}

	c := &Coordinator{
		cfg:           cfg,
		remote:        remote,
		m:             m,
		log:           log,
		uploadQueue:   newOpQueue(),
		downloadQueue: newOpQueue(),
		bus:           newResultBus(),
		downloading:   newPathSet(),
		deleted:       newPathSet(),
		shutdown:      make(chan struct{}),
	}

	for i := 0; i < cfg.UploadConcurrency; i++ {
		id := i
		c.wg.Go(func() error {
			c.uploadWorker(id)
			return nil
		})
	}
	for i := 0; i < cfg.DownloadConcurrency; i++ {
		id := i
		c.wg.Go(func() error {
			c.downloadWorker(id)
			return nil
		})
	}
	if cfg.UploadToRemote {
		c.wg.Go(func() error {
			c.reconcile()
			return nil
		})
	}

	return c
}

// Stop sends the shutdown signal exactly once. Idle workers return
// immediately; a worker mid-operation finishes it and publishes its
// result before returning. Stop does not wait for workers to exit; call
// Wait for that.
func (c *Coordinator) Stop() error {
	sent := false
	c.shutdownOnce.Do(func() {
		close(c.shutdown)
		c.uploadQueue.close()
		c.downloadQueue.close()
		c.bus.closeAll()
		sent = true
	})
	if !sent {
		return ErrAlreadyStopped
	}
	return nil
}

// Wait blocks until every worker and the reconciler have returned. Call
// after Stop.
func (c *Coordinator) Wait() {
	_ = c.wg.Wait()
}

// UploadFile uploads the local file at localUploadPath to remotePath and
// returns the size the backend recorded.
func (c *Coordinator) UploadFile(ctx context.Context, localUploadPath, remotePath string) (int64, error) {
	if !c.cfg.UploadToRemote {
		info, err := os.Stat(localUploadPath)
		if err != nil {
			return 0, ioError(fmt.Sprintf("stat local file %s", localUploadPath), err)
		}
		return info.Size(), nil
	}

	sub := c.bus.subscribe()
	defer c.bus.unsubscribe(sub)

	corrID := uuid.NewString()
	c.log.Debug("enqueued upload", logger.CorrelationID(corrID), logger.RemotePath(remotePath))

	c.uploadQueue.push(operation{kind: opUpload, tempLocalPath: localUploadPath, remotePath: remotePath})
	metrics.ObserveQueueDepth(c.m, "upload", c.uploadQueue.len())

	r, err := awaitResult(sub, resultUpload, remotePath)
	if err != nil {
		return 0, err
	}
	return r.size, r.err
}

// DeleteFile deletes remotePath from the backend.
func (c *Coordinator) DeleteFile(ctx context.Context, remotePath string) error {
	if !c.cfg.UploadToRemote {
		return nil
	}

	sub := c.bus.subscribe()
	defer c.bus.unsubscribe(sub)

	corrID := uuid.NewString()
	c.log.Debug("enqueued delete", logger.CorrelationID(corrID), logger.RemotePath(remotePath))

	c.uploadQueue.push(operation{kind: opDelete, remotePath: remotePath})
	metrics.ObserveQueueDepth(c.m, "upload", c.uploadQueue.len())

	r, err := awaitResult(sub, resultDelete, remotePath)
	if err != nil {
		return err
	}
	return r.err
}

// DownloadFile returns the local path for remotePath, downloading it if
// it is not already cached. expectedSize, when hasExpectedSize is true, is
// verified against the resulting local file's size; a mismatch deletes
// the bad local file and fails with CorruptData.
func (c *Coordinator) DownloadFile(ctx context.Context, remotePath string, expectedSize int64, hasExpectedSize bool) (string, error) {
	if localPath, err := c.remote.LocalFile(ctx, remotePath); err == nil {
		info, statErr := os.Stat(localPath)
		if statErr != nil {
			return "", ioError(fmt.Sprintf("stat local file %s", localPath), statErr)
		}
		return localPath, checkFileSize(remotePath, expectedSize, hasExpectedSize, localPath, info.Size())
	}

	sub := c.bus.subscribe()
	defer c.bus.unsubscribe(sub)

	corrID := uuid.NewString()
	c.log.Debug("awaiting download", logger.CorrelationID(corrID), logger.RemotePath(remotePath))

	if !c.downloading.addIfAbsent(remotePath) {
		c.downloadQueue.push(operation{
			kind:            opDownload,
			remotePath:      remotePath,
			expectedSize:    expectedSize,
			hasExpectedSize: hasExpectedSize,
		})
		metrics.ObserveQueueDepth(c.m, "download", c.downloadQueue.len())
	} else {
		metrics.RecordDedupHit(c.m, "download")
	}

	r, err := awaitResult(sub, resultDownload, remotePath)
	if err != nil {
		return "", err
	}
	if r.err != nil {
		return "", r.err
	}

	info, statErr := os.Stat(r.localPath)
	if statErr != nil {
		return "", ioError(fmt.Sprintf("stat local file %s", r.localPath), statErr)
	}
	if verr := checkFileSize(remotePath, expectedSize, hasExpectedSize, r.localPath, info.Size()); verr != nil {
		return "", verr
	}
	return r.localPath, nil
}

// List passes through to the underlying RemoteFs.
func (c *Coordinator) List(ctx context.Context, prefix string) ([]string, error) {
	return c.remote.List(ctx, prefix)
}

// ListWithMetadata passes through to the underlying RemoteFs.
func (c *Coordinator) ListWithMetadata(ctx context.Context, prefix string) ([]remotefs.FileInfo, error) {
	return c.remote.ListWithMetadata(ctx, prefix)
}

// LocalPath passes through to the underlying RemoteFs.
func (c *Coordinator) LocalPath(remotePath string) string {
	return c.remote.LocalPath(remotePath)
}

// LocalFile passes through to the underlying RemoteFs.
func (c *Coordinator) LocalFile(ctx context.Context, remotePath string) (string, error) {
	return c.remote.LocalFile(ctx, remotePath)
}

// awaitResult filters a subscription's incoming results for one whose
// kind and remotePath match, discarding the rest. It returns
// ErrChannelClosed if the subscription is closed (backlog overflow or
// coordinator shutdown) before a match arrives.
func awaitResult(sub *subscription, kind resultKind, remotePath string) (result, error) {
	for {
		r, ok := <-sub.recv()
		if !ok {
			return result{}, newError(ChannelClosed, "result bus subscription closed", ErrChannelClosed)
		}
		if r.kind == kind && r.remotePath == remotePath {
			return r, nil
		}
	}
}

// checkFileSize validates a local file's size against an expected size.
// Absent expectedSize, it always succeeds. On mismatch it attempts to
// remove the local file; a removal failure is itself propagated in place
// of the CorruptData failure.
func checkFileSize(remotePath string, expectedSize int64, hasExpectedSize bool, localPath string, actualSize int64) error {
	if !hasExpectedSize {
		return nil
	}
	if actualSize == expectedSize {
		return nil
	}
	if rmErr := os.Remove(localPath); rmErr != nil {
		return ioError(fmt.Sprintf("remove corrupt local file %s", localPath), rmErr)
	}
	return corruptData(fmt.Sprintf("Expected file size for '%s' is %d but %d received", remotePath, expectedSize, actualSize))
}
