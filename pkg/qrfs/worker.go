package qrfs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"

	"github.com/marmos91/qrfs/internal/logger"
	"github.com/marmos91/qrfs/internal/tracing"
	"github.com/marmos91/qrfs/pkg/metrics"
)

func (c *Coordinator) uploadWorker(id int) {
	log := c.log.With(logger.WorkerID(id), logger.Queue("upload"))

	for {
		select {
		case <-c.shutdown:
			return
		case op, ok := <-c.uploadQueue.out():
			if !ok {
				return
			}
			start := time.Now()
			switch op.kind {
			case opUpload:
				c.runUpload(log, op)
			case opDelete:
				c.runDelete(log, op)
			default:
				panic(fmt.Sprintf("qrfs: upload worker received unexpected operation variant %d", op.kind))
			}
			metrics.ObserveWorkerBusy(c.m, "upload", time.Since(start))
			metrics.ObserveQueueDepth(c.m, "upload", c.uploadQueue.len())
		}
	}
}

func (c *Coordinator) runUpload(log *slog.Logger, op operation) {
	start := time.Now()

	if c.deleted.contains(op.remotePath) {
		log.Debug("dropping upload for tombstoned path", logger.RemotePath(op.remotePath))
		return
	}

	ctx, span := tracing.StartSpan(context.Background(), "qrfs.upload", attribute.String("remote_path", op.remotePath))
	defer span.End()

	size, err := c.remote.UploadFile(ctx, op.remotePath, op.tempLocalPath)
	if err == nil {
		err = c.verifyUpload(ctx, op.remotePath, size)
	}
	tracing.RecordError(span, err)

	if err != nil {
		log.Warn("upload failed", logger.RemotePath(op.remotePath), logger.Err(err))
	}
	metrics.RecordOperation(c.m, "upload", time.Since(start), err)
	if err == nil {
		metrics.RecordBytes(c.m, "upload", size)
	}

	c.bus.publish(result{kind: resultUpload, remotePath: op.remotePath, size: size, err: err})
}

// verifyUpload re-lists the just-uploaded object and confirms the remote
// store's reported size matches what upload_file returned.
func (c *Coordinator) verifyUpload(ctx context.Context, remotePath string, uploadedSize int64) error {
	listing, err := c.remote.ListWithMetadata(ctx, remotePath)
	if err != nil {
		return ioError(fmt.Sprintf("list %s after upload", remotePath), err)
	}
	if len(listing) == 0 {
		return internalError(fmt.Sprintf("File %s can't be listed after upload", remotePath))
	}
	if listing[0].Size != uploadedSize {
		c.log.Warn("upload size mismatch",
			logger.RemotePath(remotePath),
			logger.ExpectedSize(uint64(uploadedSize)),
			logger.ActualSize(uint64(listing[0].Size)),
			slog.String("expected_human", humanize.Bytes(uint64(uploadedSize))),
			slog.String("actual_human", humanize.Bytes(uint64(listing[0].Size))),
		)
		return internalError(fmt.Sprintf(
			"File sizes for %s doesn't match after upload. Expected to be %d but %d uploaded",
			remotePath, uploadedSize, listing[0].Size,
		))
	}
	return nil
}

func (c *Coordinator) runDelete(log *slog.Logger, op operation) {
	start := time.Now()

	ctx, span := tracing.StartSpan(context.Background(), "qrfs.delete", attribute.String("remote_path", op.remotePath))
	defer span.End()

	err := c.remote.DeleteFile(ctx, op.remotePath)
	if err != nil {
		log.Warn("delete failed", logger.RemotePath(op.remotePath), logger.Err(err))
		err = ioError(fmt.Sprintf("delete %s", op.remotePath), err)
	}
	tracing.RecordError(span, err)
	metrics.RecordOperation(c.m, "delete", time.Since(start), err)

	c.bus.publish(result{kind: resultDelete, remotePath: op.remotePath, err: err})
}

func (c *Coordinator) downloadWorker(id int) {
	log := c.log.With(logger.WorkerID(id), logger.Queue("download"))

	for {
		select {
		case <-c.shutdown:
			return
		case op, ok := <-c.downloadQueue.out():
			if !ok {
				return
			}
			if op.kind != opDownload {
				panic(fmt.Sprintf("qrfs: download worker received unexpected operation variant %d", op.kind))
			}
			start := time.Now()
			c.runDownload(log, op)
			metrics.ObserveWorkerBusy(c.m, "download", time.Since(start))
			metrics.ObserveQueueDepth(c.m, "download", c.downloadQueue.len())
		}
	}
}

func (c *Coordinator) runDownload(log *slog.Logger, op operation) {
	start := time.Now()

	ctx, span := tracing.StartSpan(context.Background(), "qrfs.download", attribute.String("remote_path", op.remotePath))
	defer span.End()

	expectedSize := op.expectedSize
	if !op.hasExpectedSize {
		expectedSize = -1
	}
	localPath, err := c.remote.DownloadFile(ctx, op.remotePath, expectedSize)
	if err != nil {
		log.Warn("download failed", logger.RemotePath(op.remotePath), logger.Err(err))
		err = ioError(fmt.Sprintf("download %s", op.remotePath), err)
	}
	tracing.RecordError(span, err)
	metrics.RecordOperation(c.m, "download", time.Since(start), err)

	// Publish while still holding the write lock on downloading: any
	// caller that re-checks downloading immediately after receiving this
	// result must observe the path as already absent.
	c.downloading.mu.Lock()
	c.bus.publish(result{kind: resultDownload, remotePath: op.remotePath, localPath: localPath, err: err})
	delete(c.downloading.paths, op.remotePath)
	c.downloading.mu.Unlock()
}
