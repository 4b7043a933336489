package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/marmos91/qrfs/internal/config"
	"github.com/marmos91/qrfs/internal/logger"
	"github.com/marmos91/qrfs/internal/tracing"
	"github.com/marmos91/qrfs/pkg/metrics"
	"github.com/marmos91/qrfs/pkg/qrfs"
	"github.com/marmos91/qrfs/pkg/remotefs"
	"github.com/marmos91/qrfs/pkg/remotefs/diskfs"
	"github.com/marmos91/qrfs/pkg/remotefs/memfs"
	"github.com/marmos91/qrfs/pkg/remotefs/s3fs"

	_ "github.com/marmos91/qrfs/pkg/metrics/prometheus"
)

// loadConfig reads the config file selected by --config, initializes the
// logger and tracer from it, and returns it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRate:  cfg.Tracing.SampleRate,
	})

	return cfg, nil
}

// buildCoordinator constructs the RemoteFs backend selected by
// cfg.Remote.Kind, wires in the Prometheus metrics registry when enabled,
// and starts a Coordinator over it.
func buildCoordinator(cfg *config.Config) (*qrfs.Coordinator, error) {
	remote, err := buildRemote(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	var m metrics.QueueMetrics
	if metrics.IsEnabled() {
		m = metrics.NewQRFSMetrics()
	}

	log := logger.With("component", "qrfsd")
	coord := qrfs.New(qrfs.Config{
		UploadConcurrency:   cfg.Coordinator.UploadConcurrency,
		DownloadConcurrency: cfg.Coordinator.DownloadConcurrency,
		UploadToRemote:      cfg.Coordinator.UploadToRemote,
	}, remote, m, log)

	return coord, nil
}

func buildRemote(cfg *config.Config) (remotefs.RemoteFs, error) {
	switch cfg.Remote.Kind {
	case "s3":
		return s3fs.NewFromConfig(context.Background(), s3fs.Config{
			Bucket:         cfg.Remote.S3.Bucket,
			Region:         cfg.Remote.S3.Region,
			Endpoint:       cfg.Remote.S3.Endpoint,
			KeyPrefix:      cfg.Remote.S3.KeyPrefix,
			ForcePathStyle: cfg.Remote.S3.ForcePathStyle,
			LocalCacheDir:  cfg.Remote.S3.LocalCacheDir,
		})
	case "disk":
		return diskfs.New(diskfs.Config{
			RemoteDir: cfg.Remote.Disk.RemoteDir,
			LocalDir:  cfg.Remote.Disk.LocalDir,
		})
	case "memory":
		return memfs.New(tempDirer{}), nil
	default:
		return nil, fmt.Errorf("unknown remote.kind %q", cfg.Remote.Kind)
	}
}

// stopAndWait shuts a one-shot command's coordinator down cleanly so its
// worker goroutines don't leak past the command's return.
func stopAndWait(coord *qrfs.Coordinator) {
	_ = coord.Stop()
	coord.Wait()
}

// tempDirer satisfies memfs.New's TempDir() requirement outside of tests,
// handing out a process-lifetime scratch directory under os.TempDir.
type tempDirer struct{}

func (tempDirer) TempDir() string {
	dir, err := os.MkdirTemp("", "qrfsd-memfs-")
	if err != nil {
		panic(fmt.Sprintf("qrfsd: create memfs scratch dir: %v", err))
	}
	return dir
}
