package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ApplyDefaults fills unset fields with sane defaults, following the
// teacher's strategy: zero values are replaced, explicit values preserved.
func ApplyDefaults(cfg *Config) {
	applyCoordinatorDefaults(&cfg.Coordinator)
	applyRemoteDefaults(&cfg.Remote)
	applyLoggingDefaults(&cfg.Logging)
	applyMetricsDefaults(&cfg.Metrics)
	applyTracingDefaults(&cfg.Tracing)
}

func applyCoordinatorDefaults(cfg *CoordinatorConfig) {
	if cfg.UploadConcurrency == 0 {
		cfg.UploadConcurrency = 1
	}
	if cfg.DownloadConcurrency == 0 {
		cfg.DownloadConcurrency = 1
	}
	if cfg.ReconcileInterval == 0 {
		cfg.ReconcileInterval = 600 * time.Second
	}
}

func applyRemoteDefaults(cfg *RemoteConfig) {
	if cfg.Kind == "" {
		cfg.Kind = "memory"
	}
	if cfg.Disk.RemoteDir == "" {
		cfg.Disk.RemoteDir = "./qrfs-remote"
	}
	if cfg.Disk.LocalDir == "" {
		cfg.Disk.LocalDir = "./qrfs-cache"
	}
	if cfg.S3.LocalCacheDir == "" {
		cfg.S3.LocalCacheDir = "./qrfs-cache"
	}
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stdout"
	}
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Port == 0 {
		cfg.Port = 9090
	}
}

func applyTracingDefaults(cfg *TracingConfig) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "qrfsd"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1.0
	}
}

func writeYAML(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
