// Package config loads QRFS's process configuration, adapted from the
// teacher's pkg/config: a YAML file plus QRFS_-prefixed environment
// overrides, decoded with viper/mapstructure and checked with
// go-playground/validator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Config is QRFS's top-level configuration.
//
// Configuration sources, highest precedence first:
//  1. Environment variables (QRFS_*), only for keys that also appear in
//     the configuration file; with no file found, none are read
//  2. Configuration file (YAML)
//  3. Defaults applied by ApplyDefaults
type Config struct {
	// Coordinator controls worker concurrency and remote-upload behavior.
	Coordinator CoordinatorConfig `mapstructure:"coordinator" yaml:"coordinator"`

	// Remote selects and configures the backing RemoteFs.
	Remote RemoteConfig `mapstructure:"remote" yaml:"remote"`

	// Logging controls internal/logger's behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Metrics controls the Prometheus registry and HTTP exposition.
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// Tracing controls OpenTelemetry span sampling.
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// CoordinatorConfig configures the qrfs.Coordinator.
type CoordinatorConfig struct {
	// UploadConcurrency is the number of upload/delete workers.
	UploadConcurrency int `mapstructure:"upload_concurrency" validate:"gte=0" yaml:"upload_concurrency"`

	// DownloadConcurrency is the number of download workers.
	DownloadConcurrency int `mapstructure:"download_concurrency" validate:"gte=0" yaml:"download_concurrency"`

	// UploadToRemote, when false, short-circuits upload/delete locally and
	// keeps the reconciler from starting. Worker pools start either way.
	UploadToRemote bool `mapstructure:"upload_to_remote" yaml:"upload_to_remote"`

	// ReconcileInterval is decoded and validated but not passed to the
	// coordinator: the reconciler always runs on its fixed 600s cadence.
	ReconcileInterval time.Duration `mapstructure:"reconcile_interval" validate:"gte=0" yaml:"reconcile_interval"`
}

// RemoteConfig selects and configures the RemoteFs backend.
type RemoteConfig struct {
	// Kind selects the backend: "s3", "disk", or "memory".
	Kind string `mapstructure:"kind" validate:"required,oneof=s3 disk memory" yaml:"kind"`

	S3   S3Config   `mapstructure:"s3" yaml:"s3"`
	Disk DiskConfig `mapstructure:"disk" yaml:"disk"`
}

// S3Config configures pkg/remotefs/s3fs.
type S3Config struct {
	Bucket         string `mapstructure:"bucket" yaml:"bucket"`
	Region         string `mapstructure:"region" yaml:"region"`
	Endpoint       string `mapstructure:"endpoint" yaml:"endpoint"`
	KeyPrefix      string `mapstructure:"key_prefix" yaml:"key_prefix"`
	ForcePathStyle bool   `mapstructure:"force_path_style" yaml:"force_path_style"`
	LocalCacheDir  string `mapstructure:"local_cache_dir" yaml:"local_cache_dir"`
}

// DiskConfig configures pkg/remotefs/diskfs.
type DiskConfig struct {
	RemoteDir string `mapstructure:"remote_dir" yaml:"remote_dir"`
	LocalDir  string `mapstructure:"local_dir" yaml:"local_dir"`
}

// LoggingConfig mirrors internal/logger.Config for file/env decoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// MetricsConfig controls whether the Prometheus registry is initialized.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	Port    int  `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// TracingConfig controls internal/tracing's sampling tracer provider.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled" yaml:"enabled"`
	ServiceName string  `mapstructure:"service_name" yaml:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"omitempty,gte=0,lte=1" yaml:"sample_rate"`
}

// Load reads configuration from configPath (or the default search path if
// empty), applies environment overrides and defaults, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	found, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if found {
		if err := v.Unmarshal(cfg, viper.DecodeHook(durationDecodeHook())); err != nil {
			return nil, fmt.Errorf("config: unmarshal: %w", err)
		}
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("QRFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(".")
	v.SetConfigName("qrfs")
	v.SetConfigType("yaml")
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("config: read config file: %w", err)
	}
	return true, nil
}

func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != durationType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// Validate checks cfg against its `validate` tags using go-playground/validator,
// then applies the cross-struct checks struct tags can't express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	return validateRemote(cfg.Remote)
}

// validateRemote checks RemoteConfig fields whose requiredness depends on
// Kind. required_if can't reach across S3Config/DiskConfig, so this is
// manual.
func validateRemote(cfg RemoteConfig) error {
	switch cfg.Kind {
	case "s3":
		if cfg.S3.Bucket == "" {
			return fmt.Errorf("config: remote.s3.bucket is required when remote.kind is s3")
		}
	case "disk":
		if cfg.Disk.RemoteDir == "" {
			return fmt.Errorf("config: remote.disk.remote_dir is required when remote.kind is disk")
		}
	}
	return nil
}

// SaveDefault writes a fully-defaulted config to path in YAML form, for
// `qrfsd init`.
func SaveDefault(path string) error {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create config directory: %w", err)
	}
	return writeYAML(path, cfg)
}
