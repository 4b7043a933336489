// Package s3fs is an S3-backed remotefs.RemoteFs adapter: uploads and
// deletes hit S3 directly, downloads stream into a local cache directory
// so the QRFS coordinator's size-verification logic can stat a real file.
package s3fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marmos91/qrfs/pkg/remotefs"
)

// Config configures an S3-backed RemoteFs.
type Config struct {
	// Bucket is the S3 bucket name.
	Bucket string

	// Region is the AWS region (optional, uses SDK default if empty).
	Region string

	// Endpoint is the S3 endpoint URL (optional, for S3-compatible services).
	Endpoint string

	// KeyPrefix is prepended to all remote paths (e.g. "qrfs/").
	KeyPrefix string

	// ForcePathStyle forces path-style addressing (required for Localstack/MinIO).
	ForcePathStyle bool

	// LocalCacheDir is where downloaded objects are written and where
	// upload callers are expected to stage files before calling
	// UploadFile.
	LocalCacheDir string
}

// FS is an S3-backed remotefs.RemoteFs.
type FS struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	localDir  string
}

// New constructs an S3-backed RemoteFs with an existing client.
func New(client *s3.Client, cfg Config) (*FS, error) {
	if cfg.LocalCacheDir == "" {
		return nil, errors.New("s3fs: LocalCacheDir is required")
	}
	if err := os.MkdirAll(cfg.LocalCacheDir, 0755); err != nil {
		return nil, fmt.Errorf("s3fs: create local cache dir: %w", err)
	}
	return &FS{client: client, bucket: cfg.Bucket, keyPrefix: cfg.KeyPrefix, localDir: cfg.LocalCacheDir}, nil
}

// NewFromConfig constructs an S3-backed RemoteFs, loading AWS credentials
// and building the client from cfg.
func NewFromConfig(ctx context.Context, cfg Config) (*FS, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3fs: load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) { o.BaseEndpoint = aws.String(cfg.Endpoint) })
	}
	if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) { o.UsePathStyle = true })
	}

	return New(s3.NewFromConfig(awsCfg, s3Opts...), cfg)
}

func (f *FS) fullKey(remotePath string) string {
	return f.keyPrefix + remotePath
}

func (f *FS) UploadFile(ctx context.Context, remotePath, localPath string) (int64, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, err
	}

	_, err = f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(remotePath)),
		Body:   file,
	})
	if err != nil {
		return 0, fmt.Errorf("s3fs: put object %s: %w", remotePath, err)
	}

	return info.Size(), nil
}

func (f *FS) DownloadFile(ctx context.Context, remotePath string, expectedFileSize int64) (string, error) {
	resp, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(remotePath)),
	})
	if err != nil {
		if isNotFoundError(err) {
			return "", remotefs.ErrNotFound
		}
		return "", fmt.Errorf("s3fs: get object %s: %w", remotePath, err)
	}
	defer resp.Body.Close()

	localPath := f.LocalPath(remotePath)
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return "", err
	}

	tmpPath := localPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, localPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}

	return localPath, nil
}

func (f *FS) DeleteFile(ctx context.Context, remotePath string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.fullKey(remotePath)),
	})
	if err != nil {
		return fmt.Errorf("s3fs: delete object %s: %w", remotePath, err)
	}
	return nil
}

func (f *FS) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	paginator := s3.NewListObjectsV2Paginator(f.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(f.bucket),
		Prefix: aws.String(f.fullKey(prefix)),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3fs: list objects: %w", err)
		}
		for _, obj := range page.Contents {
			names = append(names, strings.TrimPrefix(aws.ToString(obj.Key), f.keyPrefix))
		}
	}
	return names, nil
}

func (f *FS) ListWithMetadata(ctx context.Context, prefix string) ([]remotefs.FileInfo, error) {
	var infos []remotefs.FileInfo
	paginator := s3.NewListObjectsV2Paginator(f.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(f.bucket),
		Prefix: aws.String(f.fullKey(prefix)),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3fs: list objects: %w", err)
		}
		for _, obj := range page.Contents {
			infos = append(infos, remotefs.FileInfo{
				RemotePath:   strings.TrimPrefix(aws.ToString(obj.Key), f.keyPrefix),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
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

func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "NoSuchKey") ||
		strings.Contains(errStr, "NotFound") ||
		strings.Contains(errStr, "404")
}

var _ remotefs.RemoteFs = (*FS)(nil)
