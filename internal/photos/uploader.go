// Package photos uploads report photos to object storage and returns the URLs
// the backend stores alongside the report.
package photos

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/service"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/schollz/progressbar/v3"
)

// KeyPrefix is the object key prefix for every uploaded photo.
const KeyPrefix = "reports/"

var (
	_ service.PhotoUploader = (*MinioUploader)(nil)
	_ service.PhotoUploader = PassthroughUploader{}
)

// Config locates the bucket photos are written to.
type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UseSSL        bool
}

// Enabled reports whether enough is configured to upload.
func (c Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// objectPutter is the subset of *minio.Client the uploader needs.
type objectPutter interface {
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinioUploader writes photos to an S3-compatible bucket.
type MinioUploader struct {
	store      objectPutter
	progress   io.Writer
	newKey     func(ext string) string
	bucket     string
	publicBase string
}

// Option configures a MinioUploader.
type Option func(*MinioUploader)

// WithProgress draws a progress bar per file on w.
func WithProgress(w io.Writer) Option {
	return func(u *MinioUploader) {
		u.progress = w
	}
}

// NewMinioUploader connects to the bucket described by cfg.
func NewMinioUploader(cfg Config, opts ...Option) (*MinioUploader, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: photos.endpoint and photos.bucket", common.ErrMissingConfig)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = scheme + "://" + cfg.Endpoint
	}

	return newUploader(client, cfg.Bucket, publicBase, opts...), nil
}

func newUploader(store objectPutter, bucket, publicBase string, opts ...Option) *MinioUploader {
	u := &MinioUploader{
		store:      store,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		newKey: func(ext string) string {
			return KeyPrefix + uuid.NewString() + ext
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload stores each local file and returns its public URL. Paths that are
// already URLs are returned unchanged. The first failure aborts the batch.
func (u *MinioUploader) Upload(ctx context.Context, paths []string) ([]string, error) {
	urls := make([]string, 0, len(paths))
	for _, path := range paths {
		if IsRemote(path) {
			urls = append(urls, path)
			continue
		}

		url, err := u.uploadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (u *MinioUploader) uploadFile(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("photo %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("photo %s: is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	key := u.newKey(ext)
	opts := minio.PutObjectOptions{ContentType: contentType(ext)}

	if u.progress != nil {
		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetWriter(u.progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription(filepath.Base(path)),
			progressbar.OptionOnCompletion(func() {
				if _, err := fmt.Fprintln(u.progress); err != nil {
					slog.Warn("Failed to write newline after progress bar", "error", err)
				}
			}),
		)
		opts.Progress = bar
	}

	if _, err := u.store.FPutObject(ctx, u.bucket, key, path, opts); err != nil {
		return "", fmt.Errorf("failed to upload photo %s: %w", path, err)
	}

	slog.Debug("Uploaded photo", "path", path, "bucket", u.bucket, "key", key, "size", info.Size())
	return u.publicBase + "/" + u.bucket + "/" + key, nil
}

func contentType(ext string) string {
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// IsRemote reports whether path is already an http(s) URL.
func IsRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// PassthroughUploader sends photo references to the backend as given. It is
// used when no object storage is configured.
type PassthroughUploader struct{}

// Upload returns a copy of paths.
func (PassthroughUploader) Upload(_ context.Context, paths []string) ([]string, error) {
	return append([]string(nil), paths...), nil
}

// New returns a MinioUploader when cfg is complete and a PassthroughUploader otherwise.
func New(cfg Config, opts ...Option) (service.PhotoUploader, error) {
	if !cfg.Enabled() {
		return PassthroughUploader{}, nil
	}
	return NewMinioUploader(cfg, opts...)
}
