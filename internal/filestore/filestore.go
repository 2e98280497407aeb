// Package filestore contains an object-storage interface and the per-bucket
// upload rules.
package filestore

import (
	"context"
	"errors"
	"io"
)

//go:generate mockgen -destination=./mock/filestore.go -package=mock -source=filestore.go

// ErrUnknownBucket ...
var ErrUnknownBucket = errors.New("unknown bucket")

// ErrFileTooLarge ...
var ErrFileTooLarge = errors.New("file too large")

// ErrDisallowedType ...
var ErrDisallowedType = errors.New("disallowed file type")

const mb = 1 << 20

// BucketRule limits what can be written into a bucket.
type BucketRule struct {
	MaxSize      int64
	AllowedTypes []string
	Public       bool
}

// Buckets is the fixed allow-list of buckets.
var Buckets = map[string]BucketRule{
	"avatars": {
		MaxSize:      5 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		Public:       true,
	},
	"banners": {
		MaxSize:      10 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		Public:       true,
	},
	"post-media": {
		MaxSize:      50 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif", "video/mp4", "video/webm"},
		Public:       true,
	},
	"resumes": {
		MaxSize:      10 * mb,
		AllowedTypes: []string{"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		Public:       false,
	},
	"message-attachments": {
		MaxSize:      25 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif", "application/pdf", "application/zip"},
		Public:       false,
	},
	"workspace-files": {
		MaxSize:      25 * mb,
		AllowedTypes: []string{"application/pdf", "application/zip", "text/plain", "application/json"},
		Public:       false,
	},
	"company-logos": {
		MaxSize:      5 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/svg+xml"},
		Public:       true,
	},
	"community-covers": {
		MaxSize:      10 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		Public:       true,
	},
}

// Validate checks the upload against the bucket's rule before any write
// happens.
func Validate(bucket, contentType string, size int64) (BucketRule, error) {
	rule, ok := Buckets[bucket]
	if !ok {
		return BucketRule{}, ErrUnknownBucket
	}

	if size > rule.MaxSize {
		return rule, ErrFileTooLarge
	}

	allowed := false
	for _, t := range rule.AllowedTypes {
		if t == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return rule, ErrDisallowedType
	}

	return rule, nil
}

// Storage writes uploaded objects.
type Storage interface {
	Save(ctx context.Context, bucket, path string, r io.Reader) error
	PublicURL(bucket, path string) string
}
