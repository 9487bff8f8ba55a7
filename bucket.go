package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Canned ACL applied to every uploaded object.
const publicRead = s3.ObjectCannedACLPublicRead

// bucket is the part of an object store the publisher needs.
type bucket interface {
	Name() string
	Put(ctx context.Context, key string, body []byte, contentType, contentMD5 string) error
	MakePublic(ctx context.Context, key string) error
}

// s3Bucket implements bucket on top of the AWS SDK.
type s3Bucket struct {
	svc  s3iface.S3API
	name string
}

// openS3Bucket returns the named bucket, failing if it is missing or not accessible.
func openS3Bucket(ctx context.Context, svc s3iface.S3API, name string) (*s3Bucket, error) {
	if _, err := svc.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)}); err != nil {
		return nil, fmt.Errorf("bucket %q is not accessible: %w", name, err)
	}

	return &s3Bucket{svc: svc, name: name}, nil
}

func (b *s3Bucket) Name() string {
	return b.name
}

func (b *s3Bucket) Put(ctx context.Context, key string, body []byte, contentType, contentMD5 string) error {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}
	if contentMD5 != "" {
		in.ContentMD5 = aws.String(contentMD5)
	}

	if _, err := b.svc.PutObjectWithContext(ctx, in); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}

	return nil
}

func (b *s3Bucket) MakePublic(ctx context.Context, key string) error {
	_, err := b.svc.PutObjectAclWithContext(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
		ACL:    aws.String(publicRead),
	})
	if err != nil {
		return fmt.Errorf("set %s acl on %s: %w", publicRead, key, err)
	}

	return nil
}

// minioConfig holds the settings of an S3 compatible endpoint.
type minioConfig struct {
	Endpoint string // e.g., "localhost:9000"
	Bucket   string
	Region   string
	UseSSL   bool
}

// minioBucket implements bucket for S3 compatible endpoints (MinIO, Ceph, etc.).
type minioBucket struct {
	client *minio.Client
	name   string
}

// newMinioBucket connects to cfg.Endpoint using the AWS_* environment
// credentials. The bucket has to exist already.
func newMinioBucket(ctx context.Context, cfg minioConfig) (*minioBucket, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewEnvAWS(),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	return &minioBucket{client: client, name: cfg.Bucket}, nil
}

func (m *minioBucket) Name() string {
	return m.name
}

// Put uploads body with the public-read canned ACL attached to the request.
func (m *minioBucket) Put(ctx context.Context, key string, body []byte, contentType, contentMD5 string) error {
	_, err := m.client.PutObject(ctx, m.name, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType:    contentType,
		UserMetadata:   map[string]string{"x-amz-acl": publicRead},
		SendContentMd5: contentMD5 != "",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to minio: %w", key, err)
	}

	return nil
}

// MakePublic is a no-op: the MinIO API has no object ACL call, Put already sent the canned ACL.
func (m *minioBucket) MakePublic(context.Context, string) error {
	return nil
}
