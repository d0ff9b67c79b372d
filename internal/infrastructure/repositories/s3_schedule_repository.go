package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// S3ScheduleRepository keeps the whole collection in one JSON object so the
// blob stays byte-compatible with file exports. Reads and writes go through
// an in-process cache guarded by a mutex; the engine assumes a single
// logical writer, so no optimistic concurrency control is applied and the
// later writer wins.
type S3ScheduleRepository struct {
	client *s3.Client
	bucket string
	key    string

	mu        sync.RWMutex
	loaded    bool
	schedules []*schedule.Schedule
}

// S3Options configures the S3 backend.
type S3Options struct {
	Bucket   string
	Region   string
	Key      string
	Endpoint string
}

// NewS3ScheduleRepository creates a repository backed by a single S3 object.
func NewS3ScheduleRepository(ctx context.Context, opts S3Options) (*S3ScheduleRepository, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is required")
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if opts.Key == "" {
		opts.Key = "schedules.json"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if opts.Endpoint != "" {
		// Custom endpoint for S3-compatible services
		client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(cfg)
	}

	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(opts.Bucket)}); err != nil {
		return nil, fmt.Errorf("failed to access S3 bucket %q: %w", opts.Bucket, err)
	}

	log.Printf("S3 schedule storage initialized: bucket=%s, key=%s", opts.Bucket, opts.Key)

	return &S3ScheduleRepository{
		client: client,
		bucket: opts.Bucket,
		key:    strings.TrimPrefix(opts.Key, "/"),
	}, nil
}

// Save appends a schedule and writes the blob back.
func (r *S3ScheduleRepository) Save(ctx context.Context, s *schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		return fmt.Errorf("schedule ID cannot be empty")
	}
	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	for _, existing := range r.schedules {
		if existing.ID == s.ID {
			return fmt.Errorf("schedule %s already exists", s.ID)
		}
	}

	next := append(append([]*schedule.Schedule(nil), r.schedules...), s.Clone())
	if err := r.putBlob(ctx, next); err != nil {
		return err
	}
	r.schedules = next
	return nil
}

// FindByID retrieves a schedule by its ID.
func (r *S3ScheduleRepository) FindByID(ctx context.Context, id string) (*schedule.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	for _, s := range r.schedules {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindAll retrieves all schedules in storage order.
func (r *S3ScheduleRepository) FindAll(ctx context.Context) ([]*schedule.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	result := make([]*schedule.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		result = append(result, s.Clone())
	}
	return result, nil
}

// Update replaces an existing schedule and writes the blob back.
func (r *S3ScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	for i, existing := range r.schedules {
		if existing.ID == s.ID {
			next := append([]*schedule.Schedule(nil), r.schedules...)
			next[i] = s.Clone()
			if err := r.putBlob(ctx, next); err != nil {
				return err
			}
			r.schedules = next
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a schedule by ID. Absent IDs are a no-op.
func (r *S3ScheduleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(ctx); err != nil {
		return err
	}
	for i, s := range r.schedules {
		if s.ID == id {
			next := append([]*schedule.Schedule(nil), r.schedules[:i]...)
			next = append(next, r.schedules[i+1:]...)
			if err := r.putBlob(ctx, next); err != nil {
				return err
			}
			r.schedules = next
			return nil
		}
	}
	return nil
}

// ReplaceAll swaps the entire collection and writes the blob back.
func (r *S3ScheduleRepository) ReplaceAll(ctx context.Context, schedules []*schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]*schedule.Schedule, 0, len(schedules))
	for _, s := range schedules {
		next = append(next, s.Clone())
	}
	if err := r.putBlob(ctx, next); err != nil {
		return err
	}
	r.schedules = next
	r.loaded = true
	return nil
}

// Close is a no-op for the S3 backend.
func (r *S3ScheduleRepository) Close() error {
	return nil
}

// ensureLoaded fetches the blob once; a missing object starts an empty
// collection and malformed content degrades to empty.
func (r *S3ScheduleRepository) ensureLoaded(ctx context.Context) error {
	if r.loaded {
		return nil
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			r.schedules = nil
			r.loaded = true
			return nil
		}
		return fmt.Errorf("failed to get schedule blob: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return fmt.Errorf("failed to read schedule blob: %w", err)
	}

	var schedules []*schedule.Schedule
	if err := json.Unmarshal(data, &schedules); err != nil {
		log.Printf("Malformed schedule blob s3://%s/%s, starting empty: %v", r.bucket, r.key, err)
		schedules = nil
	}

	r.schedules = schedules
	r.loaded = true
	return nil
}

// putBlob uploads the collection as one pretty-printed JSON object.
func (r *S3ScheduleRepository) putBlob(ctx context.Context, schedules []*schedule.Schedule) error {
	if schedules == nil {
		schedules = []*schedule.Schedule{}
	}
	data, err := json.MarshalIndent(schedules, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedules: %w", err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put schedule blob: %w", err)
	}
	return nil
}
