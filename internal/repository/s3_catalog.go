package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	appConfig "github.com/mansoorceksport/fitgauge/internal/config"
	"github.com/mansoorceksport/fitgauge/internal/domain"
)

// s3API is the subset of the S3 client used by the catalog
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// S3CatalogRepository reads the tier configuration and food catalog from
// JSON objects in an S3-compatible bucket (SeaweedFS, MinIO, AWS).
// It implements domain.TierSource and domain.FoodSource.
type S3CatalogRepository struct {
	client   s3API
	bucket   string
	tiersKey string
	foodsKey string
}

// NewS3CatalogRepository connects to the bucket described by cfg
func NewS3CatalogRepository(ctx context.Context, cfg appConfig.S3Config) (*S3CatalogRepository, error) {
	accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
	if accessKey == "" {
		// SeaweedFS/MinIO without auth still expect signed requests
		accessKey, secretKey = "any", "any"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return newS3CatalogRepository(client, cfg), nil
}

func newS3CatalogRepository(client s3API, cfg appConfig.S3Config) *S3CatalogRepository {
	return &S3CatalogRepository{
		client:   client,
		bucket:   cfg.Bucket,
		tiersKey: cfg.TiersKey,
		foodsKey: cfg.FoodsKey,
	}
}

// ListTiers decodes the tiers object. A missing object is an empty configuration.
func (r *S3CatalogRepository) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	tiers := []domain.Tier{}
	if err := r.getJSON(ctx, r.tiersKey, &tiers); err != nil {
		return nil, fmt.Errorf("failed to load tiers: %w", err)
	}
	return tiers, nil
}

// ListFoods decodes the foods object. A missing object is an empty catalog.
func (r *S3CatalogRepository) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	foods := []domain.FoodItem{}
	if err := r.getJSON(ctx, r.foodsKey, &foods); err != nil {
		return nil, fmt.Errorf("failed to load foods: %w", err)
	}
	return foods, nil
}

// PutTiers publishes the tier configuration, replacing the current object
func (r *S3CatalogRepository) PutTiers(ctx context.Context, tiers []domain.Tier) error {
	return r.putJSON(ctx, r.tiersKey, tiers)
}

// PutFoods publishes the food catalog, replacing the current object
func (r *S3CatalogRepository) PutFoods(ctx context.Context, foods []domain.FoodItem) error {
	return r.putJSON(ctx, r.foodsKey, foods)
}

func (r *S3CatalogRepository) getJSON(ctx context.Context, key string, dest interface{}) error {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil
		}
		return fmt.Errorf("get %s/%s: %w", r.bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return fmt.Errorf("read %s/%s: %w", r.bucket, key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s/%s: %w", r.bucket, key, err)
	}
	return nil
}

func (r *S3CatalogRepository) putJSON(ctx context.Context, key string, value interface{}) error {
	if err := r.ensureBucket(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return nil
}

// ensureBucket checks if bucket exists, creating it if necessary
func (r *S3CatalogRepository) ensureBucket(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err == nil {
		return nil
	}

	_, err = r.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", r.bucket, err)
	}
	return nil
}
