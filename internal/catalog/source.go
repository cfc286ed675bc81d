package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/cheftube/internal/config"
	"github.com/dmitrijs2005/cheftube/internal/models"
)

const s3Scheme = "s3://"

var ErrBadSource = errors.New("bad recipe source")

// Load builds the catalog named by cfg.RecipeSource: the bundled recipes
// when empty, an object when it starts with s3://, a local JSON file
// otherwise. When a bucket is configured, image keys are presigned.
func Load(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	src := strings.TrimSpace(cfg.RecipeSource)

	var (
		recipes []models.Recipe
		client  *s3.Client
		err     error
	)

	switch {
	case src == "":
		recipes, err = Parse(bytes.NewReader(defaultRecipes))
	case strings.HasPrefix(src, s3Scheme):
		bucket, key, perr := splitS3URI(src)
		if perr != nil {
			return nil, perr
		}
		client, err = newS3Client(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("s3 client: %w", err)
		}
		recipes, err = fetchS3(ctx, client, bucket, key)
	default:
		recipes, err = readFile(src)
	}
	if err != nil {
		return nil, err
	}

	c, err := New(recipes)
	if err != nil {
		return nil, err
	}

	if cfg.S3Enabled() {
		if client == nil {
			if client, err = newS3Client(ctx, cfg); err != nil {
				return nil, fmt.Errorf("s3 client: %w", err)
			}
		}
		c.images = &s3Images{pc: newS3PresignClient(client), bucket: cfg.S3Bucket}
	}

	return c, nil
}

func readFile(path string) ([]models.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipes: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// splitS3URI splits s3://bucket/key.
func splitS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q, want s3://bucket/key", ErrBadSource, uri)
	}
	return bucket, key, nil
}

func fetchS3(ctx context.Context, client *s3.Client, bucket, key string) ([]models.Recipe, error) {
	out, err := getObject(client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return Parse(out.Body)
}
