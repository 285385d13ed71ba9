package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
)

// ScriptStorage locates the predictor script and makes it available on the
// local filesystem before the server starts accepting requests.
type ScriptStorage interface {
	MaterializeScript(ctx context.Context) (string, error)
}

// LocalScriptStorage serves the script straight from disk (the default:
// the script ships alongside the server).
type LocalScriptStorage struct {
	path string
}

func NewLocalScriptStorage(path string) *LocalScriptStorage {
	return &LocalScriptStorage{path: path}
}

func (s *LocalScriptStorage) MaterializeScript(ctx context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", fmt.Errorf("model script not found at %s: %w", s.path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("model script path %s is a directory", s.path)
	}
	return filepath.Abs(s.path)
}

// S3ScriptStorage downloads the script from S3 into a temp file at startup,
// for deployments where the model ships separately from the server image.
type S3ScriptStorage struct {
	client *s3.Client
	bucket string
	key    string
}

func NewS3ScriptStorage(bucket, key string) (*S3ScriptStorage, error) {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	// Instrument AWS SDK v2 with X-Ray for automatic S3 operation tracing
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)

	client := s3.NewFromConfig(cfg)
	return &S3ScriptStorage{client: client, bucket: bucket, key: key}, nil
}

func (s *S3ScriptStorage) MaterializeScript(ctx context.Context) (string, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return "", fmt.Errorf("fetch model script s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer output.Body.Close()

	f, err := os.CreateTemp("", "ml_model_*.py")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, output.Body); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// NewScriptStorage creates the appropriate storage backend based on environment
func NewScriptStorage(source, scriptPath, bucket, key string) (ScriptStorage, error) {
	switch source {
	case "s3":
		if bucket == "" {
			return nil, fmt.Errorf("MODEL_BUCKET is required when MODEL_SOURCE=s3")
		}
		return NewS3ScriptStorage(bucket, key)
	case "local":
		return NewLocalScriptStorage(scriptPath), nil
	default:
		return nil, fmt.Errorf("unknown model source: %s", source)
	}
}
