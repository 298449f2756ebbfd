// Package config provides environment-driven configuration for the reporter.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultNamespace     = "default"
	DefaultWorkflowLimit = 1000
	DefaultS3Prefix      = "argo-reports/"
	DefaultS3Region      = "eu-central-1"
)

// Config is the immutable process configuration, read once at startup and
// passed by parameter into each pipeline stage.
type Config struct {
	// APIURL is the Argo Workflows list endpoint.
	APIURL string `validate:"required,url"`
	// BearerToken authorizes list calls. May be empty; unauthenticated
	// access is permitted when the API allows it.
	BearerToken   string
	Namespace     string
	WorkflowLimit int `validate:"gte=1"`

	// S3Bucket enables publishing when non-empty.
	S3Bucket string
	S3Prefix string
	S3Region string `validate:"required"`
}

// FromEnv builds a Config from the environment:
//
//	ARGO_API_URL, ARGO_BEARER_TOKEN, ARGO_NAMESPACE, ARGO_WORKFLOW_LIMIT,
//	S3_BUCKET, S3_PREFIX, AWS_REGION
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIURL:        os.Getenv("ARGO_API_URL"),
		BearerToken:   os.Getenv("ARGO_BEARER_TOKEN"),
		Namespace:     getenvDefault("ARGO_NAMESPACE", DefaultNamespace),
		WorkflowLimit: DefaultWorkflowLimit,
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Prefix:      getenvDefault("S3_PREFIX", DefaultS3Prefix),
		S3Region:      getenvDefault("AWS_REGION", DefaultS3Region),
	}

	if raw := os.Getenv("ARGO_WORKFLOW_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ARGO_WORKFLOW_LIMIT %q: %w", raw, err)
		}
		cfg.WorkflowLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// PublishEnabled reports whether a destination bucket is configured. When it
// is false the publish stage is skipped entirely.
func (c *Config) PublishEnabled() bool {
	return c.S3Bucket != ""
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
