package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ARGO_API_URL", "https://argo.example.com/api/v1/workflows/batch")
	t.Setenv("ARGO_BEARER_TOKEN", "")
	t.Setenv("ARGO_NAMESPACE", "")
	t.Setenv("ARGO_WORKFLOW_LIMIT", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_PREFIX", "")
	t.Setenv("AWS_REGION", "")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://argo.example.com/api/v1/workflows/batch", cfg.APIURL)
	assert.Empty(t, cfg.BearerToken)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Equal(t, DefaultWorkflowLimit, cfg.WorkflowLimit)
	assert.Equal(t, DefaultS3Prefix, cfg.S3Prefix)
	assert.Equal(t, DefaultS3Region, cfg.S3Region)
	assert.False(t, cfg.PublishEnabled())
}

func TestFromEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ARGO_BEARER_TOKEN", "tkn")
	t.Setenv("ARGO_NAMESPACE", "batch")
	t.Setenv("ARGO_WORKFLOW_LIMIT", "250")
	t.Setenv("S3_BUCKET", "reports")
	t.Setenv("S3_PREFIX", "wf/")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "tkn", cfg.BearerToken)
	assert.Equal(t, "batch", cfg.Namespace)
	assert.Equal(t, 250, cfg.WorkflowLimit)
	assert.Equal(t, "reports", cfg.S3Bucket)
	assert.Equal(t, "wf/", cfg.S3Prefix)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.True(t, cfg.PublishEnabled())
}

func TestFromEnvMissingAPIURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ARGO_API_URL", "")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestFromEnvBadLimit(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("ARGO_WORKFLOW_LIMIT", "lots")
	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("ARGO_WORKFLOW_LIMIT", "0")
	_, err = FromEnv()
	require.Error(t, err, "limit below 1 fails validation")
}
