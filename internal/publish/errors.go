// Package publish uploads rendered reports to an S3 bucket for static
// hosting.
package publish

import "fmt"

// PublishError represents a failed upload. The locally rendered artifact is
// never removed on publish failure; callers report its path and exit.
type PublishError struct {
	Bucket string
	Key    string
	Cause  error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish error for s3://%s/%s: %v", e.Bucket, e.Key, e.Cause)
}

func (e *PublishError) Unwrap() error {
	return e.Cause
}
