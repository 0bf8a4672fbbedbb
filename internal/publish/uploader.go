// Package publish uploads rendered artifacts to object storage under a
// deterministic per-user key scheme.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the slice of the S3 client the uploader uses
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader publishes PDF artifacts to an S3 bucket
type Uploader struct {
	client objectPutter
	bucket string
	now    func() time.Time
}

// NewUploader creates an uploader targeting the given bucket
func NewUploader(client objectPutter, bucket string) *Uploader {
	return &Uploader{client: client, bucket: bucket, now: time.Now}
}

// Report is the outcome of an upload batch
type Report struct {
	// Success is true when at least one file uploaded
	Success bool
	// URIs maps each uploaded filename to its storage URI
	URIs map[string]string
	// Diagnostic is set when Success is false
	Diagnostic string
}

// Upload publishes the named files from localDir. Per-file failures are logged
// and skipped; the batch fails only when nothing uploads at all, or when the
// input list is empty (in which case no network call is made).
func (u *Uploader) Upload(ctx context.Context, localDir string, filenames []string, userName, userEmail string) Report {
	if len(filenames) == 0 {
		return Report{Diagnostic: "no files provided for upload"}
	}

	folder := FolderName(userName, userEmail)
	uris := make(map[string]string)

	for _, filename := range filenames {
		localPath := filepath.Join(localDir, filename)
		data, err := os.ReadFile(localPath)
		if err != nil {
			log.Printf("publish: skipping %s: %v", filename, err)
			continue
		}

		key := fmt.Sprintf("resumes/%s/%s", folder, filename)
		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:             aws.String(u.bucket),
			Key:                aws.String(key),
			Body:               bytes.NewReader(data),
			ContentType:        aws.String("application/pdf"),
			ContentDisposition: aws.String(fmt.Sprintf("inline; filename=%q", filename)),
			Metadata: map[string]string{
				"username":         userName,
				"email":            userEmail,
				"upload_timestamp": u.now().Format(time.RFC3339),
			},
		})
		if err != nil {
			log.Printf("publish: failed to upload %s: %v", filename, err)
			continue
		}

		uris[filename] = fmt.Sprintf("s3://%s/%s", u.bucket, key)
	}

	if len(uris) == 0 {
		return Report{Diagnostic: "no files were successfully uploaded"}
	}

	return Report{Success: true, URIs: uris}
}

// FolderName derives the per-user storage folder from name and email: lowered,
// with everything outside [a-z0-9_-] replaced by an underscore.
func FolderName(userName, userEmail string) string {
	raw := strings.ToLower(userName + "_" + userEmail)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
