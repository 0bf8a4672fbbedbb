// Package refcontext supplies the opaque reference material embedded in
// enhancement prompts. The production source is a fixed set of sample resume
// PDFs held in S3; the pipeline treats the result as an uninterpreted string.
package refcontext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ledongthuc/pdf"
)

// Provider yields the reference context block for prompt assembly
type Provider interface {
	ReferenceText(ctx context.Context) string
}

// Static is a fixed-string Provider for offline use and tests
type Static string

// ReferenceText returns the fixed string
func (s Static) ReferenceText(context.Context) string { return string(s) }

// objectGetter is the slice of the S3 client the provider uses
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Provider extracts plain text from sample PDFs stored in an S3 bucket.
// Keys that cannot be fetched or parsed are logged and skipped; the provider
// degrades to whatever text it could gather, possibly none.
type S3Provider struct {
	client objectGetter
	bucket string
	keys   []string
}

// DefaultSampleKeys are the sample documents shipped with the deployment
var DefaultSampleKeys = []string{
	"Federal Resume Samples.pdf",
	"sample-resume.pdf",
}

// NewS3Provider creates a provider reading the given keys from bucket
func NewS3Provider(client objectGetter, bucket string, keys []string) *S3Provider {
	if len(keys) == 0 {
		keys = DefaultSampleKeys
	}
	return &S3Provider{client: client, bucket: bucket, keys: keys}
}

// ReferenceText downloads and concatenates the text of every sample PDF
func (p *S3Provider) ReferenceText(ctx context.Context) string {
	var combined strings.Builder
	for _, key := range p.keys {
		text, err := p.fetchPDFText(ctx, key)
		if err != nil {
			log.Printf("refcontext: skipping %s: %v", key, err)
			continue
		}
		combined.WriteString(text)
		combined.WriteString("\n")
	}
	return combined.String()
}

func (p *S3Provider) fetchPDFText(ctx context.Context, key string) (string, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}

	return extractPDFText(buf.Bytes())
}

// extractPDFText concatenates the plain text of every page in the document
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, _ := page.GetPlainText(nil)
		text.WriteString(content)
	}
	return text.String(), nil
}
