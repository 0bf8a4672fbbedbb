package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePutter records uploads and can fail selected keys
type fakePutter struct {
	puts    []*s3.PutObjectInput
	failKey string
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failKey != "" && *params.Key == f.failKey {
		return nil, errors.New("access denied")
	}
	f.puts = append(f.puts, params)
	return &s3.PutObjectOutput{}, nil
}

func writeArtifact(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 test"), 0o644))
}

func TestUpload_EmptyListFailsWithoutNetworkCall(t *testing.T) {
	putter := &fakePutter{}
	u := NewUploader(putter, "resume-bucket")

	report := u.Upload(context.Background(), t.TempDir(), nil, "Jane Doe", "jane@example.com")

	assert.False(t, report.Success)
	assert.Empty(t, putter.puts)
	assert.Contains(t, report.Diagnostic, "no files")
}

func TestUpload_KeySchemeAndMetadata(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "classic_JaneDoe_20240115_120000_resume_classic_CV.pdf")

	putter := &fakePutter{}
	u := NewUploader(putter, "resume-bucket")
	u.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	report := u.Upload(context.Background(), dir,
		[]string{"classic_JaneDoe_20240115_120000_resume_classic_CV.pdf"},
		"Jane Doe", "jane@example.com")

	require.True(t, report.Success)
	require.Len(t, putter.puts, 1)

	put := putter.puts[0]
	assert.Equal(t, "resume-bucket", *put.Bucket)
	assert.Equal(t, "resumes/jane_doe_jane_example_com/classic_JaneDoe_20240115_120000_resume_classic_CV.pdf", *put.Key)
	assert.Equal(t, "application/pdf", *put.ContentType)
	assert.Equal(t, `inline; filename="classic_JaneDoe_20240115_120000_resume_classic_CV.pdf"`, *put.ContentDisposition)
	assert.Equal(t, "Jane Doe", put.Metadata["username"])
	assert.Equal(t, "jane@example.com", put.Metadata["email"])
	assert.Equal(t, "2024-01-15T12:00:00Z", put.Metadata["upload_timestamp"])

	uri, ok := report.URIs["classic_JaneDoe_20240115_120000_resume_classic_CV.pdf"]
	require.True(t, ok)
	assert.Equal(t, "s3://resume-bucket/resumes/jane_doe_jane_example_com/classic_JaneDoe_20240115_120000_resume_classic_CV.pdf", uri)
}

func TestUpload_SkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "classic_a.pdf")

	putter := &fakePutter{}
	u := NewUploader(putter, "resume-bucket")

	report := u.Upload(context.Background(), dir, []string{"classic_a.pdf", "missing.pdf"}, "Jane", "jane@example.com")

	require.True(t, report.Success)
	assert.Len(t, report.URIs, 1)
	assert.Contains(t, report.URIs, "classic_a.pdf")
}

func TestUpload_SkipsFailedPut(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "classic_a.pdf")
	writeArtifact(t, dir, "sb2nov_a.pdf")

	putter := &fakePutter{failKey: "resumes/jane_jane_example_com/classic_a.pdf"}
	u := NewUploader(putter, "resume-bucket")

	report := u.Upload(context.Background(), dir, []string{"classic_a.pdf", "sb2nov_a.pdf"}, "Jane", "jane@example.com")

	require.True(t, report.Success)
	assert.Len(t, report.URIs, 1)
	assert.Contains(t, report.URIs, "sb2nov_a.pdf")
}

func TestUpload_AllFailuresFailsBatch(t *testing.T) {
	putter := &fakePutter{}
	u := NewUploader(putter, "resume-bucket")

	report := u.Upload(context.Background(), t.TempDir(), []string{"missing.pdf"}, "Jane", "jane@example.com")

	assert.False(t, report.Success)
	assert.Contains(t, report.Diagnostic, "no files were successfully uploaded")
}

func TestFolderName(t *testing.T) {
	tests := []struct {
		name  string
		user  string
		email string
		want  string
	}{
		{"simple", "Jane Doe", "jane@example.com", "jane_doe_jane_example_com"},
		{"hyphen kept", "Mary-Jane", "mj@x.io", "mary-jane_mj_x_io"},
		{"plus replaced", "Jo", "jo+tag@x.io", "jo_jo_tag_x_io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FolderName(tt.user, tt.email))
		})
	}
}
