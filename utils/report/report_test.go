package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gutwipe/utils/aws"
	"gutwipe/utils/file"
	"gutwipe/utils/gutmann"
)

type fakeAWS struct {
	account   string
	accountErr error
	uploads   []*aws.UploadInput
	uploadErr error
}

func (f *fakeAWS) GetAccountID(context.Context) (string, error) {
	return f.account, f.accountErr
}

func (f *fakeAWS) UploadFile(_ context.Context, in *aws.UploadInput) (*aws.UploadOutput, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads = append(f.uploads, in)
	return &aws.UploadOutput{ETag: "etag"}, nil
}

func sampleInfo() *file.FileInfo {
	return &file.FileInfo{Path: "secret.txt", FullPath: "/tmp/secret.txt", Size: 100}
}

func TestCompleteSuccess(t *testing.T) {
	r := New(sampleInfo(), "crypto", 64)
	r.Complete(&gutmann.Result{Passes: 35, BytesWritten: 10500}, nil)

	assert.Equal(t, StatusSuccess, r.Status)
	assert.Equal(t, 35, r.PassesDone)
	assert.EqualValues(t, 10500, r.BytesWritten)
	assert.Nil(t, r.Failure)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.FinishedAt.Before(r.StartedAt))
}

func TestCompleteFailureKeepsPosition(t *testing.T) {
	r := New(sampleInfo(), "crypto", 16)
	err := &gutmann.Error{Kind: gutmann.KindWrite, Pass: 17, SubPass: 2, Chunk: 3, Offset: 32, Err: errors.New("disk full")}
	r.Complete(nil, err)

	assert.Equal(t, StatusFailure, r.Status)
	require.NotNil(t, r.Failure)
	assert.Equal(t, "write failed", r.Failure.Kind)
	assert.Equal(t, 17, r.Failure.Pass)
	assert.Equal(t, 2, r.Failure.SubPass)
	assert.Equal(t, 3, r.Failure.Chunk)
	assert.EqualValues(t, 32, r.Failure.Offset)
	assert.Equal(t, 16, r.PassesDone)
	// 49 full sub-passes of 100 bytes plus the 32 bytes of the failing one
	assert.EqualValues(t, 4932, r.BytesWritten)
}

func TestMarshalRoundTrip(t *testing.T) {
	r := New(sampleInfo(), "clock", 64)
	r.Complete(nil, errors.New("boom"))

	data, err := r.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: failure")
	assert.Contains(t, string(data), "method: gutmann-35")

	back, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, "boom", back.Failure.Message)
}

func TestPublishLocalAndS3(t *testing.T) {
	dir := t.TempDir()
	client := &fakeAWS{account: "123456789012"}
	m := NewManager(nil, client,
		NewLocalStore(dir, file.NewUtils()),
		NewS3Store(client, "audit-bucket", "wipes"),
	)

	r := New(sampleInfo(), "crypto", 64)
	r.Complete(&gutmann.Result{Passes: 35}, nil)

	locs, err := m.Publish(context.Background(), r)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, filepath.Join(dir, r.ID+".yaml"), locs[0])
	assert.Equal(t, "s3://audit-bucket/wipes/"+r.ID+".yaml", locs[1])
	assert.Equal(t, "123456789012", r.Operator)

	data, err := os.ReadFile(locs[0])
	require.NoError(t, err)
	saved, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", saved.Operator)

	require.Len(t, client.uploads, 1)
	assert.Equal(t, "wipes/"+r.ID+".yaml", client.uploads[0].Key)
	assert.Equal(t, "success", client.uploads[0].Metadata["status"])
}

func TestPublishContinuesPastFailingStore(t *testing.T) {
	dir := t.TempDir()
	client := &fakeAWS{accountErr: errors.New("no credentials"), uploadErr: errors.New("access denied")}
	m := NewManager(nil, client,
		NewS3Store(client, "audit-bucket", ""),
		NewLocalStore(dir, file.NewUtils()),
	)

	r := New(sampleInfo(), "crypto", 64)
	locs, err := m.Publish(context.Background(), r)
	assert.ErrorContains(t, err, "access denied")
	assert.Len(t, locs, 1)
	assert.Empty(t, r.Operator)
}
