package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryBucket implements objectAPI in memory.
type memoryBucket struct {
	mu      sync.Mutex
	exists  bool
	objects map[string][]byte

	lastSize        int64
	lastContentType string

	bucketErr error
	putErr    error
}

func newMemoryBucket(exists bool) *memoryBucket {
	return &memoryBucket{exists: exists, objects: map[string][]byte{}}
}

func (m *memoryBucket) BucketExists(context.Context, string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exists, m.bucketErr
}

func (m *memoryBucket) MakeBucket(context.Context, string, minioLib.MakeBucketOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exists = true
	return nil
}

func (m *memoryBucket) PutObject(_ context.Context, _, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if m.putErr != nil {
		return minioLib.UploadInfo{}, m.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.lastSize = size
	m.lastContentType = opts.ContentType
	return minioLib.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func TestNewClient_CreatesMissingBucket(t *testing.T) {
	api := newMemoryBucket(false)

	c, err := newClient(context.Background(), api, "archive")
	require.NoError(t, err)
	assert.Equal(t, "archive", c.bucket)
	assert.True(t, api.exists)
}

func TestNewClient_BucketCheckFails(t *testing.T) {
	api := newMemoryBucket(false)
	api.bucketErr = errors.New("connection refused")

	_, err := newClient(context.Background(), api, "archive")
	assert.ErrorContains(t, err, "failed to check bucket existence")
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()
	api := newMemoryBucket(true)
	c, err := newClient(ctx, api, "archive")
	require.NoError(t, err)

	key := "quizzes/abc.json"
	payload := []byte(`{"id":"abc"}`)

	require.NoError(t, c.Upload(ctx, key, bytes.NewReader(payload)))
	assert.Equal(t, int64(len(payload)), api.lastSize)
	assert.Equal(t, "application/json", api.lastContentType)
	assert.Equal(t, payload, api.objects[key])
}

func TestClient_Upload_UnknownSize(t *testing.T) {
	api := newMemoryBucket(true)
	c, err := newClient(context.Background(), api, "archive")
	require.NoError(t, err)

	pr, pw := io.Pipe()
	go func() {
		_, _ = pw.Write([]byte("raw"))
		_ = pw.Close()
	}()

	require.NoError(t, c.Upload(context.Background(), "blob", pr))
	assert.Equal(t, int64(-1), api.lastSize)
	assert.Equal(t, "application/octet-stream", api.lastContentType)
}

func TestClient_Upload_Error(t *testing.T) {
	api := newMemoryBucket(true)
	api.putErr = errors.New("quota exceeded")
	c, err := newClient(context.Background(), api, "archive")
	require.NoError(t, err)

	err = c.Upload(context.Background(), "quizzes/x.json", strings.NewReader("{}"))
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestClient_Ping(t *testing.T) {
	api := newMemoryBucket(true)
	c, err := newClient(context.Background(), api, "archive")
	require.NoError(t, err)

	require.NoError(t, c.Ping(context.Background()))

	api.bucketErr = errors.New("timeout")
	assert.Error(t, c.Ping(context.Background()))
}
