package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinioAPI - минимальная замена клиента MinIO, объекты лежат в памяти
type fakeMinioAPI struct {
	bucketExists bool
	madeBucket   string
	objects      map[string][]byte
}

func newFakeMinioAPI(bucketExists bool) *fakeMinioAPI {
	return &fakeMinioAPI{
		bucketExists: bucketExists,
		objects:      make(map[string][]byte),
	}
}

func (f *fakeMinioAPI) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, nil
}

func (f *fakeMinioAPI) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	f.madeBucket = bucketName
	f.bucketExists = true
	return nil
}

func (f *fakeMinioAPI) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucketName+"/"+objectName] = data
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(data))}, nil
}

func (f *fakeMinioAPI) GetObject(_ context.Context, bucketName, objectName string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	data, ok := f.objects[bucketName+"/"+objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeMinioAPI) RemoveObject(_ context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, bucketName+"/"+objectName)
	return nil
}

func TestNewClientWithAPI_CreatesMissingBucket(t *testing.T) {
	// Подготовка: бакета еще нет
	api := newFakeMinioAPI(false)

	// Действие
	_, err := NewClientWithAPI(context.Background(), api, "safevoice-evidence")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "safevoice-evidence", api.madeBucket)
}

func TestNewClientWithAPI_KeepsExistingBucket(t *testing.T) {
	// Подготовка: бакет уже существует
	api := newFakeMinioAPI(true)

	// Действие
	_, err := NewClientWithAPI(context.Background(), api, "safevoice-evidence")

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, api.madeBucket)
}

func TestClient_UploadDownloadDelete(t *testing.T) {
	// Подготовка
	ctx := context.Background()
	api := newFakeMinioAPI(true)
	client, err := NewClientWithAPI(ctx, api, "safevoice-evidence")
	require.NoError(t, err)

	payload := []byte("encrypted evidence bytes")

	// Действие: загрузка
	err = client.Upload(ctx, "incident-1/object-1", bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	// Действие: скачивание
	obj, err := client.Download(ctx, "incident-1/object-1")
	require.NoError(t, err)
	defer obj.Close()
	got, err := io.ReadAll(obj)
	require.NoError(t, err)

	// Проверки: байты вернулись как есть и объект лежит в нужном бакете
	assert.Equal(t, payload, got)
	_, ok := api.objects["safevoice-evidence/incident-1/object-1"]
	assert.True(t, ok)

	// Действие: удаление
	require.NoError(t, client.Delete(ctx, "incident-1/object-1"))

	// Проверки: объект исчез, повторное скачивание дает ошибку
	_, err = client.Download(ctx, "incident-1/object-1")
	require.Error(t, err)
}
