package upload

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDummy(t *testing.T, dst string) error {
	t.Helper()
	return os.WriteFile(dst, []byte("not a real image"), 0o644)
}

func newTestUploadService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewService(root, "/static", func(file *multipart.FileHeader, dst string) error {
		return writeDummy(t, dst)
	})
	return svc, root
}

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestService_Store_HappyPath(t *testing.T) {
	svc, root := newTestUploadService(t)

	stored, err := svc.Store(context.Background(), header("beach.jpg", 1024), "images", "packages")

	require.NoError(t, err)
	assert.Equal(t, "/static/images/packages/"+stored.FileName, stored.URL)
	assert.FileExists(t, filepath.Join(root, "images", "packages", stored.FileName))
	// Stored names are random, not the client's.
	assert.NotEqual(t, "beach.jpg", stored.FileName)
	assert.Equal(t, ".jpg", filepath.Ext(stored.FileName))
}

func TestService_Store_Limits(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Store(context.Background(), header("huge.jpg", MaxUploadSize+1), "", "")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Store(context.Background(), header("script.exe", 10), "", "")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = svc.Store(context.Background(), header("a.png", 10), "../outside", "")
	assert.ErrorIs(t, err, ErrBadPath)
}

func TestService_ListAndDelete(t *testing.T) {
	svc, _ := newTestUploadService(t)

	stored, err := svc.Store(context.Background(), header("a.png", 10), "images", "posts")
	require.NoError(t, err)

	files, err := svc.List(context.Background(), "images", "posts")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, stored.Path, files[0].Path)

	require.NoError(t, svc.Delete(context.Background(), "images", stored.Path))

	files, err = svc.List(context.Background(), "images", "posts")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_List_MissingFolderIsEmpty(t *testing.T) {
	svc, _ := newTestUploadService(t)

	files, err := svc.List(context.Background(), "images", "nowhere")

	require.NoError(t, err)
	assert.Empty(t, files)
}
