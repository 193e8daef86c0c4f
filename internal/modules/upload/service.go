package upload

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrBadPath         = errors.New("invalid storage path")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// MaxUploadSize caps a single image at 10MB.
const MaxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// StoredFile describes one uploaded object.
type StoredFile struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	FileName string `json:"fileName"`
}

// Service stores images on local disk under <root>/<bucket>/<folder>
// and serves them through the static route. Buckets and folders come
// from the client but never escape the root.
type Service struct {
	root    string
	urlBase string
	saveFn  func(file *multipart.FileHeader, dst string) error
}

func NewService(root, urlBase string, saveFn func(file *multipart.FileHeader, dst string) error) *Service {
	return &Service{
		root:    root,
		urlBase: strings.TrimSuffix(urlBase, "/"),
		saveFn:  saveFn,
	}
}

// cleanSegment rejects path segments that would climb out of the
// storage root.
func cleanSegment(s string) (string, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return "", nil
	}
	if strings.Contains(s, "..") || strings.ContainsAny(s, "\\\x00") {
		return "", ErrBadPath
	}
	return s, nil
}

// Store saves the uploaded image and returns its public location.
func (s *Service) Store(ctx context.Context, file *multipart.FileHeader, bucket, folder string) (*StoredFile, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	if file.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedType
	}

	bucket, err := cleanSegment(bucket)
	if err != nil {
		return nil, err
	}
	if bucket == "" {
		bucket = "images"
	}
	folder, err = cleanSegment(folder)
	if err != nil {
		return nil, err
	}

	relDir := bucket
	if folder != "" {
		relDir = filepath.Join(bucket, folder)
	}
	absDir := filepath.Join(s.root, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, err
	}

	name := uuid.NewString() + ext
	if err := s.saveFn(file, filepath.Join(absDir, name)); err != nil {
		return nil, err
	}

	relPath := filepath.ToSlash(filepath.Join(relDir, name))
	return &StoredFile{
		URL:      s.urlBase + "/" + relPath,
		Path:     relPath,
		FileName: name,
	}, nil
}

// List returns the stored images of a bucket/folder with public URLs.
func (s *Service) List(ctx context.Context, bucket, folder string) ([]StoredFile, error) {
	bucket, err := cleanSegment(bucket)
	if err != nil {
		return nil, err
	}
	if bucket == "" {
		bucket = "images"
	}
	folder, err = cleanSegment(folder)
	if err != nil {
		return nil, err
	}

	relDir := bucket
	if folder != "" {
		relDir = filepath.Join(bucket, folder)
	}

	entries, err := os.ReadDir(filepath.Join(s.root, relDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []StoredFile{}, nil
		}
		return nil, err
	}

	files := make([]StoredFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		relPath := filepath.ToSlash(filepath.Join(relDir, e.Name()))
		files = append(files, StoredFile{
			URL:      s.urlBase + "/" + relPath,
			Path:     relPath,
			FileName: e.Name(),
		})
	}
	return files, nil
}

// Delete removes one stored object by its relative path.
func (s *Service) Delete(ctx context.Context, bucket, path string) error {
	bucket, err := cleanSegment(bucket)
	if err != nil {
		return err
	}
	path, err = cleanSegment(path)
	if err != nil {
		return err
	}
	if path == "" {
		return ErrBadPath
	}

	// Paths from the list endpoint already carry the bucket prefix.
	rel := path
	if bucket != "" && !strings.HasPrefix(path, bucket+"/") {
		rel = filepath.Join(bucket, path)
	}
	return os.Remove(filepath.Join(s.root, rel))
}
