// Package storage persists uploaded files on local disk. Only relative
// paths are handed back for persistence; serving the files is the
// static file server's job.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

const (
	ResumeDir  = "resumes"
	ProfileDir = "profiles"
)

// DiskStore writes uploads under root/<kind>/ named by upload timestamp
// plus the original extension.
type DiskStore struct {
	root string
}

// NewDiskStore creates the upload directories under root.
func NewDiskStore(root string) (*DiskStore, error) {
	for _, dir := range []string{ResumeDir, ProfileDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &DiskStore{root: root}, nil
}

// Save writes the uploaded file into the given kind directory and
// returns the relative path to persist (e.g. "uploads/resumes/17244.pdf").
func (s *DiskStore) Save(file *multipart.FileHeader, kind string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
	rel := filepath.ToSlash(filepath.Join(filepath.Base(s.root), kind, name))

	dst, err := os.Create(filepath.Join(s.root, kind, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return rel, nil
}
