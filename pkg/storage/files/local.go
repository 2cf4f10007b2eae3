package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploaded files on the local disk under a base directory.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

// Save writes data as <dir>/<name><ext> and returns the storage path.
func (s *LocalStore) Save(dir, name, ext string, data []byte) (string, error) {
	if strings.ContainsAny(dir+name+ext, `/\`) || strings.Contains(dir+name, "..") {
		return "", fmt.Errorf("invalid storage name %q", dir+"/"+name+ext)
	}
	target := filepath.Join(s.baseDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("prepare storage: %w", err)
	}
	dst := filepath.Join(target, name+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return dst, nil
}

// Remove deletes a previously saved file; missing files are ignored.
func (s *LocalStore) Remove(uri string) error {
	if err := os.Remove(uri); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
