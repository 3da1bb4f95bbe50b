package promptsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileSource reads the template from the local filesystem.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Fetch(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return "", fmt.Errorf("read prompt template: %w", err)
	}
	return string(data), nil
}

var _ Source = (*FileSource)(nil)
