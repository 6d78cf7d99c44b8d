package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink is where rendered charts go.
type Sink interface {
	Create(name string) (io.WriteCloser, error)
}

// DirSink writes every chart as a file inside Dir.
type DirSink struct {
	Dir string
}

func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

func (s *DirSink) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *DirSink) Create(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create chart directory %q: %w", s.Dir, err)
	}
	f, err := os.Create(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("unable to create chart %q: %w", name, err)
	}
	return f, nil
}
