package reload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
)

// ErrIncomplete is returned when a module lacks one of its entry points.
var ErrIncomplete = errors.New("reload: module is missing an entry point")

// Exported symbol names a plugin must provide.
const (
	SymInit       = "Init"
	SymPreReload  = "PreReload"
	SymPostReload = "PostReload"
	SymUpdate     = "Update"
	SymShutdown   = "Shutdown"
)

// Plugin loads a module from a Go plugin built with -buildmode=plugin.
//
// The runtime refuses to open the same path twice, so each Load copies the
// shared object to a fresh file under Dir first. Each build also needs its
// own -pluginpath or the runtime reports the plugin as already loaded.
type Plugin[E any] struct {
	Path string
	Dir  string

	generation int
}

// NewPlugin prepares a loader for the shared object at path, staging copies
// in a new temporary directory.
func NewPlugin[E any](path string) (*Plugin[E], error) {
	dir, err := os.MkdirTemp("", "paintbox-reload-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Plugin[E]{Path: path, Dir: dir}, nil
}

// Load stages and opens the current build of the plugin.
func (p *Plugin[E]) Load() (*Module[E], error) {
	p.generation++
	staged, err := p.stage()
	if err != nil {
		return nil, err
	}

	lib, err := plugin.Open(staged)
	if err != nil {
		return nil, fmt.Errorf("open plugin %s: %w", p.Path, err)
	}

	m := &Module[E]{}
	if err := lookup(lib, SymInit, &m.Init); err != nil {
		return nil, err
	}
	if err := lookup(lib, SymPreReload, &m.PreReload); err != nil {
		return nil, err
	}
	if err := lookup(lib, SymPostReload, &m.PostReload); err != nil {
		return nil, err
	}
	if err := lookup(lib, SymUpdate, &m.Update); err != nil {
		return nil, err
	}
	if err := lookup(lib, SymShutdown, &m.Shutdown); err != nil {
		return nil, err
	}

	logger.Named("reload").Info("plugin loaded",
		zap.String("path", p.Path),
		zap.Int("generation", p.generation))
	return m, nil
}

// Close removes the staged copies. Opened plugins stay mapped.
func (p *Plugin[E]) Close() error {
	return os.RemoveAll(p.Dir)
}

func (p *Plugin[E]) stage() (string, error) {
	ext := filepath.Ext(p.Path)
	base := strings.TrimSuffix(filepath.Base(p.Path), ext)
	dst := filepath.Join(p.Dir, fmt.Sprintf("%s.%d%s", base, p.generation, ext))
	if err := copyFile(p.Path, dst); err != nil {
		return "", fmt.Errorf("stage plugin: %w", err)
	}
	return dst, nil
}

// lookup resolves name in lib and stores it in fn. Exported functions come
// back from plugin.Lookup as plain func values.
func lookup[F any](lib *plugin.Plugin, name string, fn *F) error {
	sym, err := lib.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	f, ok := sym.(F)
	if !ok {
		var want F
		return fmt.Errorf("reload: symbol %s has type %T, want %T", name, sym, want)
	}
	*fn = f
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

var _ Loader[struct{}] = (*Plugin[struct{}])(nil)
var _ Loader[struct{}] = (*Static[struct{}])(nil)
