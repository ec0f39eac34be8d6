package debug

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	logFile    *os.File
	logger     = zerolog.Nop()
	configured bool
	mu         sync.Mutex
)

// Init starts debug logging to the file at cfg.Path.
// An empty path disables logging.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(cfg)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(cfg Config) error {
	configured = true
	closeLocked()

	if cfg.Path == "" {
		logger = zerolog.Nop()
		return nil
	}

	lvl, err := cfg.level()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create log directory")
		}
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "open debug log")
	}

	logFile = f
	logger = newLogger(f, lvl)
	return nil
}

// SetOutput sends debug events to w at the given level. Used by tools that
// want the trace on a stream instead of a file.
func SetOutput(w io.Writer, lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()

	configured = true
	closeLocked()
	logger = newLogger(w, lvl)
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	err := closeLocked()
	logger = zerolog.Nop()
	return err
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Logger returns the debug logger. On first use it is configured from the
// environment; a bad environment leaves logging disabled.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !configured {
		if cfg, err := LoadConfig(); err == nil {
			_ = initLocked(cfg)
		}
		configured = true
	}
	return &logger
}
