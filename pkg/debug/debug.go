// Package debug provides optional debug and diagnostic logging.
//
// When the FLOATING_DEBUG environment variable names a file, messages are
// appended to that file (rotated by size). Otherwise logging is a no-op until
// a host installs its own logger with SetLogger.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable read on first use.
const EnvVar = "FLOATING_DEBUG"

var (
	logger  *zap.Logger
	rotator *lumberjack.Logger
	mu      sync.Mutex
	envOnce sync.Once
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	rotator = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(rotator), zap.DebugLevel)
	logger = zap.New(core).Named("floating")
	return nil
}

// SetLogger installs l as the destination for all debug output.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	envOnce.Do(func() {})
	logger = l
}

// Logger returns the active logger, never nil.
func Logger() *zap.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			_ = initLocked(path)
			mu.Unlock()
		}
	})
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Close flushes and closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		_ = logger.Sync()
	}
	if rotator != nil {
		err := rotator.Close()
		rotator = nil
		logger = nil
		return err
	}
	return nil
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	l := Logger()
	if ce := l.Check(zap.DebugLevel, ""); ce == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Warn reports a non-fatal configuration or usage diagnostic.
func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}
