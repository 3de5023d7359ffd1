// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"sync"

	"go.trai.ch/pipstep/internal/core/domain"
	"go.trai.ch/pipstep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
//
// The step's argument vector is executed directly, without a shell, so the
// registry name and version never reach a shell parser.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the installer with the step's arguments. Output is streamed to
// stdout and stderr and also forwarded line by line to the logger.
func (e *Executor) Execute(ctx context.Context, step *domain.InstallStep, stdout, stderr io.Writer) error {
	if len(step.Args) == 0 {
		return zerr.With(domain.ErrInvalidInput, "field", "args")
	}

	installer := step.Args[0]
	if _, err := os.Stat(installer); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrInstallerNotFound, "installer", installer)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat installer"), "installer", installer)
	}

	outLog := &logWriter{logger: e.logger, level: domain.LogLevelInfo}
	errLog := &logWriter{logger: e.logger, level: domain.LogLevelWarn}
	defer outLog.Flush()
	defer errLog.Flush()

	cmd := exec.CommandContext(ctx, installer, step.Args[1:]...) //nolint:gosec // installer path is resolved from the project file
	cmd.Stdout = tee(outLog, stdout)
	cmd.Stderr = tee(errLog, stderr)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		cmdErr := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(cmdErr, "command", step.Command)
	}

	return nil
}

func tee(primary io.Writer, extra io.Writer) io.Writer {
	if extra == nil {
		return primary
	}
	return io.MultiWriter(primary, extra)
}

// logWriter forwards complete lines to the logger. Partial lines are held
// until a newline arrives or Flush is called.
type logWriter struct {
	logger ports.Logger
	level  domain.LogLevel

	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// No newline yet, put the fragment back.
			w.buf.Reset()
			w.buf.Write(line)
			break
		}
		w.emit(bytes.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.Bytes())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line []byte) {
	if len(line) == 0 {
		return
	}
	if w.level >= domain.LogLevelWarn {
		w.logger.Warn(string(line))
		return
	}
	w.logger.Info(string(line))
}
