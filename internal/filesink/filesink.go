// Package filesink decides how each rendered line reaches the log file: it resolves
// the effective path (optionally date-stamped), and chooses between replacing the file
// and appending to it.
//
// In overwrite mode the first write of the run for a resolved path replaces the file;
// every later write for that path appends. Without overwrite every write appends.
// The written-state is kept per resolved path until Reset.
//
// Writes from several goroutines to the same path are not coordinated beyond the
// Manager's own bookkeeping; callers that need ordered output must serialize them.
package filesink

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/writelog"
	"github.com/hyp3rd/writelog/internal/utils"
)

const dateStampLayout = "20060102"

// Operation is the file operation chosen for a write.
type Operation uint8

const (
	// OperationNone means nothing was written.
	OperationNone Operation = iota
	// OperationCreate replaced the file contents.
	OperationCreate
	// OperationAppend appended to the file.
	OperationAppend
)

// String returns the name of the operation.
func (o Operation) String() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationAppend:
		return "append"
	default:
		return "none"
	}
}

type pathKey struct {
	name        string
	includeDate bool
	date        string
}

// Manager owns the create-versus-append decision for the log file.
type Manager struct {
	mu      sync.Mutex
	writer  writelog.FileWriter
	written map[string]bool

	cachedKey  pathKey
	cachedPath string
	cachedErr  error
	cached     bool
}

// NewManager creates a Manager that writes through writer.
func NewManager(writer writelog.FileWriter) *Manager {
	return &Manager{
		writer:  writer,
		written: make(map[string]bool),
	}
}

// ResolvePath returns the absolute path for fileName at time now, inserting
// _yyyyMMdd before the extension when includeDate is set. The result is cached
// until one of its inputs changes.
func (m *Manager) ResolvePath(fileName string, includeDate bool, now time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.resolveLocked(fileName, includeDate, now)
}

func (m *Manager) resolveLocked(fileName string, includeDate bool, now time.Time) (string, error) {
	key := pathKey{name: fileName, includeDate: includeDate}
	if includeDate {
		key.date = now.Format(dateStampLayout)
	}

	if m.cached && m.cachedKey == key {
		return m.cachedPath, m.cachedErr
	}

	path, err := utils.ValidatePath(fileName)
	if err == nil && includeDate {
		path = DateStamped(path, key.date)
	}

	m.cachedKey = key
	m.cachedPath = path
	m.cachedErr = err
	m.cached = true

	return path, err
}

// sinkError marks err as a file sink failure and keeps it in the chain.
func sinkError(err error) error {
	return fmt.Errorf("%w: %w", writelog.ErrFileSink, err)
}

// DateStamped inserts "_" + stamp before the extension of path.
// "logs/app.log" becomes "logs/app_20240131.log"; "logs/app" becomes "logs/app_20240131".
func DateStamped(path, stamp string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	return base + "_" + stamp + ext
}

// Write hands text to the file writer. A blank file name is a no-op. The returned
// error wraps writelog.ErrFileSink; callers are expected to swallow it.
func (m *Manager) Write(fileName string, overwrite, includeDate bool, now time.Time, text string) (string, Operation, error) {
	if strings.TrimSpace(fileName) == "" || m.writer == nil {
		return "", OperationNone, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path, err := m.resolveLocked(fileName, includeDate, now)
	if err != nil {
		return "", OperationNone, ewrap.Wrap(sinkError(err), "resolving log file path").
			WithMetadata("file_name", fileName)
	}

	operation := OperationAppend
	if overwrite && !m.written[path] {
		operation = OperationCreate
	}

	if operation == OperationCreate {
		err = m.writer.Create(path, text)
	} else {
		err = m.writer.Append(path, text)
	}

	if err != nil {
		return path, operation, ewrap.Wrapf(sinkError(err), "%s %s", operation, path).
			WithMetadata("path", path).
			WithMetadata("operation", operation.String())
	}

	if overwrite {
		m.written[path] = true
	}

	return path, operation, nil
}

// Written reports whether path has had its first overwrite-mode write in this run.
func (m *Manager) Written(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.written[path]
}

// Reset forgets the written-state of every path and the cached resolved path.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.written)

	m.cached = false
	m.cachedPath = ""
	m.cachedErr = nil
}
