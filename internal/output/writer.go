// Package output persists rendered diagrams under content-addressed names.
package output

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"

	"github.com/alexisbeaulieu97/chordgen/internal/chord"
	"github.com/alexisbeaulieu97/chordgen/internal/logger"
	"github.com/alexisbeaulieu97/chordgen/pkg/diff"
	chorderrors "github.com/alexisbeaulieu97/chordgen/pkg/errors"
)

const (
	// Extension is appended to every identifier to form the file name.
	Extension   = ".svg"
	idLength    = 16
	defaultMode = 0o644
)

// Renderer produces the document for a chord.
type Renderer interface {
	Render(c chord.Chord) (string, error)
}

// Writer renders chords into a directory.
type Writer struct {
	renderer Renderer
	dir      string
	log      *logger.Logger
}

// NewWriter returns a Writer storing documents under dir.
func NewWriter(r Renderer, dir string, log *logger.Logger) *Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{renderer: r, dir: dir, log: log}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Identifier derives the stable name of c from its content. Equal chords
// always share an identifier.
func Identifier(c chord.Chord) (string, error) {
	data, err := json.Marshal(c.Spec())
	if err != nil {
		return "", fmt.Errorf("encode chord: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:idLength], nil
}

// Path returns where the document with id is stored.
func (w *Writer) Path(id string) string {
	return filepath.Join(w.dir, id+Extension)
}

// Write renders c, checks the document is well formed and stores it as
// <id>.svg. Nothing is written when any step fails.
func (w *Writer) Write(c chord.Chord) (string, error) {
	id, err := Identifier(c)
	if err != nil {
		return "", err
	}
	doc, err := w.renderer.Render(c)
	if err != nil {
		return "", err
	}
	if err := Validate(doc); err != nil {
		return "", err
	}
	if err := w.ensureDir(); err != nil {
		return "", err
	}

	path := w.Path(id)
	if err := writeAtomic(path, []byte(doc)); err != nil {
		return "", err
	}

	w.log.Debug("wrote diagram", logger.Fields{"id": id, "path": path, "bytes": len(doc)})
	return id, nil
}

func (w *Writer) ensureDir() error {
	info, err := os.Stat(w.dir)
	if err != nil {
		return chorderrors.NewIOError("stat", w.dir, err)
	}
	if !info.IsDir() {
		return chorderrors.NewIOError("stat", w.dir, fmt.Errorf("not a directory"))
	}
	return nil
}

// writeAtomic writes data next to path and renames it into place so readers
// never observe a partial document.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return chorderrors.NewIOError("create", path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, werr := tmp.Write(data); werr != nil {
		_ = tmp.Close()
		return chorderrors.NewIOError("write", tmpPath, werr)
	}
	if cerr := tmp.Close(); cerr != nil {
		return chorderrors.NewIOError("close", tmpPath, cerr)
	}
	if cerr := os.Chmod(tmpPath, defaultMode); cerr != nil {
		return chorderrors.NewIOError("chmod", tmpPath, cerr)
	}
	if rerr := os.Rename(tmpPath, path); rerr != nil {
		return chorderrors.NewIOError("rename", path, rerr)
	}
	return nil
}

// Validate parses doc as SVG and rejects anything that is not a well formed
// document with a usable view box.
func Validate(doc string) error {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return chorderrors.NewTemplateError("", fmt.Errorf("document is not valid svg: %w", err))
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return chorderrors.NewTemplateError("", fmt.Errorf("document has an empty view box"))
	}
	return nil
}

// Status describes how a stored document compares to a fresh render.
type Status string

const (
	StatusUpToDate Status = "up-to-date"
	StatusMissing  Status = "missing"
	StatusDrifted  Status = "drifted"
)

// CheckResult is the outcome of comparing one chord against disk.
type CheckResult struct {
	ID     string
	Path   string
	Status Status
	Diff   string
}

// Check renders c and compares it with the stored document without writing
// anything.
func (w *Writer) Check(c chord.Chord) (CheckResult, error) {
	id, err := Identifier(c)
	if err != nil {
		return CheckResult{}, err
	}
	doc, err := w.renderer.Render(c)
	if err != nil {
		return CheckResult{}, err
	}

	path := w.Path(id)
	result := CheckResult{ID: id, Path: path}

	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		result.Status = StatusMissing
		return result, nil
	case err != nil:
		return CheckResult{}, chorderrors.NewIOError("read", path, err)
	}

	result.Diff = diff.Unified([]byte(doc), existing, "rendered", path)
	if result.Diff == "" {
		result.Status = StatusUpToDate
	} else {
		result.Status = StatusDrifted
	}
	return result, nil
}
