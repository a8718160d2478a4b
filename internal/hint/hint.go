// Package hint opens the documentation page referenced by a question.
package hint

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrNoDoc is returned when a question carries no documentation reference.
var ErrNoDoc = errors.New("question has no documentation reference")

// Ref points into the local knowledge base. Doc is a file name without
// extension, Page the 1-based page to open.
type Ref struct {
	Doc  string
	Page int
}

// Viewer shows a documentation reference to the user.
type Viewer interface {
	Show(ref Ref) error
}

// Opener resolves refs against a directory of PDF files and hands them to
// the desktop's default viewer.
type Opener struct {
	// Dir is the knowledge base directory holding the PDFs.
	Dir string
}

// Show opens the referenced document. Most desktop viewers ignore the page
// argument when given a bare path, so the page is appended as a fragment
// for the ones that honor it.
func (o Opener) Show(ref Ref) error {
	if ref.Doc == "" {
		return ErrNoDoc
	}

	path := filepath.Join(o.Dir, ref.Doc+".pdf")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("hint document: %w", err)
	}

	target := path
	if ref.Page > 1 {
		target = fmt.Sprintf("%s#page=%d", path, ref.Page)
	}

	cmd := openCommand(target)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func openCommand(target string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target)
	default:
		return exec.Command("xdg-open", target)
	}
}
