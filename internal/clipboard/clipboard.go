// Package clipboard copies the tailored resume out of a successful state.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/jonathan/resume-tailor/internal/tailor"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type system struct{}

func (system) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// System returns a Writer backed by the OS clipboard. On Linux it needs
// xclip, xsel or wl-copy on PATH.
func System() Writer {
	return system{}
}

// CopyTailoredResume writes the tailored resume text to w when st is a
// Success carrying non-empty text. Any other state is a no-op; copied reports
// whether a write happened.
func CopyTailoredResume(st tailor.State, w Writer) (copied bool, err error) {
	success, ok := st.(tailor.Success)
	if !ok || success.Result == nil || success.Result.TailoredResume == "" {
		return false, nil
	}
	if err := w.WriteAll(success.Result.TailoredResume); err != nil {
		return false, fmt.Errorf("failed to copy tailored resume: %w", err)
	}
	return true, nil
}
