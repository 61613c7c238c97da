package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(label string, defaultValue bool) (bool, error)
}

type terminal struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewConfirmer returns a Confirmer reading from stdin and drawing on stdout.
// nil streams fall back to the process terminal.
func NewConfirmer(stdin io.ReadCloser, stdout io.WriteCloser) Confirmer {
	return &terminal{stdin: stdin, stdout: stdout}
}

func (t *terminal) Confirm(label string, defaultValue bool) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.stdin,
		Stdout:    t.stdout,
	}
	if defaultValue {
		p.Default = "y"
	}

	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, fmt.Errorf("prompt cancelled: %w", err)
	default:
		return false, fmt.Errorf("prompt failed: %w", err)
	}
}

type fixed bool

// Always returns a Confirmer that answers every question with answer.
// It backs --yes.
func Always(answer bool) Confirmer {
	return fixed(answer)
}

func (f fixed) Confirm(string, bool) (bool, error) {
	return bool(f), nil
}

// PromptYesNo prompts the user on the terminal for a yes/no response.
func PromptYesNo(label string, defaultValue bool) bool {
	ok, err := NewConfirmer(nil, nil).Confirm(label, defaultValue)
	return err == nil && ok
}
