package cli

import (
	"bufio"
	"fmt"
	"io"
)

// Alerter shows a dismissible message. Nothing is kept after it is shown.
type Alerter interface {
	Alert(title, message string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(title, message string) bool
}

// Terminal is the Alerter and Confirmer of the REPL.
type Terminal struct {
	reader *bufio.Reader
	w      io.Writer
}

func NewTerminal(reader *bufio.Reader, w io.Writer) *Terminal {
	return &Terminal{reader: reader, w: w}
}

// Alert prints "[title] message".
func (t *Terminal) Alert(title, message string) {
	fmt.Fprintf(t.w, "[%s] %s\n", title, message)
}

// Confirm prints the question and reads the answer. Read errors count as no.
func (t *Terminal) Confirm(title, message string) bool {
	ok, err := GetYesNo(t.reader, fmt.Sprintf("[%s] %s", title, message), t.w)
	return err == nil && ok
}
