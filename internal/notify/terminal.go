package notify

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal renders notifications as plain lines and reads confirmations from
// in. The reader is shared with the caller's own prompts, hence *bufio.Reader.
type Terminal struct {
	out io.Writer
	in  *bufio.Reader
}

func NewTerminal(out io.Writer, in *bufio.Reader) *Terminal {
	return &Terminal{out: out, in: in}
}

func (t *Terminal) Success(title, text string) { t.line("✔", title, text) }
func (t *Terminal) Error(title, text string)   { t.line("✖", title, text) }
func (t *Terminal) Warning(title, text string) { t.line("!", title, text) }

func (t *Terminal) Confirm(title, text, confirmLabel, cancelLabel string) bool {
	fmt.Fprintf(t.out, "\n%s\n%s\n", title, text)
	fmt.Fprintf(t.out, "[o] %s  [n] %s : ", confirmLabel, cancelLabel)
	answer, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "o" || answer == "oui"
}

func (t *Terminal) Loading(title, text string) func() {
	fmt.Fprintf(t.out, "… %s — %s\n", title, text)
	return func() {}
}

func (t *Terminal) line(mark, title, text string) {
	if text == "" {
		fmt.Fprintf(t.out, "%s %s\n", mark, title)
		return
	}
	fmt.Fprintf(t.out, "%s %s — %s\n", mark, title, text)
}
