package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped out in tests to avoid needing a real terminal.
var readPassword = func(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// GetSimpleText prints a prompt and reads one trimmed line from the reader.
func GetSimpleText(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, promptStyle.Render(prompt+": "))
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a line without echo when stdin is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func GetPassword(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, promptStyle.Render(prompt+": "))
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline reads lines until a single "." line or EOF.
func GetMultiline(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprintln(w, promptStyle.Render(prompt+" (finish with a single '.' line):"))
	var sb strings.Builder
	for {
		line, err := r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "." {
			break
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(trimmed)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
