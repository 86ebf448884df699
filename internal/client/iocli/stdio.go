package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio implements IO over process stdin/stdout
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	stdin  *os.File
	isTerm func(fd int) bool
}

var _ IO = (*Stdio)(nil)

// NewStdio creates IO bound to os.Stdin and os.Stdout
func NewStdio() *Stdio {
	return newStdio(os.Stdin, os.Stdout)
}

func newStdio(stdin *os.File, out io.Writer) *Stdio {
	return &Stdio{
		in:     bufio.NewReader(stdin),
		out:    out,
		stdin:  stdin,
		isTerm: term.IsTerminal,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput печатает prompt и читает строку без завершающих пробелов
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль без эха; если stdin не терминал (pipe), читает строку
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fd := int(s.stdin.Fd())
	if !s.isTerm(fd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
