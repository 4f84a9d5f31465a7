package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads answers to prompts one line at a time.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints prompt and returns the next input line without its line
// ending. It returns io.EOF when input is exhausted.
func (p *prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// readInt prompts until the answer parses as an integer.
func (p *prompter) readInt(prompt string) (int, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid number. Try again.")
	}
}

// readUint prompts until the answer parses as a non-negative integer.
func (p *prompter) readUint(prompt string) (uint64, error) {
	for {
		s, err := p.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid number. Try again.")
	}
}

// choice reads a menu option in [lo, hi], re-prompting on anything else.
func (p *prompter) choice(prompt string, lo, hi int) (int, error) {
	s, err := p.line(prompt)
	for {
		if err != nil {
			return 0, err
		}
		if v, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil && v >= lo && v <= hi {
			return v, nil
		}
		s, err = p.line("Invalid Option. Try again: ")
	}
}
