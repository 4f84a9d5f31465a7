// Command cipherkit runs the Caesar, Affine and RSA ciphers from the
// command line, either as an interactive menu or as one-shot subcommands
// that print JSON.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

const usage = `usage: cipherkit <command> [flags] [args]

commands:
  menu          interactive menu (default when stdin is a terminal)
  caesar        -k K [-d] TEXT
  affine        -a A -b B [-d] TEXT
  rsa-setup     -p P -q Q -e E
  rsa-encrypt   (-p P -q Q | -n N) -e E [-untagged] TEXT
  rsa-decrypt   (-p P -q Q -e E | -n N -d D) BLOCK...
  derive        -passphrase S [-salt HEX]`

// exitFunc is called by fatal. Tests replace it.
var exitFunc = os.Exit

// Config holds the process dependencies of the command.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up environment variables.
	Getenv func(string) string
	// IsTerminal reports whether r is an interactive terminal.
	IsTerminal func(r io.Reader) bool
}

// DefaultConfig returns a Config bound to the process.
func DefaultConfig() *Config {
	return &Config{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		IsTerminal: isTerminal,
	}
}

// app is the state shared by all commands of one invocation.
type app struct {
	cfg      *Config
	settings settings
	log      *slog.Logger
}

func run(args []string, cfg *Config) error {
	s, err := loadSettings(cfg.Getenv)
	if err != nil {
		return err
	}

	a := &app{
		cfg:      cfg,
		settings: s,
		log:      newLogger(cfg.Stderr, s.logLevel),
	}

	if len(args) < 2 {
		if cfg.IsTerminal != nil && cfg.IsTerminal(cfg.Stdin) {
			return a.runMenu()
		}
		return errors.New(usage)
	}

	a.log.Debug("command", "name", args[1])

	switch args[1] {
	case "menu":
		return a.runMenu()
	case "caesar":
		return a.runCaesar(args[2:])
	case "affine":
		return a.runAffine(args[2:])
	case "rsa-setup":
		return a.runRSASetup(args[2:])
	case "rsa-encrypt":
		return a.runRSAEncrypt(args[2:])
	case "rsa-decrypt":
		return a.runRSADecrypt(args[2:])
	case "derive":
		return a.runDerive(args[2:])
	case "help", "-h", "--help":
		fmt.Fprintln(cfg.Stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%s", args[1], usage)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
