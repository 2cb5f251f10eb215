// Command fumosay lets Fumo say something.
//
// Usage:
//
//	fumosay [flags] [message ...]
//	echo "Baka baka!" | fumosay [flags]
//
// The message comes from -file if given, else from the arguments, else from
// piped standard input. With none of these Fumo says the default line.
// Defaults for the flags can be kept in $XDG_CONFIG_HOME/fumosay/config.yaml.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/fumosay"
	fumolipgloss "github.com/fwojciec/fumosay/lipgloss"
	"github.com/mattn/go-isatty"
)

// errUsage marks command-line errors the flag package has already reported.
var errUsage = errors.New("usage error")

// env carries the process environment into run. It is only read in main.
type env struct {
	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
	stdinTerminal bool
	configDir     string // user config directory; empty skips the default config file
}

func main() {
	configDir, _ := os.UserConfigDir()
	fd := os.Stdin.Fd()
	e := env{
		stdin:         os.Stdin,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		stdinTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		configDir:     configDir,
	}
	os.Exit(exitCode(run(os.Args[1:], e), os.Stderr))
}

// exitCode reports err on stderr and maps it to the process exit status.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "fumosay: %v\n", err)
		return 1
	}
}

func run(args []string, e env) error {
	f, err := parseFlags(args, e.stderr)
	if err != nil {
		return err
	}
	logger := newLogger(e.stderr, f.verbose)

	cfg, path, err := loadConfig(f.config, e.configDir)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
	cfg, err = f.apply(cfg)
	if err != nil {
		return err
	}

	msg, source, err := resolveMessage(f.file, f.message, e.stdin, e.stdinTerminal)
	if err != nil {
		return err
	}
	logger.Debug("message resolved", "source", source, "length", len(msg))

	opts := cfg.Options()
	logger.Debug("rendering",
		"width", opts.Width,
		"kind", opts.Kind,
		"style", opts.Style,
		"no_bubble", opts.NoBubble,
		"color", cfg.Color,
	)

	painter := fumolipgloss.New(fumolipgloss.NewRenderer(e.stdout, cfg.Color), cfg.Theme)
	if _, err := fmt.Fprintln(e.stdout, fumosay.Layout(msg, opts).Paint(painter)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
