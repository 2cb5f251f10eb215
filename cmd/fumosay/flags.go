package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/fumosay"
)

const usageTemplate = `Usage: fumosay [flags] [message ...]

Let Fumo say something.

Flags:
  -w, -width int       maximum width of speech bubble (default 40)
  -t, -think           make Fumo think instead of speak
  -s, -style string    art style: %s (default "style1")
  -n, -no-bubble       print the message without a bubble
  -f, -file string     read the message from a file
      -config string   config file (default $XDG_CONFIG_HOME/fumosay/config.yaml)
      -color string    colorize output: auto, always, never (default "never")
  -v, -verbose         log debug information to standard error

Words starting with "-", such as "-5", are read as flags. Put them after
"--" to say them.

Examples:
  fumosay "I'm the Strongest!"
  echo "Baka baka!" | fumosay
  fumosay -t "What should I do?"
  fumosay -s style2 "⑨ is the best!"
  fumosay -s 3 "Nice Braille art!"
  fumosay -w 60 "Long message with custom width"
  fumosay -- -5 degrees in Gensokyo
`

func usage() string {
	return fmt.Sprintf(usageTemplate, strings.Join(fumosay.StyleNames(), ", "))
}

// flags holds the parsed command line. set records which settings the user
// gave explicitly, by long name, so they can override the config file.
type flags struct {
	width    int
	think    bool
	style    string
	noBubble bool
	file     string
	config   string
	color    string
	verbose  bool
	message  []string
	set      map[string]bool
}

var longNames = map[string]string{
	"w": "width",
	"t": "think",
	"s": "style",
	"n": "no-bubble",
	"f": "file",
	"v": "verbose",
}

// parseFlags parses args, allowing flags and message words to be mixed.
// Everything after "--" is message.
func parseFlags(args []string, stderr io.Writer) (flags, error) {
	def := fumosay.DefaultConfig()
	f := flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("fumosay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage()) }

	fs.IntVar(&f.width, "w", def.Width, "")
	fs.IntVar(&f.width, "width", def.Width, "")
	fs.BoolVar(&f.think, "t", def.Think, "")
	fs.BoolVar(&f.think, "think", def.Think, "")
	fs.StringVar(&f.style, "s", def.Style, "")
	fs.StringVar(&f.style, "style", def.Style, "")
	fs.BoolVar(&f.noBubble, "n", def.NoBubble, "")
	fs.BoolVar(&f.noBubble, "no-bubble", def.NoBubble, "")
	fs.StringVar(&f.file, "f", "", "")
	fs.StringVar(&f.file, "file", "", "")
	fs.StringVar(&f.config, "config", "", "")
	fs.StringVar(&f.color, "color", string(def.Color), "")
	fs.BoolVar(&f.verbose, "v", false, "")
	fs.BoolVar(&f.verbose, "verbose", false, "")

	rest := args
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return flags{}, err
			}
			return flags{}, fmt.Errorf("%w: %w", errUsage, err)
		}
		remaining := fs.Args()
		if n := len(rest) - len(remaining); n > 0 && rest[n-1] == "--" {
			f.message = append(f.message, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		f.message = append(f.message, remaining[0])
		rest = remaining[1:]
	}

	fs.Visit(func(fl *flag.Flag) {
		name := fl.Name
		if long, ok := longNames[name]; ok {
			name = long
		}
		f.set[name] = true
	})
	return f, nil
}

// apply overrides cfg with the settings given on the command line.
func (f flags) apply(cfg fumosay.Config) (fumosay.Config, error) {
	if f.set["width"] {
		cfg.Width = f.width
	}
	if f.set["think"] {
		cfg.Think = f.think
	}
	if f.set["style"] {
		cfg.Style = f.style
	}
	if f.set["no-bubble"] {
		cfg.NoBubble = f.noBubble
	}
	if f.set["color"] {
		mode, err := fumosay.ParseColorMode(f.color)
		if err != nil {
			return fumosay.Config{}, err
		}
		cfg.Color = mode
	}
	return cfg, nil
}
