package main

import (
	"io"
	"strings"

	"github.com/fwojciec/fumosay"
	"github.com/fwojciec/fumosay/fs"
)

// resolveMessage picks the message: the file if one is named, else the
// arguments joined by spaces, else standard input when it is piped. An
// empty result becomes fumosay.DefaultMessage. The returned source names
// where the message came from.
func resolveMessage(file string, args []string, stdin io.Reader, stdinTerminal bool) (msg, source string, err error) {
	switch {
	case file != "":
		msg, err = fs.ReadMessage(file)
		if err != nil {
			return "", "", err
		}
		source = "file"
	case len(args) > 0:
		msg, source = strings.TrimSpace(strings.Join(args, " ")), "args"
	case !stdinTerminal:
		msg, err = fs.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		source = "stdin"
	}

	if msg == "" {
		return fumosay.DefaultMessage, "default", nil
	}
	return msg, source, nil
}
