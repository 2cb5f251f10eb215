package fumosay

import "fmt"

// Validate checks constraints on Config. Width is not checked: any width
// renders, narrow ones just put one word on each line.
func (c Config) Validate() error {
	if _, err := ParseColorMode(string(c.Color)); err != nil {
		return err
	}
	return c.Theme.Validate()
}

// Validate checks that every color index is -1 or a valid ANSI index.
func (t Theme) Validate() error {
	for _, f := range []struct {
		name  string
		index int
	}{
		{"bubble", t.Bubble},
		{"tail", t.Tail},
		{"art", t.Art},
	} {
		if f.index < -1 || f.index > 255 {
			return fmt.Errorf("theme %s color must be in [-1, 255], got %d: %w", f.name, f.index, ErrValidation)
		}
	}
	return nil
}
