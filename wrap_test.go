package fumosay_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/fumosay"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short message stays on one line", "Hi", 40, []string{"Hi"}},
		{"greedy break", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"line exactly at width", "aaaa bbbb", 9, []string{"aaaa bbbb"}},
		{"one past width", "aaaa bbbb", 8, []string{"aaaa", "bbbb"}},
		{"long word is not split", "a supercalifragilistic b", 5, []string{"a", "supercalifragilistic", "b"}},
		{"zero width gives one word per line", "a b c", 0, []string{"a", "b", "c"}},
		{"negative width gives one word per line", "a b c", -3, []string{"a", "b", "c"}},
		{"empty text", "", 40, []string{""}},
		{"whitespace only", "  \n\t ", 40, []string{""}},
		{"whitespace runs collapse", "  hello \n\n world  ", 40, []string{"hello world"}},
		{"wide runes count double", "日本 語", 4, []string{"日本", "語"}},
		{"no-break space joins words", "a\u00a0b c", 40, []string{"a\u00a0b c"}},
		{"no-break space is not a break point", "ab\u00a0cd ef", 4, []string{"ab\u00a0cd", "ef"}},
		{"vertical tab and form feed separate words", "a\vb\fc", 40, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fumosay.Wrap(tt.text, tt.width))
		})
	}
}

func TestWrapLinesFitWidth(t *testing.T) {
	t.Parallel()

	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
		"eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
		"Pneumonoultramicroscopicsilicovolcanoconiosis is a long word."

	for _, width := range []int{1, 5, 12, 20, 40, 80} {
		for _, line := range fumosay.Wrap(text, width) {
			if uniseg.StringWidth(line) > width {
				assert.NotContains(t, line, " ", "width %d: overlong line %q holds more than one word", width, line)
			}
		}
	}
}

func TestWrapKeepsAllWords(t *testing.T) {
	t.Parallel()

	text := "I'm the Strongest! ⑨ Baka baka! Cirno is the best fairy in Gensokyo"
	lines := fumosay.Wrap(text, 12)

	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}
