package fumosay_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/fumosay"
	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want fumosay.Style
	}{
		{"style1", fumosay.Style1},
		{"1", fumosay.Style1},
		{"default", fumosay.Style1},
		{"style2", fumosay.Style2},
		{"2", fumosay.Style2},
		{"style3", fumosay.Style3},
		{"3", fumosay.Style3},
		{"", fumosay.Style1},
		{"style4", fumosay.Style1},
		{"STYLE2", fumosay.Style1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fumosay.ParseStyle(tt.name))
		})
	}
}

func TestStyleNamesParse(t *testing.T) {
	t.Parallel()

	for _, name := range fumosay.StyleNames() {
		s := fumosay.ParseStyle(name)
		assert.Contains(t, []fumosay.Style{fumosay.Style1, fumosay.Style2, fumosay.Style3}, s, name)
	}
}

func TestStyleString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "style1", fumosay.Style1.String())
	assert.Equal(t, "style2", fumosay.Style2.String())
	assert.Equal(t, "style3", fumosay.Style3.String())
	assert.Equal(t, "style1", fumosay.Style(0).String())
}

func TestStyleArt(t *testing.T) {
	t.Parallel()

	t.Run("aliases share art", func(t *testing.T) {
		t.Parallel()
		want := fumosay.Style1.Art()
		for _, name := range []string{"1", "style1", "default", "nonsense"} {
			assert.Equal(t, want, fumosay.ParseStyle(name).Art(), name)
		}
	})

	t.Run("unknown style falls back to style1", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, fumosay.Style1.Art(), fumosay.Style(42).Art())
	})

	t.Run("variants differ", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, fumosay.Style1.Art(), fumosay.Style2.Art())
		assert.NotEqual(t, fumosay.Style2.Art(), fumosay.Style3.Art())
		assert.NotEqual(t, fumosay.Style1.Art(), fumosay.Style3.Art())
	})

	t.Run("blocks are framed by newlines", func(t *testing.T) {
		t.Parallel()
		for _, s := range []fumosay.Style{fumosay.Style1, fumosay.Style2, fumosay.Style3} {
			art := s.Art()
			assert.True(t, strings.HasPrefix(art, "\n⠀"), s.String())
			assert.True(t, strings.HasSuffix(art, "\n"), s.String())
			assert.False(t, strings.HasSuffix(art, "\n\n"), s.String())
		}
	})

	t.Run("picture heights", func(t *testing.T) {
		t.Parallel()
		height := func(s fumosay.Style) int {
			return len(strings.Split(strings.Trim(s.Art(), "\n"), "\n"))
		}
		assert.Equal(t, 24, height(fumosay.Style1))
		assert.Equal(t, 26, height(fumosay.Style2))
		assert.Equal(t, 20, height(fumosay.Style3))
	})
}
