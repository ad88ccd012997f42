// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package textwrap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		indent int
		width  int
		want   []string
	}{
		{
			name:   "fits unchanged",
			text:   " - verbose (bool): ",
			indent: 6,
			width:  80,
			want:   []string{" - verbose (bool): "},
		},
		{
			name:   "breaks at whitespace",
			text:   "aaa bbb ccc ddd",
			indent: 2,
			width:  8,
			want:   []string{"aaa", "  bbb", "  ccc", "  ddd"},
		},
		{
			name:   "first line shares the indented budget",
			text:   "aaaa bbbb cccc",
			indent: 4,
			width:  12,
			want:   []string{"aaaa", "    bbbb", "    cccc"},
		},
		{
			name:   "long token kept intact",
			text:   "short averyveryverylongword end",
			indent: 2,
			width:  10,
			want:   []string{"short", "  averyveryverylongword", "  end"},
		},
		{
			name:   "hyphenated word split",
			text:   "see multi-part-identifier now",
			indent: 2,
			width:  12,
			want:   []string{"see", "  multi-", "  part-", "  identifier", "  now"},
		},
		{
			name:   "embedded newline",
			text:   "first\nsecond",
			indent: 4,
			width:  80,
			want:   []string{"first", "    second"},
		},
		{
			name:   "blank paragraph not padded",
			text:   "aaa\n\nbbb",
			indent: 4,
			width:  80,
			want:   []string{"aaa", "", "    bbb"},
		},
		{
			name:   "wide runes",
			text:   "日本語 テキスト",
			indent: 2,
			width:  8,
			want:   []string{"日本語", "  テキスト"},
		},
		{
			name:   "empty",
			text:   "",
			indent: 4,
			width:  80,
			want:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.indent, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrap_WidthAndIndent(t *testing.T) {
	text := " - training (matrix): Matrix of training points (one per column).  The " +
		"model is fit on these points and then serialized for later use by the " +
		"prediction step of the binding.  Default value 'nothing'."

	for _, width := range []int{30, 40, 60, 80} {
		lines := Wrap(text, 6, width)
		assert.Greater(t, len(lines), 1)
		for i, line := range lines {
			assert.LessOrEqual(t, runewidth.StringWidth(line), width, "line %d: %q", i, line)
			if i == 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(line), width-6, "line %d: %q", i, line)
			}
			if i > 0 {
				assert.True(t, strings.HasPrefix(line, "      "), "line %d: %q", i, line)
				assert.NotEqual(t, ' ', line[6], "line %d: %q", i, line)
			}
		}
	}
}

func TestWrap_RoundTrip(t *testing.T) {
	text := "Regularization constant for the model.  Larger values shrink every " +
		"coefficient towards zero and reduce the variance of the fitted model."

	lines := Wrap(text, 6, 40)
	for i := range lines {
		lines[i] = strings.TrimLeft(lines[i], " ")
	}

	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestWrap_IndentWiderThanWidth(t *testing.T) {
	lines := Wrap("one two three", 10, 8)
	assert.Equal(t, []string{"one", "          two", "          three"}, lines)
}
