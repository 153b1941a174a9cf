package text_test

import (
	"strings"
	"testing"

	"github.com/leighmacdonald/termtable/text"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{
			name:  "empty",
			in:    "",
			width: 5,
			want:  []string{""},
		},
		{
			name:  "fits",
			in:    "hello",
			width: 5,
			want:  []string{"hello"},
		},
		{
			name:  "fits with inner spacing kept",
			in:    "a  b",
			width: 4,
			want:  []string{"a  b"},
		},
		{
			name:  "greedy words",
			in:    "the quick brown fox",
			width: 10,
			want:  []string{"the quick", "brown fox"},
		},
		{
			name:  "repeated spaces collapse when folding",
			in:    "a  b  c",
			width: 3,
			want:  []string{"a b", "c"},
		},
		{
			name:  "explicit breaks",
			in:    "a\n\nb",
			width: 5,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "crlf",
			in:    "a\r\nb",
			width: 5,
			want:  []string{"a", "b"},
		},
		{
			name:  "long word split and remainder carried",
			in:    "ab abcdefghij xy",
			width: 4,
			want:  []string{"ab", "abcd", "efgh", "ij", "xy"},
		},
		{
			name:  "remainder joined by following word",
			in:    "abcdefg h",
			width: 5,
			want:  []string{"abcde", "fg h"},
		},
		{
			name:  "wide characters split by display width",
			in:    "日本語テキスト",
			width: 5,
			want:  []string{"日本", "語テ", "キス", "ト"},
		},
		{
			name:  "wide character wider than width stands alone",
			in:    "日本",
			width: 1,
			want:  []string{"日", "本"},
		},
		{
			name:  "combining marks stay with their base",
			in:    "e\u0301e\u0301e\u0301",
			width: 2,
			want:  []string{"e\u0301e\u0301", "e\u0301"},
		},
		{
			name:  "non-breaking space binds words",
			in:    "a\u00a0b c",
			width: 3,
			want:  []string{"a\u00a0b", "c"},
		},
		{
			name:  "only spaces",
			in:    "      ",
			width: 2,
			want:  []string{""},
		},
		{
			name:  "zero width treated as one",
			in:    "abc",
			width: 0,
			want:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, text.Wrap(tt.in, tt.width))
		})
	}
}

func TestWrapLinesFit(t *testing.T) {
	const in = "Lorem ipsum dolor sit amet, 日本語のテキスト consectetur adipiscingelitseddoeiusmod tempor\nincididunt 👍👍👍 ut labore"

	for width := 1; width <= 30; width++ {
		for _, line := range text.Wrap(in, width) {
			require.LessOrEqual(t, text.Width(line), max(width, 2), "width %d line %q", width, line)
		}
	}
}

func TestWrapKeepsAllWords(t *testing.T) {
	const in = "This is some really really really really really really really really really that is going to wrap to the next line"

	lines := text.Wrap(in, 68)
	require.Len(t, lines, 2)
	require.Equal(t, strings.Fields(in), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapSeqStopsEarly(t *testing.T) {
	var got []string
	for line := range text.WrapSeq("one two three four", 3) {
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}

	require.Equal(t, []string{"one", "two"}, got)
}

func TestWrapSeqRestartable(t *testing.T) {
	seq := text.WrapSeq("alpha beta gamma", 6)

	var first, second []string
	for line := range seq {
		first = append(first, line)
	}
	for line := range seq {
		second = append(second, line)
	}

	require.Equal(t, first, second)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, first)
}
