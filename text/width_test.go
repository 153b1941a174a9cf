package text_test

import (
	"testing"

	"github.com/leighmacdonald/termtable/text"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "hello", want: 5},
		{name: "cjk", in: "日本語", want: 6},
		{name: "mixed", in: "a日b", want: 4},
		{name: "combining mark", in: "e\u0301", want: 1},
		{name: "emoji", in: "👍", want: 2},
		{name: "box drawing", in: "╔═╗", want: 3},
		{name: "ansi colour", in: "\x1b[31mred\x1b[0m", want: 3},
		{name: "ansi around wide", in: "\x1b[1m日本\x1b[0m", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, text.Width(tt.in))
		})
	}
}

func TestWidthIgnoresLocale(t *testing.T) {
	t.Setenv("LANG", "ja_JP.UTF-8")
	require.Equal(t, 1, text.RuneWidth('═'))
	require.Equal(t, 1, text.RuneWidth('│'))
}

func TestLines(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, text.Lines("a\r\nb"))
	require.Equal(t, []string{"a b"}, text.Lines("a\tb"))
	require.Equal(t, []string{""}, text.Lines(""))
}

func TestMaxLineWidth(t *testing.T) {
	require.Equal(t, 0, text.MaxLineWidth(""))
	require.Equal(t, 5, text.MaxLineWidth("ab\nabcde\nabc"))
	require.Equal(t, 4, text.MaxLineWidth("日本\nabc"))
}

func TestWidestGrapheme(t *testing.T) {
	require.Equal(t, 0, text.WidestGrapheme(""))
	require.Equal(t, 1, text.WidestGrapheme("abc"))
	require.Equal(t, 2, text.WidestGrapheme("ab日"))
	require.Equal(t, 1, text.WidestGrapheme("e\u0301"))
	require.Equal(t, 1, text.WidestGrapheme("\x1b[31ma\x1b[0m"))
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		align text.Align
		want  string
	}{
		{name: "left", in: "ab", width: 5, align: text.AlignLeft, want: "ab   "},
		{name: "right", in: "ab", width: 5, align: text.AlignRight, want: "   ab"},
		{name: "center even gap", in: "ab", width: 6, align: text.AlignCenter, want: "  ab  "},
		{name: "center odd gap", in: "ab", width: 5, align: text.AlignCenter, want: " ab  "},
		{name: "wide", in: "日本", width: 6, align: text.AlignCenter, want: " 日本 "},
		{name: "exact", in: "abc", width: 3, align: text.AlignRight, want: "abc"},
		{name: "overfull", in: "abcd", width: 3, align: text.AlignLeft, want: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.Pad(tt.in, tt.width, tt.align)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlign(t *testing.T) {
	for name, want := range map[string]text.Align{
		"":       text.AlignLeft,
		"left":   text.AlignLeft,
		"Right":  text.AlignRight,
		">":      text.AlignRight,
		"center": text.AlignCenter,
		"centre": text.AlignCenter,
		"^":      text.AlignCenter,
	} {
		got, err := text.ParseAlign(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := text.ParseAlign("justify")
	require.ErrorIs(t, err, text.ErrUnknownAlign)
}

func TestAlignString(t *testing.T) {
	for _, align := range []text.Align{text.AlignLeft, text.AlignRight, text.AlignCenter} {
		parsed, err := text.ParseAlign(align.String())
		require.NoError(t, err)
		require.Equal(t, align, parsed)
	}
}
