package transform

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformer_Apply(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want string
	}{
		{
			name: "caps_repeated_with_separator",
			text: "hi",
			opts: Options{Count: 2, Separator: "-", Mode: ModeCaps},
			want: "HI-HI",
		},
		{
			name: "echo_with_prefix_suffix",
			text: "x",
			opts: Options{Count: 1, Prefix: "[", Suffix: "]"},
			want: "[x]",
		},
		{
			name: "default_separator_is_space",
			text: "a",
			opts: Options{Count: 3, Mode: ModeEcho},
			want: "a a a",
		},
		{
			name: "unknown_mode_falls_back_to_echo",
			text: "hi",
			opts: Options{Count: 2, Separator: "|", Mode: Mode("sarcastic")},
			want: "hi|hi",
		},
		{
			name: "funny_alternates_casing_and_markers",
			text: "abcd",
			opts: Options{Count: 2, Separator: " ", Mode: ModeFunny},
			want: "AbCd! aBcD...",
		},
		{
			name: "empty_text_still_repeats",
			text: "",
			opts: Options{Count: 2, Separator: ",", Prefix: "<", Suffix: ">"},
			want: "<>,<>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().Apply(tt.text, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformer_Apply_PieceCount(t *testing.T) {
	tr := New()
	for _, count := range []int{1, 2, 3, 50, 199, 200} {
		got := tr.Apply("yo", Options{Count: count, Separator: "|"})
		assert.Len(t, strings.Split(got, "|"), count, "count=%d", count)
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "below_minimum", n: 0, want: 1},
		{name: "negative", n: -7, want: 1},
		{name: "at_minimum", n: 1, want: 1},
		{name: "in_range", n: 42, want: 42},
		{name: "at_maximum", n: 200, want: 200},
		{name: "above_maximum", n: 9001, want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampCount(tt.n))
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback int
		want     int
	}{
		{name: "numeric", input: "5", fallback: 3, want: 5},
		{name: "numeric_with_spaces", input: " 12 ", fallback: 3, want: 12},
		{name: "non_numeric_uses_cli_fallback", input: "banana", fallback: DefaultCLICount, want: 3},
		{name: "empty_uses_http_fallback", input: "", fallback: DefaultHTTPCount, want: 1},
		{name: "numeric_out_of_range_clamps", input: "1000", fallback: 3, want: 200},
		{name: "fallback_is_clamped_too", input: "x", fallback: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCount(tt.input, tt.fallback))
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Mode
	}{
		{name: "echo", input: "echo", want: ModeEcho},
		{name: "caps", input: "caps", want: ModeCaps},
		{name: "shuffle", input: "shuffle", want: ModeShuffle},
		{name: "funny", input: "funny", want: ModeFunny},
		{name: "mixed_case", input: "CAPS", want: ModeCaps},
		{name: "unknown_falls_back_to_echo", input: "loud", want: ModeEcho},
		{name: "empty_falls_back_to_echo", input: "", want: ModeEcho},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.input))
		})
	}
}

func TestTransformer_Apply_Funny(t *testing.T) {
	tr := New()

	// Marker pattern is deterministic by repetition parity.
	got := tr.Apply("hey", Options{Count: 4, Separator: "|", Mode: ModeFunny})
	pieces := strings.Split(got, "|")
	require.Len(t, pieces, 4)
	for rep, piece := range pieces {
		if rep%2 == 0 {
			assert.True(t, strings.HasSuffix(piece, "!"), "rep %d: %q", rep, piece)
			assert.Len(t, piece, len("hey")+1)
		} else {
			assert.True(t, strings.HasSuffix(piece, "..."), "rep %d: %q", rep, piece)
			assert.Len(t, piece, len("hey")+3)
		}
	}

	// Casing is out of phase between consecutive repetitions.
	assert.Equal(t, "HeY!", pieces[0])
	assert.Equal(t, "hEy...", pieces[1])
	assert.Equal(t, "HeY!", pieces[2])
}

func TestTransformer_Apply_Shuffle(t *testing.T) {
	tr := New()
	input := "shuffle me please"

	got := tr.Apply(input, Options{Count: 1, Mode: ModeShuffle})
	require.Len(t, got, len(input))

	// Same multiset of characters, no assertion on ordering.
	wantRunes := []rune(input)
	gotRunes := []rune(got)
	sort.Slice(wantRunes, func(i, j int) bool { return wantRunes[i] < wantRunes[j] })
	sort.Slice(gotRunes, func(i, j int) bool { return gotRunes[i] < gotRunes[j] })
	assert.Equal(t, string(wantRunes), string(gotRunes))
}

func TestTransformer_Apply_ShuffleSeeded(t *testing.T) {
	// An injected source makes the permutation reproducible.
	a := New(WithRand(rand.New(rand.NewSource(7))))
	b := New(WithRand(rand.New(rand.NewSource(7))))

	opts := Options{Count: 3, Separator: "-", Mode: ModeShuffle}
	assert.Equal(t, a.Apply("abcdefg", opts), b.Apply("abcdefg", opts))
}
