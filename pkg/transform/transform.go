// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transform

import (
	"math/rand"
	"strconv"
	"strings"
	"unicode"
)

// 🎭 Mode selects the transformation applied to each repeated copy
type Mode string

const (
	ModeEcho    Mode = "echo"    // unchanged
	ModeCaps    Mode = "caps"    // uppercased
	ModeShuffle Mode = "shuffle" // random rune permutation
	ModeFunny   Mode = "funny"   // alternating case with trailing marker
)

// Count bounds and defaults. Out-of-range counts are clamped, never rejected.
const (
	MinCount = 1
	MaxCount = 200

	DefaultCLICount  = 3
	DefaultHTTPCount = 1

	DefaultSeparator = " "
)

// ParseMode maps a mode string to a Mode, falling back to echo for
// anything it does not recognize.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeCaps:
		return ModeCaps
	case ModeShuffle:
		return ModeShuffle
	case ModeFunny:
		return ModeFunny
	default:
		return ModeEcho
	}
}

// 🎛️ Options controls a single transformation
type Options struct {
	Count     int    // Number of repeated copies, clamped to [MinCount, MaxCount]
	Separator string // Joiner between copies, empty means DefaultSeparator
	Mode      Mode   // Transformation strategy, unknown falls back to echo
	Prefix    string // Wrapped around each copy
	Suffix    string // Wrapped around each copy
}

// ClampCount clamps n into [MinCount, MaxCount]
func ClampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// ParseCount parses a decimal count, using fallback for empty or
// non-numeric input, then clamps the result.
func ParseCount(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		n = fallback
	}
	return ClampCount(n)
}

// 🔀 Transformer applies repeated string transformations
type Transformer struct {
	rand *rand.Rand
}

// Option configures a Transformer
type Option func(*Transformer)

// WithRand injects a seedable random source, used by shuffle mode.
// Intended for tests that need deterministic permutations.
func WithRand(r *rand.Rand) Option {
	return func(t *Transformer) {
		t.rand = r
	}
}

// 🏭 New creates a new Transformer
func New(opts ...Option) *Transformer {
	t := &Transformer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Apply produces opts.Count transformed copies of text, each wrapped with
// prefix/suffix, joined by the separator.
func (t *Transformer) Apply(text string, opts Options) string {
	count := ClampCount(opts.Count)
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	pieces := make([]string, 0, count)
	for rep := 0; rep < count; rep++ {
		piece := t.applyOnce(text, opts.Mode, rep)
		pieces = append(pieces, opts.Prefix+piece+opts.Suffix)
	}
	return strings.Join(pieces, sep)
}

// applyOnce transforms one copy. rep is the zero-based repetition index,
// which only funny mode consumes.
func (t *Transformer) applyOnce(text string, mode Mode, rep int) string {
	switch mode {
	case ModeCaps:
		return strings.ToUpper(text)
	case ModeShuffle:
		return t.shuffle(text)
	case ModeFunny:
		return funny(text, rep)
	default:
		return text
	}
}

// shuffle returns an unseeded random permutation of the runes in text.
// Each call differs unless a fixed source was injected via WithRand.
func (t *Transformer) shuffle(text string) string {
	runes := []rune(text)
	swap := func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	}
	if t.rand != nil {
		t.rand.Shuffle(len(runes), swap)
	} else {
		rand.Shuffle(len(runes), swap)
	}
	return string(runes)
}

// funny alternates rune casing by the parity of position plus repetition
// index, and appends "!" on even repetitions, "..." on odd ones. The joint
// position/repetition rule is deliberate, it makes consecutive copies
// visibly out of phase with each other.
func funny(text string, rep int) string {
	runes := []rune(text)
	for i, r := range runes {
		if (i+rep)%2 == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	marker := "!"
	if rep%2 != 0 {
		marker = "..."
	}
	return string(runes) + marker
}
