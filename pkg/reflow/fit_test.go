package reflow

import (
	"strings"
	"testing"
	"time"

	"github.com/boxel-tui/boxel/pkg/testutil"
	"github.com/boxel-tui/boxel/pkg/tt"
)

const (
	red   = "\033[31m"
	bold  = "\033[1m"
	reset = "\033[m"
)

func wrap(w int) Options   { return Options{Width: w, WordWrap: true, TabSize: 4} }
func noWrap(w int) Options { return Options{Width: w, TabSize: 4} }

func TestFit(t *testing.T) {
	tt.Test(t, Fit,
		// Breaks at exact boundaries are the same in both modes.
		tt.Args("ab cd", wrap(2)).Rets([]string{"ab", "cd"}),
		tt.Args("ab cd", noWrap(2)).Rets([]string{"ab", "cd"}),

		tt.Args("", noWrap(10)).Rets([]string{""}),
		tt.Args("\n", noWrap(10)).Rets([]string{"", ""}),
		tt.Args("hello world", wrap(8)).Rets([]string{"hello", "world"}),
		tt.Args("hello world", noWrap(8)).Rets([]string{"hello wo", "rld"}),
		tt.Args("abc d", wrap(4)).Rets([]string{"abc", "d"}),
		tt.Args("abcdef gh", wrap(3)).Rets([]string{"abc", "def", "gh"}),
		tt.Args("one two three", wrap(Unbounded)).Rets([]string{"one two three"}),
		tt.Args("abcdef", Options{Width: 2, FirstWidth: 4}).Rets([]string{"abcd", "ef"}),

		// Tabs.
		tt.Args("a\tb", noWrap(Unbounded)).Rets([]string{"a    b"}),
		tt.Args("ab\tc", noWrap(4)).Rets([]string{"ab", "c"}),
		tt.Args("ab\tc", Options{Width: 4, TabSize: 8}).Rets([]string{"abc"}),
		tt.Args("a\tb", Options{Width: 10}).Rets([]string{"ab"}),

		// Carriage returns overwrite.
		tt.Args("abc\rX", noWrap(Unbounded)).Rets([]string{"Xbc"}),
		tt.Args("abc\rXYZW", noWrap(Unbounded)).Rets([]string{"XYZW"}),
		tt.Args("abcd\rwxyzv", noWrap(4)).Rets([]string{"wxyz", "v"}),
		tt.Args("abc\r世", noWrap(3)).Rets([]string{"世b"}),
		tt.Args("abc\r世\r12345", noWrap(3)).Rets([]string{"123", "45"}),

		// Control characters.
		tt.Args("a\x00b\x7fc\u0085", noWrap(Unbounded)).Rets([]string{"a�b�c�"}),
		tt.Args("\033x", noWrap(Unbounded)).Rets([]string{"�x"}),
		tt.Args("a\033[", noWrap(Unbounded)).Rets([]string{"a�["}),

		// Wide and zero-width characters.
		tt.Args("日本語", noWrap(4)).Rets([]string{"日本", "語"}),
		tt.Args("日本語", noWrap(5)).Rets([]string{"日本", "語"}),
		tt.Args("日a", noWrap(1)).Rets([]string{"a"}),
		tt.Args("e\u0301x", noWrap(2)).Rets([]string{"e\u0301x"}),
		tt.Args("\u0301x", noWrap(2)).Rets([]string{"\u0301x"}),
	)
}

func TestFit_Tokens(t *testing.T) {
	tt.Test(t, Fit,
		// Tokens stay with the character after them.
		tt.Args("hello "+red+"world", wrap(8)).Rets([]string{"hello", red + "world"}),
		tt.Args("hello wo"+red+"rld", wrap(8)).Rets([]string{"hello", "wo" + red + "rld"}),
		tt.Args("ab"+red+"cd", noWrap(2)).Rets([]string{"ab", red + "cd"}),
		// Tokens of dropped spaces move to the next line.
		tt.Args("ab"+bold+" cd", noWrap(2)).Rets([]string{"ab", bold + "cd"}),
		tt.Args("ab "+bold+" cd", wrap(3)).Rets([]string{"ab ", bold + "cd"}),
		tt.Args("abc "+bold+"d", wrap(4)).Rets([]string{"abc", bold + "d"}),
		// Trailing tokens end their line.
		tt.Args("a"+red+"\nb"+reset, noWrap(Unbounded)).Rets([]string{"a" + red, "b" + reset}),
		// Overwritten cells keep their tokens.
		tt.Args(bold+"abc\r"+red+"X", noWrap(Unbounded)).Rets([]string{bold + red + "Xbc"}),
		// Tokens of dropped characters are kept.
		tt.Args(red+"日a", noWrap(1)).Rets([]string{red + "a"}),
		// Resets are followed by the default style.
		tt.Args("a"+reset+"b", Options{Width: Unbounded, DefaultStyle: bold}).
			Rets([]string{"a" + reset + bold + "b"}),
		tt.Args("a\033[0mb", Options{Width: Unbounded, DefaultStyle: bold}).
			Rets([]string{"a\033[0m" + bold + "b"}),
		tt.Args("a"+reset+bold+"b", Options{Width: Unbounded, DefaultStyle: bold}).
			Rets([]string{"a" + reset + bold + "b"}),
		// Other control sequences are tokens too.
		tt.Args("a\033[2Kb", noWrap(2)).Rets([]string{"a\033[2Kb"}),
	)
}

func TestFit_RoundTrip(t *testing.T) {
	texts := []string{
		"plain",
		"two\nlines",
		red + "colored" + reset + " text\n\nwith " + bold + "empty" + reset + " line" + red,
		"trailing\n",
		"日本語 and é accents",
	}
	for _, text := range texts {
		got := Fit(text, noWrap(Unbounded))
		want := strings.Split(text, "\n")
		if strings.Join(got, "\n") != strings.Join(want, "\n") || len(got) != len(want) {
			t.Errorf("Fit(%q) -> %q, want %q", text, got, want)
		}
	}
}

func TestFit_Idempotent(t *testing.T) {
	text := "The " + red + "quick brown" + reset + " fox jumps over\tthe lazy " +
		bold + "dog" + reset + ", twice over."
	for _, opts := range []Options{
		wrap(7), noWrap(7), wrap(12),
		{Width: 9, WordWrap: true, TabSize: 2, DefaultStyle: "\033[33m"},
	} {
		for _, line := range Fit(text, opts) {
			again := Fit(line, opts)
			if len(again) != 1 || again[0] != line {
				t.Errorf("refitting %q with %+v -> %q", line, opts, again)
			}
		}
	}
}

func TestFit_LinesFitWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor\tsit amet 日本 ", 5)
	for w := 1; w <= 12; w++ {
		for _, opts := range []Options{wrap(w), noWrap(w)} {
			for _, line := range Fit(text, opts) {
				if got := widthCond.StringWidth(Strip(line)); got > w {
					t.Errorf("line %q is %d cells wide, more than %d", line, got, w)
				}
			}
		}
	}
}

func TestFit_LongLineIsLinear(t *testing.T) {
	long := strings.Repeat("x", 100000)
	words := strings.Repeat("word ", 20000)
	limit := testutil.Scaled(time.Second)

	start := time.Now()
	if lines := Fit(long, noWrap(Unbounded)); len(lines) != 1 || len(lines[0]) != len(long) {
		t.Errorf("long line not kept whole")
	}
	if lines := Fit(long+"\r"+long, noWrap(Unbounded)); len(lines) != 1 {
		t.Errorf("overwritten long line split into %d lines", len(lines))
	}
	if lines := Fit(words, wrap(80)); len(lines) != 1250 {
		t.Errorf("wrapped into %d lines, want 1250", len(lines))
	}
	if d := time.Since(start); d > limit {
		t.Errorf("fitting 100k-rune lines took %v, want under %v", d, limit)
	}
}
