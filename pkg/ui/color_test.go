package ui

import (
	"testing"

	"github.com/boxel-tui/boxel/pkg/tt"
)

func TestColorSGR(t *testing.T) {
	tt.Test(t, Style.Sequence,
		tt.Args(Fg(Red)).Rets("\033[31m"),
		tt.Args(Bg(Red)).Rets("\033[41m"),

		tt.Args(Fg(BrightRed)).Rets("\033[91m"),
		tt.Args(Bg(BrightRed)).Rets("\033[101m"),

		tt.Args(Fg(Default)).Rets("\033[39m"),
		tt.Args(Bg(Default)).Rets("\033[49m"),

		tt.Args(Fg(XTerm256Color(30))).Rets("\033[38;5;30m"),
		tt.Args(Bg(XTerm256Color(30))).Rets("\033[48;5;30m"),

		tt.Args(Fg(TrueColor(30, 40, 50))).Rets("\033[38;2;30;40;50m"),
		tt.Args(Bg(TrueColor(30, 40, 50))).Rets("\033[48;2;30;40;50m"),
	)
}

var colorStringTests = []struct {
	color Color
	str   string
}{
	{Default, "default"},
	{Red, "red"},
	{BrightRed, "bright-red"},
	{XTerm256Color(30), "color30"},
	{TrueColor(0x33, 0x44, 0x55), "#334455"},
}

func TestColorString(t *testing.T) {
	for _, test := range colorStringTests {
		s := test.color.String()
		if s != test.str {
			t.Errorf("%v.String() -> %q, want %q", test.color, s, test.str)
		}
	}
}

func TestParseColor_RoundTrip(t *testing.T) {
	for _, test := range colorStringTests {
		c, err := ParseColor(test.str)
		if err != nil || c != test.color {
			t.Errorf("ParseColor(%q) -> (%v, %v), want %v", test.str, c, err, test.color)
		}
	}
}

func TestParseColor(t *testing.T) {
	tt.Test(t, ParseColor,
		tt.Args("bright-cyan").Rets(BrightCyan, nil),
		tt.Args("208").Rets(XTerm256Color(208), nil),
		tt.Args("0").Rets(XTerm256Color(0), nil),
		tt.Args("#FFD700").Rets(TrueColor(0xff, 0xd7, 0x00), nil),
		tt.Args("#1e1e1e").Rets(TrueColor(0x1e, 0x1e, 0x1e), nil),
		tt.Args("#abc").Rets(TrueColor(0xaa, 0xbb, 0xcc), nil),

		tt.Args("purple").Rets(nil, tt.ErrorMatching("unknown color name")),
		tt.Args("bright-purple").Rets(nil, tt.ErrorMatching("unknown bright color name")),
		tt.Args("dim-red").Rets(nil, tt.ErrorMatching("unknown color name")),
		tt.Args("256").Rets(nil, tt.ErrorMatching("out of range")),
		tt.Args("color999").Rets(nil, tt.ErrorMatching("out of range")),
		tt.Args("#12345").Rets(nil, tt.ErrorMatching("3 or 6 digits")),
		tt.Args("#GGHHII").Rets(nil, tt.ErrorMatching("malformed")),
		tt.Args("").Rets(nil, tt.ErrorMatching("unknown color name")),
	)
}

func TestIndex(t *testing.T) {
	tt.Test(t, Index,
		tt.Args(0).Rets(XTerm256Color(0), nil),
		tt.Args(255).Rets(XTerm256Color(255), nil),
		tt.Args(-1).Rets(nil, tt.ErrorMatching("out of range")),
		tt.Args(256).Rets(nil, tt.ErrorMatching("out of range")),
	)
}
