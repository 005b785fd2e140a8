package term

import (
	"testing"

	"github.com/boxel-tui/boxel/pkg/tt"
)

func TestSequences(t *testing.T) {
	tt.Test(t, CUP,
		tt.Args(1, 1).Rets("\033[1;1H"),
		tt.Args(80, 24).Rets("\033[24;80H"),
	)
	tt.Test(t, CUF,
		tt.Args(3).Rets("\033[3C"),
		tt.Args(0).Rets(""),
		tt.Args(-2).Rets(""),
	)
	tt.Test(t, SeqAltBuffer,
		tt.Args(true).Rets("\033[?1049h"),
		tt.Args(false).Rets("\033[?1049l"),
	)
	tt.Test(t, DECSCUSR,
		tt.Args(2).Rets("\033[2 q"),
	)
}

func TestPosition(t *testing.T) {
	tt.Test(t, Position,
		tt.Args(1.0, 1.0, 80, 24).Rets(1, 1, nil),
		tt.Args(0.0, 0.0, 80, 24).Rets(1, 1, nil),
		tt.Args(0.999, 0.999, 80, 24).Rets(80, 24, nil),
		tt.Args(0.5, 0.5, 81, 25).Rets(41, 13, nil),
		tt.Args(200.0, 3.0, 80, 24).Rets(200, 3, nil),
		tt.Args(-1.0, 1.0, 80, 24).Rets(0, 0, tt.ErrorMatching("cannot be negative")),
		tt.Args(1.0, -0.5, 80, 24).Rets(0, 0, tt.ErrorMatching("cannot be negative")),
		tt.Args(2.5, 1.0, 80, 24).Rets(0, 0, tt.ErrorMatching("cannot be fractional")),
		tt.Args(1.0, 1e12, 80, 24).Rets(0, 0, tt.ErrorMatching("out of range")),
	)
}

func TestKeys(t *testing.T) {
	tt.Test(t, Lookup,
		tt.Args([]byte("\033[A")).Rets("Up", true),
		tt.Args([]byte("\033OB")).Rets("Down", true),
		tt.Args([]byte{3}).Rets("Ctrl-C", true),
		tt.Args([]byte("\033[A\033[A")).Rets("", false),
		tt.Args([]byte("x")).Rets("", false),
	)
	custom := KeyTable{"q": "Quit"}
	tt.Test(t, custom.Lookup,
		tt.Args([]byte("q")).Rets("Quit", true),
		tt.Args([]byte("\033[A")).Rets("", false),
	)
}
