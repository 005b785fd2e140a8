package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boxel-tui/boxel/pkg/tt"
)

func TestDedent(t *testing.T) {
	tt.Test(t, Dedent,
		tt.Args(" \n  foo\n bar").Rets("\n foo\nbar"),
		tt.Args(`
			a
			 b
			c`).Rets("a\n b\nc"),
		tt.Args(`
			a

			c
			`).Rets("a\n\nc\n"),
		// Tabs and spaces do not mix.
		tt.Args("\n\t\ta\n\t  b").Rets("\ta\n  b"),
		tt.Args("no indent").Rets("no indent"),
	)
}

func TestMustWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	MustWriteFile(path, []byte("data"), 0600)
	if data, err := os.ReadFile(path); err != nil || string(data) != "data" {
		t.Errorf("read back %q, %v", data, err)
	}
}
