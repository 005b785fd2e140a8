package border

import (
	"slices"
	"testing"

	"github.com/boxel-tui/boxel/pkg/tt"
)

func TestTile(t *testing.T) {
	g := Line.Glyphs()
	tile := func(w, h int, fill Fill, j Joins) []string {
		return Lines(Tile(w, h, fill, g, j))
	}
	tt.Test(t, tt.Fn("tile", tile),
		tt.Args(3, 3, FillSolid, Joins{}).
			Rets([]string{"┌┬┐", "├┼┤", "└┴┘"}),
		tt.Args(3, 3, FillLines, Joins{}).
			Rets([]string{"┌─┐", "│ │", "└─┘"}),
		tt.Args(3, 3, FillLines, Joins{Top: true}).
			Rets([]string{"│││", "│││", "└┴┘"}),
		tt.Args(1, 1, FillSolid, Joins{}).Rets([]string{" "}),
		tt.Args(1, 1, FillSolid, Joins{Right: true, Bottom: true}).Rets([]string{"┌"}),
		tt.Args(1, 1, FillSolid, Joins{Left: true, Bottom: true}).Rets([]string{"┐"}),
		tt.Args(1, 1, FillSolid, Joins{Top: true, Right: true}).Rets([]string{"└"}),
		tt.Args(1, 1, FillSolid, Joins{Top: true, Left: true}).Rets([]string{"┘"}),
		tt.Args(1, 1, FillLines, Joins{true, true, true, true}).Rets([]string{"┼"}),
		tt.Args(5, 1, FillSolid, Joins{Right: true, Left: true}).Rets([]string{"─────"}),
		tt.Args(1, 3, FillSolid, Joins{Top: true, Bottom: true}).Rets([]string{"│", "│", "│"}),
		tt.Args(2, 2, FillSolid, Joins{}).Rets([]string{"┌┐", "└┘"}),
		tt.Args(0, 3, FillSolid, Joins{}).Rets([]string{}),
		tt.Args(3, -1, FillSolid, Joins{}).Rets([]string{}),
	)
}

func TestTile_SizesAndGlyphs(t *testing.T) {
	sizes := []int{1, 2, 3, 10}
	for _, style := range []Style{Line, Thick, Double, Round, Solid, None} {
		table := style.Glyphs().Table()
		for _, fill := range []Fill{FillSolid, FillLines} {
			for mask := 0; mask < 16; mask++ {
				j := Joins{mask&8 != 0, mask&4 != 0, mask&2 != 0, mask&1 != 0}
				for _, w := range sizes {
					for _, h := range sizes {
						rows := Tile(w, h, fill, style.Glyphs(), j)
						if len(rows) != h {
							t.Fatalf("%v %v %v %dx%d: got %d rows", style, fill, j, w, h, len(rows))
						}
						for _, row := range rows {
							if len(row) != w {
								t.Fatalf("%v %v %v %dx%d: got row of %d cells", style, fill, j, w, h, len(row))
							}
							for _, cell := range row {
								if !slices.Contains(table[:], cell) {
									t.Errorf("%v %v %v %dx%d: glyph %q not in table", style, fill, j, w, h, cell)
								}
							}
						}
					}
				}
			}
		}
	}
}

func TestTile_CustomGlyphs(t *testing.T) {
	ascii := Custom(Glyphs{" ", "-", "|", "+", "+", "+", "+", "+", "+", "+", "+", "+"})
	got := Lines(Tile(4, 3, FillLines, ascii.Glyphs(), Joins{}))
	want := []string{"+--+", "|  |", "+--+"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMask(t *testing.T) {
	tt.Test(t, Mask,
		tt.Args(false, false, false, false).Rets(0),
		tt.Args(true, false, false, false).Rets(8),
		tt.Args(false, true, false, true).Rets(5),
		tt.Args(true, true, true, true).Rets(15),
	)
}

func TestGlyphs_Pick(t *testing.T) {
	g := Double.Glyphs()
	tt.Test(t, g.Pick,
		tt.Args(0).Rets(" "),
		tt.Args(Mask(false, true, true, false)).Rets("╔"),
		tt.Args(Mask(true, false, false, true)).Rets("╝"),
		tt.Args(Mask(true, true, true, true)).Rets("╬"),
		tt.Args(Mask(true, true, true, true)|0x30).Rets("╬"),
	)
}
