package border

// Joins tells which sides of a segment meet a neighboring segment.
type Joins struct {
	Top, Right, Bottom, Left bool
}

// Tile draws a border segment of width×height cells and returns its rows of
// glyphs. Non-positive sizes yield no rows.
//
// A cell connects to a side when the side is on the segment's perimeter and
// joins a neighbor, or when it is inside the segment and the fill draws there.
// With FillSolid the whole interior grid is drawn; with FillLines only lines
// running into a joined side are.
func Tile(width, height int, fill Fill, g Glyphs, j Joins) [][]string {
	if width <= 0 || height <= 0 {
		return nil
	}
	table := g.Table()

	// Whether interior horizontal and vertical lines are drawn.
	hor := fill != FillLines || j.Left || j.Right
	vert := fill != FillLines || j.Top || j.Bottom
	// The same along each edge, where the edge itself may stand in for a
	// missing neighbor.
	horTop := hor || !j.Top
	horBottom := hor || !j.Bottom
	vertLeft := vert || !j.Left
	vertRight := vert || !j.Right

	column := func(x int) bool {
		switch {
		case x == 0:
			return vertLeft
		case x == width-1:
			return vertRight
		default:
			return vert
		}
	}
	row := func(y int) bool {
		switch {
		case y == 0:
			return horTop
		case y == height-1:
			return horBottom
		default:
			return hor
		}
	}

	rows := make([][]string, height)
	for y := range rows {
		cells := make([]string, width)
		for x := range cells {
			n, s, w, e := column(x), column(x), row(y), row(y)
			if y == 0 {
				n = j.Top
			}
			if y == height-1 {
				s = j.Bottom
			}
			if x == 0 {
				w = j.Left
			}
			if x == width-1 {
				e = j.Right
			}
			cells[x] = table[Mask(n, e, s, w)]
		}
		rows[y] = cells
	}
	return rows
}

// Lines joins each row of a tile into a string.
func Lines(tile [][]string) []string {
	lines := make([]string, len(tile))
	for i, cells := range tile {
		for _, c := range cells {
			lines[i] += c
		}
	}
	return lines
}
