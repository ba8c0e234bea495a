package components

import (
	"charm.land/lipgloss/v2"
)

// Cell is a single screen coordinate on the connector path.
type Cell struct {
	X, Y int
}

// ConnectorPath computes the cells of a straight line from the anchor to the
// cursor using Bresenham's algorithm. The path includes both endpoints and
// is safe for any pair of points, including identical ones.
func ConnectorPath(fromX, fromY, toX, toY int) []Cell {
	dx := abs(toX - fromX)
	dy := -abs(toY - fromY)

	sx := 1
	if fromX > toX {
		sx = -1
	}
	sy := 1
	if fromY > toY {
		sy = -1
	}

	var cells []Cell
	x, y := fromX, fromY
	err := dx + dy
	for {
		cells = append(cells, Cell{X: x, Y: y})
		if x == toX && y == toY {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return cells
}

// connectorGlyph picks a line-drawing character from the step between two
// neighboring path cells.
func connectorGlyph(prev, cur Cell) string {
	switch {
	case prev.Y == cur.Y:
		return "─"
	case prev.X == cur.X:
		return "│"
	case (cur.X-prev.X > 0) == (cur.Y-prev.Y > 0):
		return "╲"
	default:
		return "╱"
	}
}

// RenderConnectorLayers renders the linking connector as one layer per cell,
// to be composited on top of the board. The anchor cell shows the link
// handle and the cursor end shows an arrowhead, so the user can see both
// what they are linking from and where a release would land.
func RenderConnectorLayers(fromX, fromY, toX, toY int) []*lipgloss.Layer {
	path := ConnectorPath(fromX, fromY, toX, toY)

	layers := make([]*lipgloss.Layer, 0, len(path))
	for i, cell := range path {
		var glyph string
		switch {
		case i == 0:
			glyph = LinkHandle
		case i == len(path)-1:
			glyph = "◎"
		default:
			glyph = connectorGlyph(path[i-1], cell)
		}
		layers = append(layers,
			lipgloss.NewLayer(ConnectorStyle.Render(glyph)).X(cell.X).Y(cell.Y))
	}
	return layers
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
