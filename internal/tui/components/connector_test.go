package components

import "testing"

func TestConnectorPath_IncludesBothEndpoints(t *testing.T) {
	path := ConnectorPath(2, 3, 10, 7)

	if len(path) == 0 {
		t.Fatal("empty path")
	}
	if first := path[0]; first.X != 2 || first.Y != 3 {
		t.Errorf("first cell = %+v, want (2,3)", first)
	}
	if last := path[len(path)-1]; last.X != 10 || last.Y != 7 {
		t.Errorf("last cell = %+v, want (10,7)", last)
	}
}

func TestConnectorPath_NeighboringCells(t *testing.T) {
	tests := []struct {
		name                   string
		fromX, fromY, toX, toY int
	}{
		{"horizontal", 0, 0, 12, 0},
		{"vertical", 5, 9, 5, 1},
		{"steep", 0, 0, 2, 10},
		{"shallow reversed", 20, 4, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ConnectorPath(tt.fromX, tt.fromY, tt.toX, tt.toY)
			for i := 1; i < len(path); i++ {
				dx := abs(path[i].X - path[i-1].X)
				dy := abs(path[i].Y - path[i-1].Y)
				if dx > 1 || dy > 1 || dx+dy == 0 {
					t.Fatalf("cells %d and %d are not neighbors: %+v -> %+v",
						i-1, i, path[i-1], path[i])
				}
			}
		})
	}
}

func TestConnectorPath_DegeneratePoint(t *testing.T) {
	path := ConnectorPath(4, 4, 4, 4)
	if len(path) != 1 {
		t.Fatalf("len(path) = %d, want 1 for identical endpoints", len(path))
	}
	if path[0].X != 4 || path[0].Y != 4 {
		t.Errorf("cell = %+v, want (4,4)", path[0])
	}
}
