package galaxy

// grid maps between the flat index of a lattice point and its integer
// coordinates. The z coordinate varies fastest and x slowest.
type grid struct {
	Length, Area, Volume int
}

func newGrid(width int) *grid {
	return &grid{width, width * width, width * width * width}
}

// Coords returns the x, y, z coordinates of the point at index idx.
func (g *grid) Coords(idx int) (x, y, z int) {
	x = idx / g.Area
	y = (idx % g.Area) / g.Length
	z = idx % g.Length
	return x, y, z
}
