package pattern

import "image"

// Translate shifts all cells by (dx, dy)
func (p Pattern) Translate(dx, dy int) Pattern {
	cells := make([]image.Point, len(p.Cells))
	d := image.Pt(dx, dy)
	for i, c := range p.Cells {
		cells[i] = c.Add(d)
	}
	p.Cells = cells
	return p
}

// Center moves the pattern's bounding box to the middle of a width x height area
func (p Pattern) Center(width, height int) Pattern {
	b := p.Bounds()
	dx := (width-b.Dx())/2 - b.Min.X
	dy := (height-b.Dy())/2 - b.Min.Y
	return p.Translate(dx, dy)
}

// Mask removes cells outside bounds
func (p Pattern) Mask(bounds image.Rectangle) Pattern {
	cells := make([]image.Point, 0, len(p.Cells))
	for _, c := range p.Cells {
		if c.In(bounds) {
			cells = append(cells, c)
		}
	}
	p.Cells = cells
	p.Width = min(p.Width, bounds.Dx())
	p.Height = min(p.Height, bounds.Dy())
	return p
}

// Tile repeats the pattern every (Width+gap, Height+gap) to fill an area
// Cells outside the area are clipped
func (p Pattern) Tile(areaWidth, areaHeight, gap int) Pattern {
	stepX, stepY := p.Width+gap, p.Height+gap
	if stepX <= 0 || stepY <= 0 || len(p.Cells) == 0 {
		return Pattern{Name: p.Name, Rule: p.Rule, Width: areaWidth, Height: areaHeight}
	}

	area := image.Rect(0, 0, areaWidth, areaHeight)
	tilesX := (areaWidth + stepX - 1) / stepX
	tilesY := (areaHeight + stepY - 1) / stepY
	cells := make([]image.Point, 0, len(p.Cells)*tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			d := image.Pt(tx*stepX, ty*stepY)
			for _, c := range p.Cells {
				if nc := c.Add(d); nc.In(area) {
					cells = append(cells, nc)
				}
			}
		}
	}

	return Pattern{Name: p.Name, Rule: p.Rule, Cells: cells, Width: areaWidth, Height: areaHeight}
}

// Merge combines patterns into one; overlapping cells collapse
func Merge(patterns ...Pattern) Pattern {
	var out Pattern
	for _, p := range patterns {
		out.Cells = append(out.Cells, p.Cells...)
		b := p.Bounds()
		out.Width = max(out.Width, p.Width, b.Max.X)
		out.Height = max(out.Height, p.Height, b.Max.Y)
		if out.Rule == "" {
			out.Rule = p.Rule
		}
	}
	return out.normalized()
}
