package tui

// Color is a foreground color for a canvas cell.
// Values map to ANSI 256-color codes at render time.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)

type cell struct {
	r     rune
	color Color
}

// canvas is a 2D character buffer the board view draws into. It decouples
// drawing from the terminal: the view works in rune coordinates and the
// renderer turns the buffer into one styled string per frame.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.allocate()
	c.clear()
	return c
}

func (c *canvas) allocate() {
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.width)
	}
}

// resize changes the buffer dimensions, dropping previous content.
func (c *canvas) resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.clear()
}

func (c *canvas) clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
}

// set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *canvas) set(x, y int, r rune) {
	c.setColored(x, y, r, ColorDefault)
}

func (c *canvas) setColored(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, color: color}
}

func (c *canvas) get(x, y int) cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return cell{r: ' '}
	}
	return c.cells[y][x]
}

// drawText writes a string horizontally starting at (x, y), clipping at
// the buffer edge.
func (c *canvas) drawText(x, y int, text string) {
	c.drawTextColored(x, y, text, ColorDefault)
}

func (c *canvas) drawTextColored(x, y int, text string, color Color) {
	for i, r := range text {
		c.setColored(x+i, y, r, color)
	}
}

// drawBox draws a box outline using box-drawing characters.
func (c *canvas) drawBox(x, y, w, h int) {
	c.set(x, y, '┌')
	c.set(x+w-1, y, '┐')
	c.set(x, y+h-1, '└')
	c.set(x+w-1, y+h-1, '┘')
	for i := x + 1; i < x+w-1; i++ {
		c.set(i, y, '─')
		c.set(i, y+h-1, '─')
	}
	for j := y + 1; j < y+h-1; j++ {
		c.set(x, j, '│')
		c.set(x+w-1, j, '│')
	}
}
