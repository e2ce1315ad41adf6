package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"twenty48/internal/board"
)

const (
	cellWidth  = 7 // Width of each cell including the left border
	cellHeight = 2 // Height of each cell including the top border
	hudHeight  = 3
)

// colorStyles maps canvas colors to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault:       lipgloss.NewStyle(),
	ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// tileColors indexes a tile's color by its exponent, 2 through 2048.
var tileColors = [...]Color{
	ColorDefault,
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorOrange,        // 8
	ColorBrightRed,     // 16
	ColorRed,           // 32
	ColorMagenta,       // 64
	ColorBrightMagenta, // 128
	ColorYellow,        // 256
	ColorBrightYellow,  // 512
	ColorBrightCyan,    // 1024
	ColorBrightGreen,   // 2048
}

func tileColor(v board.Value) Color {
	e := v.Exponent()
	if e < 0 || e >= len(tileColors) {
		return ColorBrightGreen
	}
	return tileColors[e]
}

// renderCanvas converts the buffer to a styled string. Adjacent cells
// with the same color are grouped to keep the ANSI output small.
func renderCanvas(c *canvas) string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.width {
			start := c.get(x, y).color
			var run strings.Builder
			for x < c.width {
				cl := c.get(x, y)
				if cl.color != start {
					break
				}
				run.WriteRune(cl.r)
				x++
			}
			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawGrid draws the board borders for a size-by-size grid whose top-left
// corner sits at (boardX, boardY).
func drawGrid(c *canvas, boardX, boardY, size int) {
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			c.setColored(px, py, corner, ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					c.setColored(px+i, py, '─', ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					c.setColored(px, py+i, '│', ColorGray)
				}
			}
		}
	}
}

// drawTileAt draws a tile value centered in the cell whose interpolated
// board coordinates are (row, col), given in cell units.
func drawTileAt(c *canvas, boardX, boardY int, row, col float64, v board.Value, color Color) {
	px := boardX + int(col*cellWidth+0.5) + 1
	py := boardY + int(row*cellHeight+0.5) + 1

	label := strconv.Itoa(int(v))
	pad := (cellWidth - 1 - len(label)) / 2
	if pad < 0 {
		pad = 0
	}
	c.drawTextColored(px+pad, py, label, color)
}

func drawTile(c *canvas, boardX, boardY int, p board.Position, v board.Value, color Color) {
	drawTileAt(c, boardX, boardY, float64(p.Row), float64(p.Col), v, color)
}

// drawHUD draws the title line and the session numbers above the board.
func drawHUD(c *canvas, boardX, boardW int, maxTile board.Value, moves int, seed int64) {
	title := "2048"
	c.drawTextColored(boardX+(boardW-len(title))/2, 0, title, ColorBrightYellow)

	maxStr := fmt.Sprintf("Max: %d", int(maxTile))
	c.drawText(boardX, 1, maxStr)

	movesStr := fmt.Sprintf("Moves: %d", moves)
	x := boardX + boardW - len(movesStr)
	if x < boardX+len(maxStr)+2 {
		x = boardX + len(maxStr) + 2
	}
	c.drawText(x, 1, movesStr)

	seedStr := fmt.Sprintf("Seed: %d", seed)
	c.drawTextColored(boardX+(boardW-len(seedStr))/2, 2, seedStr, ColorGray)
}

// drawOverlay draws a centered boxed message over the board.
func drawOverlay(c *canvas, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			c.set(x, y, ' ')
		}
	}
	c.drawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		c.drawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// drawTooSmall shows a resize hint when the terminal cannot fit the board.
func drawTooSmall(c *canvas) {
	msg := "Window too small"
	c.drawText((c.width-len(msg))/2, c.height/2, msg)
	hint := "Please resize terminal"
	c.drawText((c.width-len(hint))/2, c.height/2+1, hint)
}
