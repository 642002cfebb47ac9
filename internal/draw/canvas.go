package draw

import (
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game code draws in playfield units; the canvas scales them to terminal cells.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based terminal offsets for centering the playfield.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// playfield onto termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Lit reports whether the sub-pixel at terminal coordinates (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// SetFloat sets the sub-pixel under a logical point.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(c.toPixel(x, y))
}

// FillRect fills the logical rectangle. Anything with a positive size lights
// at least one sub-pixel, so thin bullets stay visible at small scales.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := int(math.Floor(x*c.scaleX)), int(math.Floor(y*c.scaleY))
	x1, y1 := int(math.Ceil((x+w)*c.scaleX)), int(math.Ceil((y+h)*c.scaleY))
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for py := max(y0, 0); py < min(y1, c.subPixelHeight); py++ {
		for px := max(x0, 0); px < min(x1, c.termWidth); px++ {
			c.pixels[py*c.termWidth+px] = true
		}
	}
}

// StrokeRect outlines the logical rectangle.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	tl, tr := Point{x, y}, Point{x + w, y}
	bl, br := Point{x, y + h}, Point{x + w, y + h}
	c.DrawLine(tl, tr)
	c.DrawLine(tr, br)
	c.DrawLine(br, bl)
	c.DrawLine(bl, tl)
}

// FillCircle fills a disc of logical radius r centred on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64) {
	rx, ry := r*c.scaleX, r*c.scaleY
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	if rx < 1 && ry < 1 {
		c.setPixel(int(math.Round(pcx)), int(math.Round(pcy)))
		return
	}
	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		dy := (float64(py) + 0.5 - pcy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for px := int(math.Floor(pcx - half)); px <= int(math.Ceil(pcx+half))-1; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawLine draws a line between logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, optionally filling its interior.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = min(minY, scaled[i].Y)
		maxY = max(maxY, scaled[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := range scaled {
			p1, p2 := scaled[i], scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs

		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a reusable slice of n Points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

// maxChunkSize is the maximum bytes to write at once. It stays under a
// typical MTU so SSH sessions stream smoothly.
const maxChunkSize = 1400

// Render outputs the canvas to w using half-block characters.
// Empty cells are skipped, so callers clear the screen first.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := range c.termHeight {
		top := c.pixels[row*2*c.termWidth:]
		bottom := c.pixels[(row*2+1)*c.termWidth:]
		for col := range c.termWidth {
			var ch rune
			switch t, b := top[col], bottom[col]; {
			case t && b:
				ch = BlockFull
			case t:
				ch = BlockUpperHalf
			case b:
				ch = BlockLowerHalf
			default:
				continue
			}
			c.moveTo(row+1+c.offsetRow, col+1+c.offsetCol)
			c.renderBuf.WriteRune(ch)
		}
	}

	return writeChunked(w, c.renderBuf.String())
}

func (c *Canvas) moveTo(row, col int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder frames the playfield with box-drawing characters wherever the
// offsets leave room for them.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var b strings.Builder
	if hasV {
		if hasH {
			b.WriteString(cursor(top, left) + "┌" + line + "┐")
			b.WriteString(cursor(bottom, left) + "└" + line + "┘")
		} else {
			b.WriteString(cursor(top, left+1) + line)
			b.WriteString(cursor(bottom, left+1) + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			b.WriteString(cursor(row, left) + "│" + cursor(row, right) + "│")
		}
	}
	return writeChunked(w, b.String())
}

// LogicalToTerminal converts logical coordinates to a 1-based (col, row)
// inside the canvas, for placing text over drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

func cursor(row, col int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
