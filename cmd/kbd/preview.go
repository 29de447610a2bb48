package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-kbd"
)

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// renderPreview draws the installed keyboard cols terminal cells wide.
// Each key is a block of its face color with its label centered.
func renderPreview(c *kbd.Container, cols int) string {
	bounds := c.Bounds()
	if cols <= 0 || bounds.Width <= 0 || bounds.Height <= 0 {
		return ""
	}
	sx := float64(cols) / bounds.Width
	sy := sx / cellAspect
	rows := int(math.Round(bounds.Height * sy))
	if rows <= 0 {
		return ""
	}

	keys := c.Keys()
	owner := make([][]int, rows)
	text := make([][]string, rows)
	for y := range owner {
		owner[y] = make([]int, cols)
		text[y] = make([]string, cols)
		for x := range owner[y] {
			owner[y][x] = -1
			text[y][x] = " "
		}
	}

	for i, k := range keys {
		cells := k.Frame.Translate(-bounds.X, -bounds.Y).Scale(sx, sy).Cells()
		for y := max(cells.Y, 0); y < min(cells.Bottom(), rows); y++ {
			for x := max(cells.X, 0); x < min(cells.Right(), cols); x++ {
				owner[y][x] = i
			}
		}
		placeLabel(text, cells.X, cells.Y, cells.Width, cells.Height, k.Key.Label)
	}

	styles := make([]lipgloss.Style, len(keys))
	for i, k := range keys {
		styles[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(k.Colors.Color.Hex())).
			Foreground(lipgloss.Color(k.Colors.Text.Hex()))
	}
	background := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Parameters().Colors.DarkShadow.Hex()))

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; {
			end := x
			for end < cols && owner[y][end] == owner[y][x] {
				end++
			}
			run := strings.Join(text[y][x:end], "")
			if i := owner[y][x]; i >= 0 {
				b.WriteString(styles[i].Render(run))
			} else {
				b.WriteString(background.Render(run))
			}
			x = end
		}
	}
	return b.String()
}

// placeLabel centers label inside the cell block, truncating it to fit.
// A double-width rune leaves the cell after it empty.
func placeLabel(text [][]string, x, y, w, h int, label string) {
	if w <= 0 || h <= 0 || label == "" {
		return
	}
	row := y + h/2
	if row < 0 || row >= len(text) {
		return
	}

	var runes []string
	used := 0
	for _, r := range label {
		rw := lipgloss.Width(string(r))
		if used+rw > w {
			break
		}
		runes = append(runes, string(r))
		used += rw
	}

	col := x + (w-used)/2
	for _, r := range runes {
		rw := lipgloss.Width(r)
		if col < 0 || col+rw > len(text[row]) {
			return
		}
		text[row][col] = r
		for i := 1; i < rw; i++ {
			text[row][col+i] = ""
		}
		col += rw
	}
}
