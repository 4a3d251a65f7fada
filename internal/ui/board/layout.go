package board

// Width is the horizontal share a group takes on the board
type Width int

const (
	WidthFull      Width = iota // Spans the whole row
	WidthHalf                   // Shares the row with its neighbour
	WidthHalfAlone              // Half width with nothing beside it
)

// String returns the display string
func (w Width) String() string {
	switch w {
	case WidthFull:
		return "full"
	case WidthHalf:
		return "half"
	case WidthHalfAlone:
		return "half-alone"
	default:
		return "unknown"
	}
}

// Row is one horizontal band of the board
type Row struct {
	Groups []int // Indexes into the groups slice
	Width  Width
}

// ComputeWidths assigns a width to each group. Two consecutive half groups pair up; a half
// group with no half neighbour after it stays alone. Pairing depends on the fixed group order.
func ComputeWidths(fullWidth []bool) []Width {
	widths := make([]Width, len(fullWidth))
	i := 0
	for i < len(fullWidth) {
		if fullWidth[i] {
			widths[i] = WidthFull
			i++
			continue
		}
		if i+1 < len(fullWidth) && !fullWidth[i+1] {
			widths[i] = WidthHalf
			widths[i+1] = WidthHalf
			i += 2
			continue
		}
		widths[i] = WidthHalfAlone
		i++
	}
	return widths
}

// ComputeLayout groups the board into rows following ComputeWidths
func ComputeLayout(groups []Group) []Row {
	fullWidth := make([]bool, len(groups))
	for i, g := range groups {
		fullWidth[i] = g.FullWidth
	}
	widths := ComputeWidths(fullWidth)

	var rows []Row
	for i := 0; i < len(widths); i++ {
		if widths[i] == WidthHalf {
			rows = append(rows, Row{Groups: []int{i, i + 1}, Width: WidthHalf})
			i++
			continue
		}
		rows = append(rows, Row{Groups: []int{i}, Width: widths[i]})
	}
	return rows
}
