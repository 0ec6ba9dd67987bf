package textlayer

import "github.com/iw2rmb/texted/styletag"

// Pos points into the laid-out rows by (row, col), 0-based.
type Pos struct {
	Row int
	Col int
}

// Cell is one visible character produced for painting. X is the content-box
// column the character starts at; tabs arrive expanded to spaces.
type Cell struct {
	X     int
	Width int
	Text  string
	Style styletag.Style
}

type char struct {
	text  string
	style styletag.Style
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into the bounds described by rowCount and rowLen.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= rowLen(Row)
func ClampPos(p Pos, rowCount int, rowLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}
	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if rowLen != nil {
		maxCol = rowLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, maxCol)}
}
