package common

import (
	"fmt"
	"strings"
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Position is a board coordinate. Row 0 is rank 8 (the black back rank),
// column 0 is file a. A Position may lie outside the board after Add.
type Position struct {
	Row    int
	Column int
}

type Direction struct {
	RowDelta    int
	ColumnDelta int
}

var (
	North     = Direction{-1, 0}
	South     = Direction{1, 0}
	East      = Direction{0, 1}
	West      = Direction{0, -1}
	NorthEast = North.Add(East)
	NorthWest = North.Add(West)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
)

func (d Direction) Add(other Direction) Direction {
	return Direction{d.RowDelta + other.RowDelta, d.ColumnDelta + other.ColumnDelta}
}

func (d Direction) Scale(n int) Direction {
	return Direction{d.RowDelta * n, d.ColumnDelta * n}
}

func MakePosition(file, rank int) Position {
	return Position{Row: Rank8 - rank, Column: file}
}

func (p Position) Add(d Direction) Position {
	return Position{p.Row + d.RowDelta, p.Column + d.ColumnDelta}
}

func (p Position) IsInside() bool {
	return p.Row >= 0 && p.Row < 8 && p.Column >= 0 && p.Column < 8
}

func (p Position) File() int {
	return p.Column
}

func (p Position) Rank() int {
	return Rank8 - p.Row
}

// SquareColour is White for light squares and Black for dark ones.
func (p Position) SquareColour() Side {
	if (p.Row+p.Column)%2 == 0 {
		return White
	}
	return Black
}

// Flip mirrors the position vertically, so a white square maps to the
// matching square from Black's point of view.
func (p Position) Flip() Position {
	return Position{7 - p.Row, p.Column}
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func (p Position) String() string {
	if !p.IsInside() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
	}
	return string(fileNames[p.File()]) + string(rankNames[p.Rank()])
}

func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("parse square %q: %w", s, ErrInvalidSquare)
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return Position{}, fmt.Errorf("parse square %q: %w", s, ErrInvalidSquare)
	}
	return MakePosition(file, rank), nil
}
