package board

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

type Cell string

const (
	Empty Cell = ""
	MarkX Cell = "X"
	MarkO Cell = "O"
)

type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Valid reports whether p is one of the two sides.
func (p Player) Valid() bool {
	return p == PlayerX || p == PlayerO
}

// Mark returns the cell value the player places on the board.
func (p Player) Mark() Cell {
	return Cell(p)
}

func (p Player) Opponent() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// lines holds every row, column and both diagonals.
var lines = buildLines()

func buildLines() [][Size]Move {
	result := make([][Size]Move, 0, 2*Size+2)

	for i := 0; i < Size; i++ {
		var row, col [Size]Move
		for j := 0; j < Size; j++ {
			row[j] = Move{Row: i, Col: j}
			col[j] = Move{Row: j, Col: i}
		}
		result = append(result, row, col)
	}

	var diagonal, antiDiagonal [Size]Move
	for i := 0; i < Size; i++ {
		diagonal[i] = Move{Row: i, Col: i}
		antiDiagonal[i] = Move{Row: i, Col: Size - 1 - i}
	}

	return append(result, diagonal, antiDiagonal)
}

// Board is a square grid of cells. The zero value is an empty board.
type Board [Size][Size]Cell

// New returns an empty board.
func New() Board {
	return Board{}
}

func (that *Board) IsEmpty(m Move) (bool, error) {
	if !m.inBounds() {
		return false, fmt.Errorf("%w: %s", apperror.ErrInvalidCoordinate, m)
	}

	return that[m.Row][m.Col] == Empty, nil
}

// Place puts mark on an empty cell. Callers are expected to check IsEmpty first.
func (that *Board) Place(m Move, mark Cell) error {
	if mark != MarkX && mark != MarkO {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	empty, err := that.IsEmpty(m)
	if err != nil {
		return err
	}

	if !empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, m)
	}

	that[m.Row][m.Col] = mark

	return nil
}

// Remove resets a cell to Empty.
func (that *Board) Remove(m Move) error {
	if !m.inBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCoordinate, m)
	}

	that[m.Row][m.Col] = Empty

	return nil
}

// EmptyCells lists the open cells in row-major order.
func (that *Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// HasLine reports whether any row, column or diagonal is filled with mark.
func (that *Board) HasLine(mark Cell) bool {
	if mark == Empty {
		return false
	}

	for _, line := range lines {
		complete := true
		for _, m := range line {
			if that[m.Row][m.Col] != mark {
				complete = false
				break
			}
		}

		if complete {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// Count returns how many cells hold mark.
func (that *Board) Count(mark Cell) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

// SideToMove infers whose turn it is from the mark counts. X always moves first.
func (that *Board) SideToMove() (Player, error) {
	switch that.Count(MarkX) - that.Count(MarkO) {
	case 0:
		return PlayerX, nil
	case 1:
		return PlayerO, nil
	default:
		return "", fmt.Errorf("%w: mark counts are not reachable by alternating play", apperror.ErrInvalidBoard)
	}
}
