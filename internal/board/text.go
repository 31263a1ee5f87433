package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const emptySymbol = '.'

// String renders the board as Size*Size characters in row-major order, '.' for empty cells.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch that[row][col] {
			case MarkX:
				sb.WriteByte('X')
			case MarkO:
				sb.WriteByte('O')
			default:
				sb.WriteByte(emptySymbol)
			}
		}
	}

	return sb.String()
}

// Parse reads the format produced by String. '-', '_' and ' ' are accepted as empty cells too.
func Parse(s string) (Board, error) {
	var b Board

	if len(s) != Size*Size {
		return b, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, Size*Size, len(s))
	}

	for i := 0; i < len(s); i++ {
		row, col := i/Size, i%Size

		switch s[i] {
		case 'X', 'x':
			b[row][col] = MarkX
		case 'O', 'o':
			b[row][col] = MarkO
		case emptySymbol, '-', '_', ' ':
			b[row][col] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q at %d", apperror.ErrInvalidBoard, s[i], i)
		}
	}

	return b, nil
}

// ParsePlayer accepts "X" or "O" in either case.
func ParsePlayer(s string) (Player, error) {
	p := Player(strings.ToUpper(s))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}

	return p, nil
}
