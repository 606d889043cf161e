package lightsout

import (
	"math/rand"
	"strings"
)

// Source is the randomness a board generator draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// Board is a grid of cells, true meaning lit. Rows are indexed first.
type Board [][]bool

// New creates a board where each cell is lit independently with
// probability conf.ChanceLightStartsOn. The result may not be solvable.
func New(conf Config, src Source) (Board, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	board := blank(conf.Rows, conf.Cols)
	for y := range board {
		for x := range board[y] {
			board[y][x] = src.Float64() < conf.ChanceLightStartsOn
		}
	}

	return board, nil
}

// NewSolvable starts from a cleared board and applies flips random flips to it,
// so replaying the same flips always solves it. ChanceLightStartsOn is ignored.
func NewSolvable(conf Config, flips int, src Source) (Board, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	board := blank(conf.Rows, conf.Cols)
	for range flips {
		board.flipAround(src.Intn(conf.Rows), src.Intn(conf.Cols))
	}

	return board, nil
}

// NewRand returns a Source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // game boards, not secrets
}

func blank(rows, cols int) Board {
	board := make(Board, rows)
	for y := range board {
		board[y] = make([]bool, cols)
	}

	return board
}

func (that Board) Rows() int {
	return len(that)
}

func (that Board) Cols() int {
	if len(that) == 0 {
		return 0
	}

	return len(that[0])
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Rows() && col >= 0 && col < that.Cols()
}

// Flip returns a copy of the board with the cell at (row, col) and its four
// orthogonal neighbours toggled. Coordinates outside the board are skipped.
func (that Board) Flip(row, col int) Board {
	next := that.Clone()
	next.flipAround(row, col)

	return next
}

func (that Board) flipAround(row, col int) {
	that.toggle(row, col)
	that.toggle(row-1, col)
	that.toggle(row+1, col)
	that.toggle(row, col-1)
	that.toggle(row, col+1)
}

func (that Board) toggle(row, col int) {
	if that.InBounds(row, col) {
		that[row][col] = !that[row][col]
	}
}

// IsWon reports whether every cell is unlit.
func (that Board) IsWon() bool {
	return that.LitCount() == 0
}

func (that Board) LitCount() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell {
				count++
			}
		}
	}

	return count
}

func (that Board) Clone() Board {
	next := make(Board, len(that))
	for y, row := range that {
		next[y] = append([]bool(nil), row...)
	}

	return next
}

func (that Board) Equal(other Board) bool {
	if len(that) != len(other) {
		return false
	}

	for y := range that {
		if len(that[y]) != len(other[y]) {
			return false
		}
		for x := range that[y] {
			if that[y][x] != other[y][x] {
				return false
			}
		}
	}

	return true
}

// String renders the board one row per line, "O" for lit and "." for unlit.
func (that Board) String() string {
	var sb strings.Builder
	for y, row := range that {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, cell := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if cell {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
