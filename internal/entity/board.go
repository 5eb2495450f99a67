package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

const (
	MarkA = "O"
	MarkB = "X"
)

var (
	ErrInvalidBoardSize = errors.New("board must have exactly 9 cells")
	ErrInvalidMark      = errors.New("invalid cell mark")
)

// Player - one of the two sides. PlayerA is the automated, maximizing side.
type Player uint8

const (
	PlayerA Player = iota + 1
	PlayerB
)

func (that Player) Opponent() Player {
	if that == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Mark - wire representation of the player.
func (that Player) Mark() string {
	switch that {
	case PlayerA:
		return MarkA
	case PlayerB:
		return MarkB
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	switch that {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "none"
	}
}

// PlayerByMark - returns the player for a wire mark.
func PlayerByMark(mark string) (Player, error) {
	switch mark {
	case MarkA:
		return PlayerA, nil
	case MarkB:
		return PlayerB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}
}

// Cell - Empty or occupied by a player. The zero value is Empty.
type Cell struct {
	owner Player
}

var Empty = Cell{}

func Occupied(player Player) Cell {
	return Cell{owner: player}
}

func (that Cell) IsEmpty() bool {
	return that.owner == 0
}

// Owner - returns the occupying player, false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	return that.owner, that.owner != 0
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.owner.Mark()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = Empty
		return nil
	}

	player, err := PlayerByMark(string(text))
	if err != nil {
		return err
	}

	*that = Occupied(player)

	return nil
}

// Board - 9 cells in row-major order, row = index/3, column = index%3.
type Board [BoardSize]Cell

func (that *Board) At(cell int) Cell {
	mustBeInRange(cell)
	return that[cell]
}

func (that *Board) Place(cell int, player Player) {
	mustBeInRange(cell)
	that[cell] = Occupied(player)
}

func (that *Board) Clear(cell int) {
	mustBeInRange(cell)
	that[cell] = Empty
}

// EmptyCells - indexes of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell.IsEmpty() {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: got %d", ErrInvalidBoardSize, len(cells))
	}

	copy(that[:], cells)

	return nil
}

// IsValidCell - reports whether the index addresses a board cell.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func mustBeInRange(cell int) {
	if !IsValidCell(cell) {
		panic(fmt.Sprintf("cell index %d out of range [0, %d)", cell, BoardSize))
	}
}
