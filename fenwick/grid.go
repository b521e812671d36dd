package fenwick

import (
	"fmt"

	"github.com/npillmayer/monoidal"
)

// Grid is a two-dimensional array of group elements with support for
// efficient sums over rectangles. Create grids with NewGrid or GridFromRows.
//
// Row and column indices are independent Fenwick indices; cell (i, j) of the
// accumulator holds the sum of the block of rows (i-(i&-i), i] times the
// columns (j-(j&-j), j], 1-indexed.
type Grid[T any] struct {
	group      monoidal.Group[T]
	rows, cols int
	tree       []T // (rows+1) x (cols+1), row-major
}

// NewGrid creates a grid of rows x cols elements, all of them Zero().
func NewGrid[T any](g monoidal.Group[T], rows, cols int) (*Grid[T], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: group is required", monoidal.ErrInvalidConfig)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative grid size %d x %d", monoidal.ErrInvalidConfig, rows, cols)
	}
	grid := &Grid[T]{
		group: g,
		rows:  rows,
		cols:  cols,
		tree:  make([]T, (rows+1)*(cols+1)),
	}
	zero := g.Zero()
	for i := range grid.tree {
		grid.tree[i] = zero
	}
	tracer().Debugf("fenwick: created grid of size %d x %d", rows, cols)
	return grid, nil
}

// GridFromRows creates a grid holding the given rows. All rows have to be of
// equal length.
func GridFromRows[T any](g monoidal.Group[T], rows [][]T) (*Grid[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				monoidal.ErrInvalidConfig, r, len(row), cols)
		}
	}
	grid, err := NewGrid(g, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, v := range row {
			grid.add(r, c, v)
		}
	}
	return grid, nil
}

// Rows returns the number of rows of the grid.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid.
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Add adds delta to the element at (row, col).
func (g *Grid[T]) Add(row, col int, delta T) error {
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	g.add(row, col, delta)
	return nil
}

func (g *Grid[T]) add(row, col int, delta T) {
	w := g.cols + 1
	for i := row + 1; i <= g.rows; i += i & -i {
		for j := col + 1; j <= g.cols; j += j & -j {
			g.tree[i*w+j] = g.group.Add(g.tree[i*w+j], delta)
		}
	}
}

// Sum returns the sum of all elements with a row index less than row and a
// column index less than col.
func (g *Grid[T]) Sum(row, col int) (T, error) {
	if row < 0 || row > g.rows || col < 0 || col > g.cols {
		var zero T
		return zero, fmt.Errorf("%w: prefix %d x %d in grid of size %d x %d",
			monoidal.ErrInvalidRange, row, col, g.rows, g.cols)
	}
	return g.prefix(row, col), nil
}

func (g *Grid[T]) prefix(row, col int) T {
	w := g.cols + 1
	sum := g.group.Zero()
	for i := row; i > 0; i -= i & -i {
		for j := col; j > 0; j -= j & -j {
			sum = g.group.Add(sum, g.tree[i*w+j])
		}
	}
	return sum
}

// SumRect returns the sum of the elements in rows [r0, r1) and
// columns [c0, c1). The sum of an empty rectangle is Zero().
func (g *Grid[T]) SumRect(r0, r1, c0, c1 int) (T, error) {
	if r0 < 0 || r1 > g.rows || r0 > r1 || c0 < 0 || c1 > g.cols || c0 > c1 {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d) x [%d, %d) in grid of size %d x %d",
			monoidal.ErrInvalidRange, r0, r1, c0, c1, g.rows, g.cols)
	}
	return g.rect(r0, r1, c0, c1), nil
}

// rect uses inclusion–exclusion of four corner prefix sums.
func (g *Grid[T]) rect(r0, r1, c0, c1 int) T {
	sum := g.group.Sub(g.prefix(r1, c1), g.prefix(r0, c1))
	sum = g.group.Sub(sum, g.prefix(r1, c0))
	return g.group.Add(sum, g.prefix(r0, c0))
}

// Get returns the element at (row, col).
func (g *Grid[T]) Get(row, col int) (T, error) {
	if err := g.checkCell(row, col); err != nil {
		var zero T
		return zero, err
	}
	return g.rect(row, row+1, col, col+1), nil
}

// Set sets the element at (row, col) to value, by adding the difference to
// the current element.
func (g *Grid[T]) Set(row, col int, value T) error {
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	g.add(row, col, g.group.Sub(value, g.rect(row, row+1, col, col+1)))
	return nil
}

func (g *Grid[T]) checkCell(row, col int) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d in grid of %d rows", monoidal.ErrIndexOutOfBounds, row, g.rows)
	}
	if col < 0 || col >= g.cols {
		return fmt.Errorf("%w: column %d in grid of %d columns", monoidal.ErrIndexOutOfBounds, col, g.cols)
	}
	return nil
}
