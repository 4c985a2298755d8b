// internal/game/board.go
//
// Board: a fixed square grid of tiles plus the player's cursor.
// The board owns every tile for the lifetime of a round and brokers all
// access to them. Cursor moves that would leave the grid signal a boundary
// instead of failing; the cursor can never leave the board.

package game

// Board is the square grid of tiles and the cursor position.
type Board struct {
	size   int
	tiles  [][]*Tile
	cursor Position
}

// NewBoard builds a size-by-size board, filling every tile's stack with
// depth values drawn from src. The cursor starts at the top-left corner.
func NewBoard(size, depth int, src NumberSource) *Board {
	b := &Board{size: size}
	b.tiles = make([][]*Tile, size)
	for row := range b.tiles {
		b.tiles[row] = make([]*Tile, size)
		for col := range b.tiles[row] {
			t := &Tile{}
			for i := 0; i < depth; i++ {
				t.Push(src.InitialValue())
			}
			b.tiles[row][col] = t
		}
	}
	return b
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// Cursor returns the current cursor position.
func (b *Board) Cursor() Position { return b.cursor }

// InBounds reports whether p addresses a tile on this board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// TileAt returns the tile at p, or nil when p is out of bounds.
func (b *Board) TileAt(p Position) *Tile {
	if !b.InBounds(p) {
		return nil
	}
	return b.tiles[p.Row][p.Col]
}

// DepthAt returns the stack depth at p, zero when p is out of bounds. This
// is the non-mutating advisement query behind the depth command; it never
// touches the selection.
func (b *Board) DepthAt(p Position) int {
	t := b.TileAt(p)
	if t == nil {
		return 0
	}
	return t.Depth()
}

// MoveCursor shifts the cursor one cell. When the move would leave the
// board, the cursor stays put and the second return is false so the caller
// can play a boundary cue.
func (b *Board) MoveCursor(d Direction) (Position, bool) {
	dr, dc := d.delta()
	next := Position{Row: b.cursor.Row + dr, Col: b.cursor.Col + dc}
	if !b.InBounds(next) {
		return b.cursor, false
	}
	b.cursor = next
	return b.cursor, true
}

// IsFullyCleared reports whether every tile's stack is empty. This is the
// win condition.
func (b *Board) IsFullyCleared() bool {
	for _, row := range b.tiles {
		for _, t := range row {
			if !t.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// clearedTiles counts the tiles that have been fully emptied.
func (b *Board) clearedTiles() int {
	n := 0
	for _, row := range b.tiles {
		for _, t := range row {
			if t.IsEmpty() {
				n++
			}
		}
	}
	return n
}
