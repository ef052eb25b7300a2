// Package breakout implements a Breakout-style brick breaker: a paddle, a
// bouncing ball and a grid of blocks that take three hits each.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Board layout for the single built-in level.
const (
	BlockColumns = 6
	BlockRows    = 6
	BlockPadding = 5.0
	BoardTop     = 50.0
)

// LayoutBlocks builds the block grid centered horizontally on a screen of
// the given width, in row-major order.
func LayoutBlocks(screenW float64) []*Block {
	pitch := BlockSize.Add(core.V(BlockPadding, BlockPadding))
	start := core.V(
		(screenW-pitch.X*BlockColumns)*0.5,
		BoardTop,
	)

	blocks := make([]*Block, 0, BlockColumns*BlockRows)
	for i := range BlockColumns * BlockRows {
		offset := core.V(
			float64(i%BlockColumns)*pitch.X,
			float64(i/BlockColumns)*pitch.Y,
		)
		blocks = append(blocks, NewBlock(start.Add(offset)))
	}
	return blocks
}
