package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BlockHits is how many hits a fresh block absorbs.
const BlockHits = 3

// BlockSize is the width and height of every block.
var BlockSize = core.V(100, 30)

// Tier is the visual state of a block, derived from its remaining hits.
type Tier int

const (
	TierA Tier = iota // Untouched
	TierB             // Hit once
	TierC             // One hit left
)

// Color returns the draw color for the tier.
func (t Tier) Color() core.Color {
	switch t {
	case TierA:
		return core.ColorYellow
	case TierB:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// Block is a static destructible rectangle.
type Block struct {
	Rect core.Rect
	Hits int // Remaining hits
}

// NewBlock creates a full-strength block at pos.
func NewBlock(pos core.Vec2) *Block {
	return &Block{
		Rect: core.RectAt(pos, BlockSize),
		Hits: BlockHits,
	}
}

// ApplyHit takes one hit off the block and reports whether that hit
// destroyed it. Hitting an already destroyed block reports false.
func (b *Block) ApplyHit() bool {
	wasAlive := !b.Destroyed()
	b.Hits--
	return wasAlive && b.Destroyed()
}

// Destroyed reports whether the block has no hits left.
func (b *Block) Destroyed() bool {
	return b.Hits <= 0
}

// Tier maps remaining hits to a visual tier.
func (b *Block) Tier() Tier {
	switch b.Hits {
	case 3:
		return TierA
	case 2:
		return TierB
	default:
		return TierC
	}
}
