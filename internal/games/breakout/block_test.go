package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBlockHits(t *testing.T) {
	b := NewBlock(core.V(0, 0))

	expected := []struct {
		destroyed bool
		tier      Tier
	}{
		{false, TierB},
		{false, TierC},
		{true, TierC},
	}

	if b.Tier() != TierA {
		t.Errorf("Tier() = %v, expected %v", b.Tier(), TierA)
	}

	for i, e := range expected {
		if got := b.ApplyHit(); got != e.destroyed {
			t.Errorf("hit %d: ApplyHit() = %v, expected %v", i+1, got, e.destroyed)
		}
		if b.Tier() != e.tier {
			t.Errorf("hit %d: Tier() = %v, expected %v", i+1, b.Tier(), e.tier)
		}
	}

	if !b.Destroyed() {
		t.Error("Destroyed() = false, expected true after three hits")
	}
	if b.ApplyHit() {
		t.Error("ApplyHit() on a destroyed block = true, expected false")
	}
}

func TestTierColor(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected core.Color
	}{
		{TierA, core.ColorYellow},
		{TierB, core.ColorOrange},
		{TierC, core.ColorRed},
	}

	for _, tt := range tests {
		if got := tt.tier.Color(); got != tt.expected {
			t.Errorf("Tier(%d).Color() = %v, expected %v", tt.tier, got, tt.expected)
		}
	}
}

func TestLayoutBlocks(t *testing.T) {
	blocks := LayoutBlocks(800)

	if len(blocks) != BlockColumns*BlockRows {
		t.Fatalf("len(blocks) = %d, expected %d", len(blocks), BlockColumns*BlockRows)
	}

	first, second, last := blocks[0], blocks[1], blocks[len(blocks)-1]
	if first.Rect.Pos() != core.V(85, 50) {
		t.Errorf("first block at %+v, expected (85, 50)", first.Rect.Pos())
	}
	if second.Rect.Pos() != core.V(190, 50) {
		t.Errorf("second block at %+v, expected (190, 50)", second.Rect.Pos())
	}
	if last.Rect.Pos() != core.V(610, 225) {
		t.Errorf("last block at %+v, expected (610, 225)", last.Rect.Pos())
	}

	for i, b := range blocks {
		if b.Hits != BlockHits {
			t.Errorf("block %d: Hits = %d, expected %d", i, b.Hits, BlockHits)
		}
		for _, other := range blocks[i+1:] {
			if b.Rect.Intersects(other.Rect) {
				t.Fatalf("blocks overlap: %+v and %+v", b.Rect, other.Rect)
			}
		}
	}
}
