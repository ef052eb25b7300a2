package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame   uint64
	PaddleX float64
	Score   int
	Lives   int

	// Each ball is 4 floats: X, Y, VX, VY
	BallCount int
	BallData  []float64

	// Each block is 3 values: X, Y, Hits
	BlockCount int
	BlockData  []float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	ballData := make([]float64, 0, len(s.Balls)*4)
	for _, b := range s.Balls {
		ballData = append(ballData, b.Rect.X, b.Rect.Y, b.Vel.X, b.Vel.Y)
	}

	blockData := make([]float64, 0, len(s.Blocks)*3)
	for _, b := range s.Blocks {
		blockData = append(blockData, b.Rect.X, b.Rect.Y, float64(b.Hits))
	}

	return Snapshot{
		Frame:      g.frames,
		PaddleX:    s.Paddle.Rect.X,
		Score:      s.Score,
		Lives:      s.Lives,
		BallCount:  len(s.Balls),
		BallData:   ballData,
		BlockCount: len(s.Blocks),
		BlockData:  blockData,
		RNGState:   g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
