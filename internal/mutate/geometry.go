package mutate

import "math/rand"

// Desk geometry in normalized coordinates.
//
// New cards spawn near the desk center with a little jitter so stacked adds
// don't land exactly on top of each other. Repositioning clamps to the
// visible desk: a margin from all edges plus a reserved bottom strip for the
// input bar.
const (
	SpawnX       = 0.50
	SpawnY       = 0.35
	SpawnJitterX = 0.14
	SpawnJitterY = 0.10

	SpawnMinX = 0.08
	SpawnMaxX = 0.92
	SpawnMinY = 0.08
	SpawnMaxY = 0.80

	DeskMargin      = 0.04
	DeskBottomStrip = 0.14

	// Canonical re-entry point for a card arriving in a new box.
	ReentryX = 0.50
	ReentryY = 0.35
)

// Layout selects how cards occupy a box.
type Layout int

const (
	// LayoutDesk places cards freely on a 2D desk by normalized position.
	LayoutDesk Layout = iota
	// LayoutStack keeps cards as an ordered list; index 0 is on top and
	// positions are carried but unused.
	LayoutStack
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// spawnPos returns a jittered spawn position for a new card.
func spawnPos() (float64, float64) {
	px := SpawnX + (rand.Float64()*2-1)*SpawnJitterX
	py := SpawnY + (rand.Float64()*2-1)*SpawnJitterY
	return clamp(px, SpawnMinX, SpawnMaxX), clamp(py, SpawnMinY, SpawnMaxY)
}

// ClampToDesk clamps a drag position to the visible desk region.
func ClampToDesk(px, py float64) (float64, float64) {
	return clamp(px, DeskMargin, 1-DeskMargin),
		clamp(py, DeskMargin, 1-DeskBottomStrip-DeskMargin)
}
