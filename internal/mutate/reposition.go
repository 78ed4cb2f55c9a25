package mutate

import "sift/internal/model"

// RepositionCard overwrites the named card's position, clamped to the
// visible desk region. Applies instantaneously (no animation) so a live drag
// never lags. A stale card id or path is a silent no-op.
func RepositionCard(root model.Box, boxPath model.Path, cardID string, px, py float64) (model.Box, bool) {
	if !model.Valid(root, boxPath) {
		return root, false
	}
	box := model.Resolve(root, boxPath)
	i := box.FindCard(cardID)
	if i < 0 {
		return root, false
	}
	px, py = ClampToDesk(px, py)

	cards := make([]model.Card, len(box.Cards))
	copy(cards, box.Cards)
	cards[i].PX, cards[i].PY = px, py
	box.Cards = cards
	return model.Replace(root, boxPath, box), true
}

// FlingCard writes an unclamped position for the named card. This is the
// first phase of a committed fling: the presentation layer parks the card at
// an off-screen target for the suck-in animation, then performs the actual
// MoveCard after the animation delay. Stale ids are a silent no-op.
func FlingCard(root model.Box, boxPath model.Path, cardID string, px, py float64) (model.Box, bool) {
	if !model.Valid(root, boxPath) {
		return root, false
	}
	box := model.Resolve(root, boxPath)
	i := box.FindCard(cardID)
	if i < 0 {
		return root, false
	}
	cards := make([]model.Card, len(box.Cards))
	copy(cards, box.Cards)
	cards[i].PX, cards[i].PY = px, py
	box.Cards = cards
	return model.Replace(root, boxPath, box), true
}
