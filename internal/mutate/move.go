package mutate

import "sift/internal/model"

// MoveCard removes the named card from the box at from and appends it to the
// box at to, resetting its position to the canonical re-entry point. This is
// the only operation that changes which box owns a card.
//
// It re-validates everything it touches: a card that was already moved or
// removed (a delayed fling completion racing a reset), or a path that no
// longer resolves, makes the whole operation a silent no-op. There is no
// half-applied state: the remove and the append land in one Replace'd tree.
//
// from == to is allowed and implements the two-way "keep" gesture: the card
// is reordered to the end of the same box (position still reset).
func MoveCard(root model.Box, from model.Path, cardID string, to model.Path) (model.Box, bool) {
	if !model.Valid(root, from) || !model.Valid(root, to) {
		return root, false
	}
	src := model.Resolve(root, from)
	i := src.FindCard(cardID)
	if i < 0 {
		return root, false
	}

	card := src.Cards[i]
	card.PX, card.PY = ReentryX, ReentryY

	cards := make([]model.Card, 0, len(src.Cards)-1)
	cards = append(cards, src.Cards[:i]...)
	cards = append(cards, src.Cards[i+1:]...)
	src.Cards = cards
	root = model.Replace(root, from, src)

	// Removing a card never changes child indices, so to still resolves
	// in the updated tree (including when to descends through from).
	dst := model.Resolve(root, to)
	dst.Cards = append(append([]model.Card{}, dst.Cards...), card)
	return model.Replace(root, to, dst), true
}

// MoveCardToChild files the card into the childIndex-th child of the box at
// from; this is the gesture classifier's output shape. Out-of-range child
// indices are a silent no-op.
func MoveCardToChild(root model.Box, from model.Path, cardID string, childIndex int) (model.Box, bool) {
	src := model.Resolve(root, from)
	if childIndex < 0 || childIndex >= len(src.Children) {
		return root, false
	}
	return MoveCard(root, from, cardID, from.Child(childIndex))
}
