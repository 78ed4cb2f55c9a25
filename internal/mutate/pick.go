package mutate

import "sift/internal/model"

// PickToFront reinserts the named card at index 0 of its box without
// changing ownership. Used by the stack layout, where index 0 is "current".
// Already-front cards and stale ids are silent no-ops.
func PickToFront(root model.Box, boxPath model.Path, cardID string) (model.Box, bool) {
	if !model.Valid(root, boxPath) {
		return root, false
	}
	box := model.Resolve(root, boxPath)
	i := box.FindCard(cardID)
	if i < 0 {
		return root, false
	}
	if i == 0 {
		return root, false
	}

	card := box.Cards[i]
	cards := make([]model.Card, 0, len(box.Cards))
	cards = append(cards, card)
	cards = append(cards, box.Cards[:i]...)
	cards = append(cards, box.Cards[i+1:]...)
	box.Cards = cards
	return model.Replace(root, boxPath, box), true
}
