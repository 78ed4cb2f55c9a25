package mutate

import (
	"strings"

	"sift/internal/model"
)

// AddCard appends a new card with a fresh id to the box at boxPath.
// Whitespace-only text is silently rejected (no card, changed=false), as is
// a path that doesn't address an existing box. Under LayoutStack the card is
// inserted at index 0 ("current") instead of spawned on the desk.
func AddCard(root model.Box, boxPath model.Path, text string, layout Layout) (model.Box, model.Card, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return root, model.Card{}, false
	}
	if !model.Valid(root, boxPath) {
		return root, model.Card{}, false
	}

	card := model.Card{ID: model.NewCardID(), Text: text}
	box := model.Resolve(root, boxPath)
	if layout == LayoutStack {
		cards := make([]model.Card, 0, len(box.Cards)+1)
		cards = append(cards, card)
		cards = append(cards, box.Cards...)
		box.Cards = cards
	} else {
		card.PX, card.PY = spawnPos()
		box.Cards = append(append([]model.Card{}, box.Cards...), card)
	}
	return model.Replace(root, boxPath, box), card, true
}
