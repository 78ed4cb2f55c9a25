package mutate

import (
	"testing"

	"sift/internal/gesture"
	"sift/internal/model"
)

// The classic swipe flow: a root box with children "A" and "B" and two seed
// cards; the front card is swiped right past the 120-point threshold and
// lands in "B".
func TestSwipeRightFilesIntoB(t *testing.T) {
	root := twoBoxTree(
		model.Card{ID: "card-front", Text: "front", PX: 0.5, PY: 0.4},
		model.Card{ID: "card-back", Text: "back", PX: 0.4, PY: 0.3},
	)

	c := gesture.Classifier{Kind: gesture.PolicyTwoWay}
	d := c.Classify(150, 0)
	if d.Outcome != gesture.OutcomeFile || d.Child != 1 {
		t.Fatalf("swipe (150,0): %+v", d)
	}

	got, changed := MoveCardToChild(root, model.Path{}, "card-front", d.Child)
	if !changed {
		t.Fatalf("expected move")
	}
	if len(got.Cards) != 1 || got.Cards[0].ID != "card-back" {
		t.Fatalf("root cards after swipe: %+v", got.Cards)
	}
	b := model.Resolve(got, model.Path{1})
	if b.Name != "B" || len(b.Cards) != 1 || b.Cards[0].ID != "card-front" {
		t.Fatalf("card not appended to B: %+v", b.Cards)
	}
	if got.CountCards() != 2 {
		t.Fatalf("card count changed")
	}
}

// A delayed fling completion racing a reset must no-op rather than act on a
// remembered index.
func TestDelayedMoveAfterResetNoop(t *testing.T) {
	root := twoBoxTree(model.Card{ID: "card-1", Text: "one"})

	// The gesture committed, but before the animation delay elapsed the
	// tree was reset; the card id no longer exists.
	root = Reset(2)
	got, changed := MoveCardToChild(root, model.Path{}, "card-1", 1)
	if changed {
		t.Fatalf("delayed move after reset should no-op")
	}
	if !model.SameShape(got, model.DefaultTree(2)) {
		t.Fatalf("tree changed by stale move")
	}
}

func TestResetRestoresDefault(t *testing.T) {
	root := twoBoxTree(model.Card{ID: "card-1", Text: "one"})
	root, _, _ = AddCard(root, model.Path{0}, "extra", LayoutDesk)
	root, _ = MoveCardToChild(root, model.Path{}, "card-1", 1)

	got := Reset(2)
	if !model.SameShape(got, model.DefaultTree(2)) {
		t.Fatalf("reset tree differs from default")
	}
	if got.CountCards() != 3 || len(got.Children) != 2 {
		t.Fatalf("unexpected default shape: %d cards, %d children", got.CountCards(), len(got.Children))
	}
}
