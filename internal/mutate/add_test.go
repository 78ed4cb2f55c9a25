package mutate

import (
	"testing"

	"sift/internal/model"
)

func twoBoxTree(seeds ...model.Card) model.Box {
	return model.Box{
		ID: "box-root", Name: "Workspace",
		Cards: seeds,
		Children: []model.Box{
			{ID: "box-a", Name: "A"},
			{ID: "box-b", Name: "B"},
		},
	}
}

func TestAddCard(t *testing.T) {
	root := twoBoxTree()

	got, card, changed := AddCard(root, model.Path{}, "  buy milk  ", LayoutDesk)
	if !changed {
		t.Fatalf("expected changed")
	}
	if card.Text != "buy milk" {
		t.Fatalf("text not trimmed: %q", card.Text)
	}
	if len(got.Cards) != 1 || got.Cards[0].ID != card.ID {
		t.Fatalf("card not appended: %+v", got.Cards)
	}
	// Spawn lands inside the clamped spawn region.
	if card.PX < SpawnMinX || card.PX > SpawnMaxX || card.PY < SpawnMinY || card.PY > SpawnMaxY {
		t.Fatalf("spawn out of bounds: (%v,%v)", card.PX, card.PY)
	}
	// Input tree untouched.
	if len(root.Cards) != 0 {
		t.Fatalf("input tree mutated")
	}
}

func TestAddCardEmptyTextNoop(t *testing.T) {
	root := twoBoxTree(model.Card{ID: "card-1", Text: "x"})
	got, _, changed := AddCard(root, model.Path{}, "   ", LayoutDesk)
	if changed {
		t.Fatalf("expected no-op")
	}
	if len(got.Cards) != 1 {
		t.Fatalf("tree changed: %+v", got.Cards)
	}
}

func TestAddCardInvalidPathNoop(t *testing.T) {
	root := twoBoxTree()
	got, _, changed := AddCard(root, model.Path{7}, "hello", LayoutDesk)
	if changed || got.CountCards() != 0 {
		t.Fatalf("invalid path should no-op")
	}
}

func TestAddCardIntoChild(t *testing.T) {
	root := twoBoxTree()
	got, card, changed := AddCard(root, model.Path{1}, "filed", LayoutDesk)
	if !changed {
		t.Fatalf("expected changed")
	}
	b := model.Resolve(got, model.Path{1})
	if len(b.Cards) != 1 || b.Cards[0].ID != card.ID {
		t.Fatalf("card not in child B: %+v", b.Cards)
	}
	if len(got.Cards) != 0 {
		t.Fatalf("card leaked into root")
	}
}

func TestAddCardStackInsertsFront(t *testing.T) {
	root := twoBoxTree(model.Card{ID: "card-old", Text: "old"})
	got, card, changed := AddCard(root, model.Path{}, "new", LayoutStack)
	if !changed {
		t.Fatalf("expected changed")
	}
	if got.Cards[0].ID != card.ID || got.Cards[1].ID != "card-old" {
		t.Fatalf("stack add should insert at index 0: %+v", got.Cards)
	}
}

func TestAddCardSpawnJitterStaysInBounds(t *testing.T) {
	root := twoBoxTree()
	for i := 0; i < 200; i++ {
		_, card, changed := AddCard(root, model.Path{}, "c", LayoutDesk)
		if !changed {
			t.Fatalf("expected changed")
		}
		if card.PX < SpawnMinX || card.PX > SpawnMaxX {
			t.Fatalf("px out of bounds: %v", card.PX)
		}
		if card.PY < SpawnMinY || card.PY > SpawnMaxY {
			t.Fatalf("py out of bounds: %v", card.PY)
		}
	}
}
