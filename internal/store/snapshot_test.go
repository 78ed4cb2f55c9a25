package store

import (
	"context"
	"testing"

	"sift/internal/model"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	// No state yet: absent, not an error.
	if _, ok, err := s.LoadSnapshot(ctx); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	root := model.DefaultTree(2)
	root.Cards[0].Text = "edited"
	if err := s.SaveSnapshot(ctx, root); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.LoadSnapshot(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Cards[0].Text != "edited" || got.ID != root.ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Children) != 2 || got.Children[1].Name != "B" {
		t.Fatalf("children lost: %+v", got.Children)
	}
}

func TestSnapshotOverwrite(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	a := model.DefaultTree(2)
	b := model.DefaultTree(4)
	if err := s.SaveSnapshot(ctx, a); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := s.SaveSnapshot(ctx, b); err != nil {
		t.Fatalf("save b: %v", err)
	}

	got, ok, err := s.LoadSnapshot(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	// Only the latest snapshot survives under the schema key.
	if len(got.Children) != 4 {
		t.Fatalf("expected latest snapshot, got %d children", len(got.Children))
	}
}

func TestClearSnapshot(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	if err := s.SaveSnapshot(ctx, model.DefaultTree(2)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.ClearSnapshot(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	// After reset, a load behaves exactly as if no prior state existed.
	if _, ok, err := s.LoadSnapshot(ctx); err != nil || ok {
		t.Fatalf("after clear: ok=%v err=%v", ok, err)
	}
}

func TestTUIStateBestEffort(t *testing.T) {
	s := Store{Dir: t.TempDir()}

	st, err := s.LoadTUIState()
	if err != nil || st == nil || len(st.Path) != 0 {
		t.Fatalf("missing state should load empty: %+v, %v", st, err)
	}

	if err := s.SaveTUIState(&TUIState{Path: []int{1, 0}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	st, err = s.LoadTUIState()
	if err != nil || len(st.Path) != 2 || st.Path[0] != 1 {
		t.Fatalf("reload: %+v, %v", st, err)
	}
}
