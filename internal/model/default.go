package model

// Child box names by fixed child index. Fan-out 2 uses A/B, fan-out 4 A..D.
var childNames = []string{"A", "B", "C", "D"}

// DefaultTree returns the hard-coded starting tree: a root "Workspace" box
// with three seed cards and fanOut named leaf children. fanOut must be 0, 2
// or 4 (the classifier output ranges); anything else is treated as 0.
func DefaultTree(fanOut int) Box {
	if fanOut != 2 && fanOut != 4 {
		fanOut = 0
	}
	root := Box{
		ID:   NewBoxID(),
		Name: "Workspace",
		Cards: []Card{
			{ID: NewCardID(), Text: "Welcome to sift", PX: 0.30, PY: 0.28},
			{ID: NewCardID(), Text: "Drag a card onto a dock to file it", PX: 0.62, PY: 0.42},
			{ID: NewCardID(), Text: "Type below to add more", PX: 0.44, PY: 0.60},
		},
	}
	for i := 0; i < fanOut; i++ {
		root.Children = append(root.Children, Box{
			ID:   NewBoxID(),
			Name: childNames[i],
		})
	}
	return root
}

// SameShape reports whether a and b have the same structure: names, card
// texts and order, and recursively the same children. Identifiers and card
// positions are ignored (ids are freshly minted on every reset).
func SameShape(a, b Box) bool {
	if a.Name != b.Name || len(a.Cards) != len(b.Cards) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Cards {
		if a.Cards[i].Text != b.Cards[i].Text {
			return false
		}
	}
	for i := range a.Children {
		if !SameShape(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
