package model

// Card is a unit of text content living on a box's desk.
//
// PX/PY are normalized desk coordinates in [0,1]; in the stack layout variant
// they are carried but unused (list order is the only spatial concept there).
type Card struct {
	ID   string  `json:"id"`
	Text string  `json:"text"`
	PX   float64 `json:"px"`
	PY   float64 `json:"py"`
}

// Box is a named container owning an ordered list of cards and a fixed-size
// list of child boxes. A box exclusively owns its cards and children; the
// whole structure is a strict rooted tree with no back references.
type Box struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cards    []Card `json:"cards"`
	Children []Box  `json:"children"`
}

// FindCard returns the index of the card with the given id, or -1.
func (b Box) FindCard(cardID string) int {
	for i, c := range b.Cards {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// CountCards returns the total number of cards in the subtree rooted at b.
func (b Box) CountCards() int {
	n := len(b.Cards)
	for _, ch := range b.Children {
		n += ch.CountCards()
	}
	return n
}

// WalkBoxes visits every box in the subtree rooted at b, depth-first,
// passing the path of each box relative to b.
func (b Box) WalkBoxes(fn func(p Path, box Box)) {
	b.walk(nil, fn)
}

func (b Box) walk(p Path, fn func(p Path, box Box)) {
	fn(p, b)
	for i, ch := range b.Children {
		child := append(append(Path{}, p...), i)
		ch.walk(child, fn)
	}
}
