package model

import (
	"strconv"
	"strings"
)

// Path locates a box by descending through Children from the root.
// The empty path is the root. Paths are transient navigation state,
// never stored as object identity.
type Path []int

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	return append(Path{}, p...)
}

// Child returns p extended by one child index.
func (p Path) Child(i int) Path {
	return append(p.Clone(), i)
}

// Parent returns p without its last index. Parent of the root is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1].Clone()
}

// Equal reports whether p and q are the same path.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, i := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

// ParsePath parses "/", "/0/1" or "0/1" into a Path.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return Path{}, nil
	}
	parts := strings.Split(s, "/")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil, &PathSyntaxError{Raw: s}
		}
		p = append(p, n)
	}
	return p, nil
}

// PathSyntaxError reports an unparseable path string.
type PathSyntaxError struct {
	Raw string
}

func (e *PathSyntaxError) Error() string {
	return "invalid path: " + strconv.Quote(e.Raw)
}

// Resolve returns the box at path, descending through Children from root.
// An out-of-bounds index means the caller holds a path that was never
// produced by navigation; Resolve returns root in that case, matching the
// "fail to root" read contract.
func Resolve(root Box, path Path) Box {
	cur := root
	for _, i := range path {
		if i < 0 || i >= len(cur.Children) {
			return root
		}
		cur = cur.Children[i]
	}
	return cur
}

// Valid reports whether path addresses an existing box under root.
func Valid(root Box, path Path) bool {
	cur := root
	for _, i := range path {
		if i < 0 || i >= len(cur.Children) {
			return false
		}
		cur = cur.Children[i]
	}
	return true
}

// Replace returns a tree identical to root except that the box at path is
// structurally replaced by nb. Only the ancestors along path are rebuilt;
// sibling subtrees are shared with the input tree. An out-of-bounds index
// returns root unchanged (writes are never redirected to a wrong node).
func Replace(root Box, path Path, nb Box) Box {
	if len(path) == 0 {
		return nb
	}
	i := path[0]
	if i < 0 || i >= len(root.Children) {
		return root
	}
	children := make([]Box, len(root.Children))
	copy(children, root.Children)
	children[i] = Replace(children[i], path[1:], nb)
	root.Children = children
	return root
}
