// Package gesture converts raw 2D drag displacements into discrete routing
// decisions: which child box a card should be filed into, whether it should
// stay put, or whether the gesture is cancelled.
//
// Displacements are measured in desk display units (points), y growing
// downward, the same space card positions are rendered in. The presentation
// layer converts its own coordinates (terminal cells, pixels) into points
// before classifying.
package gesture

import (
	"errors"
	"math"
	"strings"
)

type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	default:
		return "none"
	}
}

type Outcome int

const (
	// OutcomeCancel means no committed direction: the card springs back
	// (or the drag settles into a local reposition).
	OutcomeCancel Outcome = iota
	// OutcomeKeep (two-way policy only) returns the card to the same box,
	// reordered to the end of its card list.
	OutcomeKeep
	// OutcomeFile commits the card to the child box at Decision.Child.
	OutcomeFile
)

type Decision struct {
	Outcome Outcome
	Dir     Direction
	Child   int // destination child index, valid when Outcome == OutcomeFile
}

func cancel() Decision { return Decision{Outcome: OutcomeCancel, Dir: DirNone} }

// PolicyKind selects one classification strategy. The two four-way policies
// are materially different rules (axis-dominant never dead-zones a committed
// drag; diagonal-quadrant requires both axes past threshold) and are kept as
// distinct kinds rather than reconciled.
type PolicyKind int

const (
	PolicyTwoWay PolicyKind = iota
	PolicyAxisDominant
	PolicyDiagonalQuadrant
	PolicyFlickGated
)

func (k PolicyKind) String() string {
	switch k {
	case PolicyTwoWay:
		return "two-way"
	case PolicyAxisDominant:
		return "axis"
	case PolicyDiagonalQuadrant:
		return "diagonal"
	case PolicyFlickGated:
		return "flick"
	default:
		return "unknown"
	}
}

var ErrUnknownPolicy = errors.New("unknown gesture policy")

// ParsePolicy parses a CLI/env policy name.
func ParsePolicy(s string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two-way", "twoway", "swipe":
		return PolicyTwoWay, nil
	case "axis", "axis-dominant", "four-way":
		return PolicyAxisDominant, nil
	case "diagonal", "quadrant":
		return PolicyDiagonalQuadrant, nil
	case "flick":
		return PolicyFlickGated, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// FanOut returns the number of child boxes the policy routes into.
func (k PolicyKind) FanOut() int {
	if k == PolicyTwoWay {
		return 2
	}
	return 4
}

const (
	// DefaultThreshold is the commit distance in points shared by all policies.
	DefaultThreshold = 120.0
	// DefaultFlickBoost is the minimum divergence between actual and
	// velocity-predicted displacement for a flick-gated commit.
	DefaultFlickBoost = 260.0
)

// Classifier is a tagged strategy over a drag displacement.
// The zero value is a two-way classifier with default thresholds.
type Classifier struct {
	Kind       PolicyKind
	Threshold  float64 // 0 means DefaultThreshold
	FlickBoost float64 // 0 means DefaultFlickBoost
}

func (c Classifier) threshold() float64 {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return DefaultThreshold
}

func (c Classifier) boost() float64 {
	if c.FlickBoost > 0 {
		return c.FlickBoost
	}
	return DefaultFlickBoost
}

// Classify maps a release displacement (end minus start) to a decision.
// For PolicyFlickGated callers should use ClassifyFlick; without velocity
// data Classify falls back to the axis-dominant rule.
func (c Classifier) Classify(dx, dy float64) Decision {
	switch c.Kind {
	case PolicyTwoWay:
		return c.classifyTwoWay(dx, dy)
	case PolicyDiagonalQuadrant:
		return c.classifyDiagonal(dx, dy)
	default:
		return c.classifyAxisDominant(dx, dy)
	}
}

// ClassifyFlick additionally takes the predicted end displacement
// (displacement extrapolated forward using exit velocity). Under
// PolicyFlickGated a direction commits only when the gesture is a genuine
// flick: the predicted end must diverge from the actual release point by at
// least the boost threshold. A slow long drag classifies as cancel and
// settles into a reposition. Other policies ignore the prediction.
func (c Classifier) ClassifyFlick(dx, dy, pdx, pdy float64) Decision {
	if c.Kind != PolicyFlickGated {
		return c.Classify(dx, dy)
	}
	if math.Hypot(pdx-dx, pdy-dy) < c.boost() {
		return cancel()
	}
	return c.classifyAxisDominant(pdx, pdy)
}

// classifyTwoWay thresholds the horizontal axis only; an upward drag past
// threshold keeps the card in the same box (reordered to the end).
func (c Classifier) classifyTwoWay(dx, dy float64) Decision {
	t := c.threshold()
	switch {
	case dx > t:
		return Decision{Outcome: OutcomeFile, Dir: DirRight, Child: 1}
	case dx < -t:
		return Decision{Outcome: OutcomeFile, Dir: DirLeft, Child: 0}
	case dy < -t:
		return Decision{Outcome: OutcomeKeep, Dir: DirUp}
	default:
		return cancel()
	}
}

// classifyAxisDominant thresholds max(|dx|,|dy|) and picks the dominant
// axis; on a tie, horizontal wins. Directions map to fixed child indices
// left/right/up/down -> 0/1/2/3.
func (c Classifier) classifyAxisDominant(dx, dy float64) Decision {
	t := c.threshold()
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax < t && ay < t {
		return cancel()
	}
	if ax >= ay {
		if dx > 0 {
			return Decision{Outcome: OutcomeFile, Dir: DirRight, Child: 1}
		}
		return Decision{Outcome: OutcomeFile, Dir: DirLeft, Child: 0}
	}
	if dy < 0 {
		return Decision{Outcome: OutcomeFile, Dir: DirUp, Child: 2}
	}
	return Decision{Outcome: OutcomeFile, Dir: DirDown, Child: 3}
}

// classifyDiagonal commits only when both axes pass threshold simultaneously
// and routes into one of four diagonal quadrants, UL/UR/DL/DR -> 0/1/2/3.
func (c Classifier) classifyDiagonal(dx, dy float64) Decision {
	t := c.threshold()
	if math.Abs(dx) < t || math.Abs(dy) < t {
		return cancel()
	}
	up := dy < 0
	left := dx < 0
	switch {
	case up && left:
		return Decision{Outcome: OutcomeFile, Dir: DirUpLeft, Child: 0}
	case up && !left:
		return Decision{Outcome: OutcomeFile, Dir: DirUpRight, Child: 1}
	case !up && left:
		return Decision{Outcome: OutcomeFile, Dir: DirDownLeft, Child: 2}
	default:
		return Decision{Outcome: OutcomeFile, Dir: DirDownRight, Child: 3}
	}
}
