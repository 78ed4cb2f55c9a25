package gesture

import "testing"

func TestAxisDominantThreshold(t *testing.T) {
	c := Classifier{Kind: PolicyAxisDominant}

	cases := []struct {
		dx, dy  float64
		outcome Outcome
		dir     Direction
		child   int
	}{
		{119, 0, OutcomeCancel, DirNone, 0},
		{121, 0, OutcomeFile, DirRight, 1},
		{-121, 0, OutcomeFile, DirLeft, 0},
		{0, -121, OutcomeFile, DirUp, 2},
		{0, 121, OutcomeFile, DirDown, 3},
		// |dy| dominates, so a left-ish drag still files up.
		{-121, -130, OutcomeFile, DirUp, 2},
		{-121, 130, OutcomeFile, DirDown, 3},
		// Equal magnitudes: horizontal wins.
		{130, -130, OutcomeFile, DirRight, 1},
		{-130, 130, OutcomeFile, DirLeft, 0},
		{119, -119, OutcomeCancel, DirNone, 0},
	}
	for _, tc := range cases {
		d := c.Classify(tc.dx, tc.dy)
		if d.Outcome != tc.outcome || d.Dir != tc.dir {
			t.Fatalf("(%v,%v): got %v/%v, want %v/%v", tc.dx, tc.dy, d.Outcome, d.Dir, tc.outcome, tc.dir)
		}
		if d.Outcome == OutcomeFile && d.Child != tc.child {
			t.Fatalf("(%v,%v): child %d, want %d", tc.dx, tc.dy, d.Child, tc.child)
		}
	}
}

func TestTwoWay(t *testing.T) {
	c := Classifier{Kind: PolicyTwoWay}

	if d := c.Classify(150, 0); d.Outcome != OutcomeFile || d.Dir != DirRight || d.Child != 1 {
		t.Fatalf("right swipe: %+v", d)
	}
	if d := c.Classify(-150, 40); d.Outcome != OutcomeFile || d.Dir != DirLeft || d.Child != 0 {
		t.Fatalf("left swipe: %+v", d)
	}
	if d := c.Classify(30, -150); d.Outcome != OutcomeKeep {
		t.Fatalf("up drag should keep: %+v", d)
	}
	if d := c.Classify(100, 100); d.Outcome != OutcomeCancel {
		t.Fatalf("sub-threshold should cancel: %+v", d)
	}
	// Downward drags never commit in the two-way policy.
	if d := c.Classify(0, 300); d.Outcome != OutcomeCancel {
		t.Fatalf("down drag should cancel: %+v", d)
	}
}

func TestDiagonalQuadrant(t *testing.T) {
	c := Classifier{Kind: PolicyDiagonalQuadrant}

	// A single strong axis is not enough: both must pass threshold.
	if d := c.Classify(300, 0); d.Outcome != OutcomeCancel {
		t.Fatalf("cardinal drag should cancel: %+v", d)
	}
	if d := c.Classify(300, 100); d.Outcome != OutcomeCancel {
		t.Fatalf("one weak axis should cancel: %+v", d)
	}

	cases := []struct {
		dx, dy float64
		dir    Direction
		child  int
	}{
		{-130, -130, DirUpLeft, 0},
		{130, -130, DirUpRight, 1},
		{-130, 130, DirDownLeft, 2},
		{130, 130, DirDownRight, 3},
	}
	for _, tc := range cases {
		d := c.Classify(tc.dx, tc.dy)
		if d.Outcome != OutcomeFile || d.Dir != tc.dir || d.Child != tc.child {
			t.Fatalf("(%v,%v): %+v", tc.dx, tc.dy, d)
		}
	}
}

func TestFlickGated(t *testing.T) {
	c := Classifier{Kind: PolicyFlickGated}

	// A far but slow drag (prediction ~= actual) settles into reposition.
	if d := c.ClassifyFlick(300, 0, 310, 0); d.Outcome != OutcomeCancel {
		t.Fatalf("slow drag should cancel: %+v", d)
	}
	// A fast flick diverges past the boost threshold and commits.
	if d := c.ClassifyFlick(150, 0, 450, 0); d.Outcome != OutcomeFile || d.Dir != DirRight {
		t.Fatalf("fast flick should file right: %+v", d)
	}
	// The committed direction comes from the predicted endpoint.
	if d := c.ClassifyFlick(20, 30, 40, 330); d.Outcome != OutcomeFile || d.Dir != DirDown {
		t.Fatalf("predicted-down flick: %+v", d)
	}
	// Non-flick policies ignore the prediction entirely.
	axis := Classifier{Kind: PolicyAxisDominant}
	if d := axis.ClassifyFlick(121, 0, 0, 0); d.Outcome != OutcomeFile || d.Dir != DirRight {
		t.Fatalf("axis with prediction: %+v", d)
	}
}

func TestParsePolicy(t *testing.T) {
	for raw, want := range map[string]PolicyKind{
		"two-way":  PolicyTwoWay,
		"swipe":    PolicyTwoWay,
		"axis":     PolicyAxisDominant,
		"four-way": PolicyAxisDominant,
		"diagonal": PolicyDiagonalQuadrant,
		"flick":    PolicyFlickGated,
	} {
		k, err := ParsePolicy(raw)
		if err != nil || k != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", raw, k, err)
		}
	}
	if _, err := ParsePolicy("bogus"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFanOut(t *testing.T) {
	if PolicyTwoWay.FanOut() != 2 {
		t.Fatalf("two-way fan-out")
	}
	for _, k := range []PolicyKind{PolicyAxisDominant, PolicyDiagonalQuadrant, PolicyFlickGated} {
		if k.FanOut() != 4 {
			t.Fatalf("%v fan-out", k)
		}
	}
}
