package systems

import (
	"math"
	"testing"

	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/motion"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestProject_NeutralKeepsCorners(t *testing.T) {
	tr := motion.Neutral()
	tr.Perspective = 1000
	r := interact.Rect{X: 10, Y: 20, W: 100, H: 50}

	q := project(&tr, r)
	want := [4]point{{10, 20}, {110, 20}, {10, 70}, {110, 70}}
	for i := range q {
		if !near(q[i].X, want[i].X) || !near(q[i].Y, want[i].Y) {
			t.Errorf("Corner %d: expected %v, got %v", i, want[i], q[i])
		}
	}
}

func TestProject_RotateYShortensFarEdge(t *testing.T) {
	tr := motion.Neutral()
	tr.Perspective = 1000
	tr.RotateY = 10
	r := interact.Rect{W: 200, H: 100}

	q := project(&tr, r)
	left := q[2].Y - q[0].Y
	right := q[3].Y - q[1].Y
	if right >= left {
		t.Errorf("Expected right edge shorter than left for positive rotateY, got left=%f right=%f", left, right)
	}
}

func TestProject_ScaleAboutCenter(t *testing.T) {
	tr := motion.Neutral()
	tr.Scale = 2
	r := interact.Rect{X: 0, Y: 0, W: 10, H: 10}

	b := bounds(project(&tr, r))
	if !near(b.X, -5) || !near(b.Y, -5) || !near(b.W, 20) || !near(b.H, 20) {
		t.Errorf("Expected box (-5,-5,20,20), got %+v", b)
	}
}

func TestProject_OffsetMovesEveryCorner(t *testing.T) {
	tr := motion.Neutral()
	tr.Y = -8
	tr.X = 3
	r := interact.Rect{X: 10, Y: 10, W: 20, H: 20}

	b := bounds(project(&tr, r))
	if !near(b.X, 13) || !near(b.Y, 2) || !near(b.W, 20) || !near(b.H, 20) {
		t.Errorf("Expected box (13,2,20,20), got %+v", b)
	}
}

func TestProject_NoPerspectiveIsOrthographic(t *testing.T) {
	tr := motion.Neutral()
	tr.RotateY = 60
	r := interact.Rect{W: 100, H: 100}

	q := project(&tr, r)
	if !near(q[2].Y-q[0].Y, q[3].Y-q[1].Y) {
		t.Errorf("Expected equal edge heights without perspective, got %f and %f", q[2].Y-q[0].Y, q[3].Y-q[1].Y)
	}
	if !near(q[1].X-q[0].X, 50) {
		t.Errorf("Expected width cos(60)*100 = 50, got %f", q[1].X-q[0].X)
	}
}
