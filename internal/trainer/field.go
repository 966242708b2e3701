package trainer

import (
	"math/rand"

	"github.com/vovakirdan/aimtrainer/internal/core"
)

// Target is a moving square on the field. Its position is the top-left corner.
type Target struct {
	ID    int
	X, Y  float64
	Size  float64
	Speed float64
	DirX  float64 // -1 or +1
	DirY  float64 // -1 or +1
	Color core.Color
}

// Box returns the area covered by the target.
func (t Target) Box() core.Box {
	return core.Box{X: t.X, Y: t.Y, W: t.Size, H: t.Size}
}

// Field owns the fixed-size collection of targets and moves them.
// Targets keep their index as ID for the lifetime of the collection.
type Field struct {
	rng     *rand.Rand
	width   float64
	height  float64
	targets []Target
}

// NewField creates an empty field with a seeded random source.
func NewField(seed int64) *Field {
	return &Field{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Initialize replaces all targets with count freshly placed ones.
func (f *Field) Initialize(width, height float64, count int, size, speed float64) {
	f.width = max(width, 0)
	f.height = max(height, 0)

	f.targets = make([]Target, max(count, 0))
	for i := range f.targets {
		f.targets[i] = Target{ID: i, Size: size, Speed: speed}
		f.place(&f.targets[i])
	}
}

// place gives t a random in-bounds position, heading and color.
func (f *Field) place(t *Target) {
	t.X = f.rng.Float64() * limit(f.width, t.Size)
	t.Y = f.rng.Float64() * limit(f.height, t.Size)
	t.DirX = f.heading()
	t.DirY = f.heading()
	t.Color = core.HSL(f.rng.Float64()*360, 0.8, 0.6)
}

func (f *Field) heading() float64 {
	if f.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// limit is the largest valid coordinate for an edge of size on an axis of dim.
func limit(dim, size float64) float64 {
	return max(dim-size, 0)
}

// step moves one axis by one frame, reflecting once at the walls.
func step(pos, dir, speed, lim float64) (float64, float64) {
	next := pos + dir*speed
	if next < 0 || next > lim {
		dir = -dir
		next = pos + dir*speed
	}
	return core.Clamp(next, 0, lim), dir
}

// Advance moves every target by one frame.
func (f *Field) Advance() {
	for i := range f.targets {
		t := &f.targets[i]
		t.X, t.DirX = step(t.X, t.DirX, t.Speed, limit(f.width, t.Size))
		t.Y, t.DirY = step(t.Y, t.DirY, t.Speed, limit(f.height, t.Size))
	}
}

// Respawn relocates the target with the given id. Size, speed and id are kept.
// Returns false if no such target exists.
func (f *Field) Respawn(id int) bool {
	if id < 0 || id >= len(f.targets) {
		return false
	}
	f.place(&f.targets[id])
	return true
}

// Resize changes the field bounds and pulls targets back inside them.
func (f *Field) Resize(width, height float64) {
	f.width = max(width, 0)
	f.height = max(height, 0)
	for i := range f.targets {
		t := &f.targets[i]
		t.X = core.Clamp(t.X, 0, limit(f.width, t.Size))
		t.Y = core.Clamp(t.Y, 0, limit(f.height, t.Size))
	}
}

// HitTest returns the id of the topmost target containing the point.
// Later targets are drawn over earlier ones, so the search runs backwards.
func (f *Field) HitTest(x, y float64) (int, bool) {
	for i := len(f.targets) - 1; i >= 0; i-- {
		if f.targets[i].Box().Contains(x, y) {
			return f.targets[i].ID, true
		}
	}
	return 0, false
}

// HitTestArea returns the id of the topmost target overlapping area.
func (f *Field) HitTestArea(area core.Box) (int, bool) {
	for i := len(f.targets) - 1; i >= 0; i-- {
		if f.targets[i].Box().Intersects(area) {
			return f.targets[i].ID, true
		}
	}
	return 0, false
}

// Targets returns a copy of the current targets.
func (f *Field) Targets() []Target {
	out := make([]Target, len(f.targets))
	copy(out, f.targets)
	return out
}

// Target returns the target with the given id.
func (f *Field) Target(id int) (Target, bool) {
	if id < 0 || id >= len(f.targets) {
		return Target{}, false
	}
	return f.targets[id], true
}

// Len returns the number of targets.
func (f *Field) Len() int {
	return len(f.targets)
}

// Size returns the field dimensions in pixels.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}
