package maze

import "github.com/zyedidia/generic/mapset"

// frontier holds wall cells waiting to be resolved. Membership lives in the
// set; the slice gives uniform picks by index.
type frontier struct {
	members mapset.Set[Point]
	order   []Point
}

func newFrontier() *frontier {
	return &frontier{members: mapset.New[Point]()}
}

func (f *frontier) add(p Point) bool {
	if f.members.Has(p) {
		return false
	}
	f.members.Put(p)
	f.order = append(f.order, p)
	return true
}

func (f *frontier) has(p Point) bool {
	return f.members.Has(p)
}

func (f *frontier) size() int {
	return len(f.order)
}

// pick removes and returns a uniformly chosen member. It swaps the last
// element into the vacated slot, so removal is O(1).
func (f *frontier) pick(rng Source) Point {
	i := rng.Intn(len(f.order))
	p := f.order[i]
	last := len(f.order) - 1
	f.order[i] = f.order[last]
	f.order = f.order[:last]
	f.members.Remove(p)
	return p
}
