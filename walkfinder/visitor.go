package walkfinder

// Visitor is invoked by FindMinimalWalks as the DFS advances. PushStop
// is called on entering stop v, before the covering check; returning
// false prunes the subtree rooted at v without considering it further
// (WalkDone is not invoked for a pruned branch, and the matching
// PopStop still runs). PopStop is always called exactly once for every
// PushStop, in reverse order, including on pruned and completed
// branches. WalkDone is called when the current path already covers
// every target.
type Visitor interface {
	PushStop(stop int) bool
	PopStop()
	WalkDone()
}

// CollectorVisitor is the simplest Visitor: it records every completed
// walk (the stop sequence from the most recent start to the point
// WalkDone fired) without pruning anything.
type CollectorVisitor struct {
	Walks   [][]int
	current []int
}

// PushStop always accepts.
func (c *CollectorVisitor) PushStop(stop int) bool {
	c.current = append(c.current, stop)
	return true
}

// PopStop removes the most recently pushed stop.
func (c *CollectorVisitor) PopStop() {
	c.current = c.current[:len(c.current)-1]
}

// WalkDone snapshots the current path into Walks.
func (c *CollectorVisitor) WalkDone() {
	walk := make([]int, len(c.current))
	copy(walk, c.current)
	c.Walks = append(c.Walks, walk)
}
