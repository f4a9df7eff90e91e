package tween

// Updater is anything a [Group] can advance each frame. [Animation] and
// [Task] both satisfy it.
type Updater interface {
	Update(dt float64)
	Done() bool
}

// Group is an explicit active set for animations and tasks.
//
// Update each frame advances every member, then drops the ones that
// report Done. Members may add to or remove from the group inside their
// callbacks: additions join the following tick, removals take effect for
// the following tick.
type Group struct {
	members []Updater
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add puts members into the active set. A member already in the set is
// not added twice.
func (g *Group) Add(members ...Updater) {
	for _, m := range members {
		if g.contains(m) {
			continue
		}
		g.members = append(g.members, m)
	}
}

// Remove takes a member out of the active set without waiting for it to
// finish.
func (g *Group) Remove(member Updater) {
	for i, m := range g.members {
		if m == member {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

// Clear empties the active set.
func (g *Group) Clear() {
	g.members = nil
}

// Len returns the number of active members.
func (g *Group) Len() int {
	return len(g.members)
}

// Update advances every member by dt, then drops completed members.
func (g *Group) Update(dt float64) {
	if len(g.members) == 0 {
		return
	}
	// Tick a snapshot so callbacks can mutate the set mid-update.
	ticking := make([]Updater, len(g.members))
	copy(ticking, g.members)
	for _, m := range ticking {
		m.Update(dt)
	}

	kept := g.members[:0]
	for _, m := range g.members {
		if !m.Done() {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = kept
}

func (g *Group) contains(member Updater) bool {
	for _, m := range g.members {
		if m == member {
			return true
		}
	}
	return false
}
