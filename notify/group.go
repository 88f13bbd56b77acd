package notify

import (
	stderrors "errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// Closer is implemented by Observer and the SubscriptionN types.
type Closer interface {
	Close() error
}

// Group closes a set of subscriptions together, typically when the value that
// owns them goes away. Members are closed in the order they were added.
// Adding the same member twice keeps the first. Members must have comparable
// dynamic types, Add panics otherwise.
type Group struct {
	members mapset.Set[Closer]
	order   []Closer
}

// Add puts closers into the group.
func (g *Group) Add(closers ...Closer) {
	if g.members == nil {
		g.members = mapset.NewThreadUnsafeSet[Closer]()
	}
	for _, c := range closers {
		if c != nil && g.members.Add(c) {
			g.order = append(g.order, c)
		}
	}
}

// Len returns the number of members.
func (g *Group) Len() int {
	if g.members == nil {
		return 0
	}
	return g.members.Cardinality()
}

// Close closes every member in order, empties the group and returns the close
// errors joined in the same order.
func (g *Group) Close() error {
	if g.members == nil {
		return nil
	}
	members := g.order
	g.order = nil
	g.members.Clear()

	var errs []error
	for _, c := range members {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
