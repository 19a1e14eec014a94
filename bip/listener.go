// SPDX-License-Identifier: MIT

package bip

// NodeListener receives search-tree lifecycle events from ImplicitEnumeration.
// Events arrive synchronously on the solving goroutine, in pre-order:
// NodeOpened(id) precedes NodeClosed(id), and a node expanded with
// ReasonExpanded is closed before its children are opened.
//
// Slices passed to a listener are owned by the solver and valid only for the
// duration of the call; copy them to retain.
type NodeListener interface {
	// NodeOpened is called when node id is opened. parent is 0 for the root.
	// fixed holds the values fixed on the path from the root (len == depth).
	NodeOpened(id, parent int, fixed []int8)
	// NodeClosed is called once per opened node with the reason it closed.
	NodeClosed(id int, reason CloseReason)
}

// BoundObserver is an optional extension of NodeListener. When the listener
// implements it, NodeBounded is called after the bound of node id has been
// computed, before the node is pruned or tested for feasibility.
// workplace is the full bound assignment; alpha is the incumbent value and is
// meaningful only when hasIncumbent is true.
type BoundObserver interface {
	NodeBounded(id int, workplace []int8, bound, alpha int64, hasIncumbent bool)
}

// NopListener ignores every event. It is the default listener.
type NopListener struct{}

// NodeOpened implements NodeListener.
func (NopListener) NodeOpened(int, int, []int8) {}

// NodeClosed implements NodeListener.
func (NopListener) NodeClosed(int, CloseReason) {}

// ListenerFuncs adapts plain functions to NodeListener and BoundObserver.
// Nil fields are skipped.
type ListenerFuncs struct {
	OnOpen  func(id, parent int, fixed []int8)
	OnClose func(id int, reason CloseReason)
	OnBound func(id int, workplace []int8, bound, alpha int64, hasIncumbent bool)
}

// NodeOpened implements NodeListener.
func (f ListenerFuncs) NodeOpened(id, parent int, fixed []int8) {
	if f.OnOpen != nil {
		f.OnOpen(id, parent, fixed)
	}
}

// NodeClosed implements NodeListener.
func (f ListenerFuncs) NodeClosed(id int, reason CloseReason) {
	if f.OnClose != nil {
		f.OnClose(id, reason)
	}
}

// NodeBounded implements BoundObserver.
func (f ListenerFuncs) NodeBounded(id int, workplace []int8, bound, alpha int64, hasIncumbent bool) {
	if f.OnBound != nil {
		f.OnBound(id, workplace, bound, alpha, hasIncumbent)
	}
}

// Listeners fans every event out to each member in order. NodeBounded is
// forwarded to the members that implement BoundObserver.
type Listeners []NodeListener

// NodeOpened implements NodeListener.
func (ls Listeners) NodeOpened(id, parent int, fixed []int8) {
	for _, l := range ls {
		l.NodeOpened(id, parent, fixed)
	}
}

// NodeClosed implements NodeListener.
func (ls Listeners) NodeClosed(id int, reason CloseReason) {
	for _, l := range ls {
		l.NodeClosed(id, reason)
	}
}

// NodeBounded implements BoundObserver.
func (ls Listeners) NodeBounded(id int, workplace []int8, bound, alpha int64, hasIncumbent bool) {
	for _, l := range ls {
		if bo, ok := l.(BoundObserver); ok {
			bo.NodeBounded(id, workplace, bound, alpha, hasIncumbent)
		}
	}
}

var (
	_ NodeListener  = NopListener{}
	_ NodeListener  = ListenerFuncs{}
	_ BoundObserver = ListenerFuncs{}
	_ NodeListener  = Listeners(nil)
	_ BoundObserver = Listeners(nil)
)
