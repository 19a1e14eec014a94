// SPDX-License-Identifier: MIT

package observe

import (
	"strings"

	"github.com/golang/glog"

	"github.com/katalvlaran/lvbip/bip"
)

// GlogTracer logs node events through glog at a fixed verbosity, in the
// layout of a search report: opening with the fixed prefix, the best fit
// with bound and alpha, and the close reason.
//
// Enable with -v=<level>; at lower verbosity every callback is a cheap check.
type GlogTracer struct {
	level glog.Level
}

// NewGlogTracer returns a tracer logging at verbosity level.
func NewGlogTracer(level int) GlogTracer {
	return GlogTracer{level: glog.Level(level)}
}

// NodeOpened implements bip.NodeListener.
func (g GlogTracer) NodeOpened(id, parent int, fixed []int8) {
	if v := glog.V(g.level); v {
		v.Infof("node %d open parent=%d fixed=%s", id, parent, prefix(fixed))
	}
}

// NodeBounded implements bip.BoundObserver.
func (g GlogTracer) NodeBounded(id int, workplace []int8, bound, alpha int64, hasIncumbent bool) {
	if v := glog.V(g.level); v {
		if hasIncumbent {
			v.Infof("node %d best fit %s z=%d alpha=%d", id, prefix(workplace), bound, alpha)
		} else {
			v.Infof("node %d best fit %s z=%d alpha=none", id, prefix(workplace), bound)
		}
	}
}

// NodeClosed implements bip.NodeListener.
func (g GlogTracer) NodeClosed(id int, reason bip.CloseReason) {
	if v := glog.V(g.level); v {
		v.Infof("node %d closed: %s", id, reason)
	}
}

// prefix renders a fixed vector as a1=1 b1=0 …; empty prints "-".
func prefix(x []int8) string {
	if len(x) == 0 {
		return "-"
	}
	var b strings.Builder
	for i, v := range x {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(bip.VarName(i))
		b.WriteByte('=')
		if v == bip.Unset {
			b.WriteByte('-')
		} else {
			b.WriteByte('0' + byte(v))
		}
	}

	return b.String()
}

var (
	_ bip.NodeListener  = GlogTracer{}
	_ bip.BoundObserver = GlogTracer{}
)
