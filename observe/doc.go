// Package observe turns bip search events into things people read: an
// in-memory Recorder, a glog tracer and Prometheus metrics.
//
// Every type here implements bip.NodeListener (and bip.BoundObserver), so
// they compose with bip.Listeners:
//
//	rec := observe.NewRecorder()
//	m := observe.NewMetrics(prometheus.NewRegistry(), "lvbip")
//	opts := bip.DefaultOptions()
//	opts.Listener = bip.Listeners{rec, m, observe.NewGlogTracer(2)}
//
// Listeners run on the solving goroutine. A Recorder belongs to one solve at
// a time; GlogTracer and Metrics may be shared, in which case the incumbent
// gauge shows whichever run reported last.
package observe
