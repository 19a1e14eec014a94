// Package lvbip is a small workbench for 0/1 integer programming: model a
// problem over binary variables, solve it by implicit enumeration, and watch
// the search tree grow node by node.
//
// 🚀 What is lvbip?
//
//	A deterministic, single-threaded branch-and-bound solver that brings together:
//		• Problem model: integer objective, max/min sense, <= / >= / = rows
//		• Implicit enumeration: admissible bound, feasibility and
//		  future-feasibility pruning, explicit-stack depth-first search
//		• Exhaustive reference solver for cross-checking small instances
//		• Listener hooks (NodeOpened, NodeClosed, NodeBounded)
//		• Tracing through glog and Prometheus search metrics
//		• Seeded instance generators: random, knapsack, set cover
//
// ✨ Why choose lvbip?
//
//   - Predictable – same problem, same assignment, value and node count
//   - Observable – every node event is a callback; no hidden logging
//   - Deep instances – thousands of variables without recursion limits
//   - Soft limits – time budgets and context cancellation with partial results
//
// Packages:
//
//	matrix/   - Dense int64 grid backing the restriction table
//	bip/      - Problem, checkers, engine, Solve dispatcher, listeners
//	observe/  - Recorder, GlogTracer, Prometheus Metrics
//	generate/ - Random, Batch, Knapsack, SetCover instance builders
//	examples/ - runnable knapsack and tracing programs
//
// Quick ASCII example (maximize 2a+3b+c s.t. a+b+c <= 2):
//
//	          1 (expanded)
//	        0/           \1
//	   2 (candidate z=4)  3 (expanded)
//	                    0/           \1
//	          4 (pruned by bound)    5 (expanded)
//	                               0/            \1
//	                  6 (candidate z=5)    7 (pruned infeasible)
//
//	go get github.com/katalvlaran/lvbip/bip
package lvbip
