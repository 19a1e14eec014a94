// Package generate builds bip.Problem instances: seeded random programs with
// a planted feasible solution, and the classic 0/1 models (knapsack, set
// cover) from plain slices.
//
// Configuration follows the functional-options pattern:
//
//	p, err := generate.Random(12, 4,
//		generate.WithSeed(7),
//		generate.WithCoefficientRange(-5, 5),
//		generate.WithRelations(bip.LE, bip.GE),
//	)
//
// Determinism: every draw comes from the RNG supplied with WithSeed or
// WithRand, in a fixed order, so a seed fully determines the instance.
// Batch derives one independent stream per instance, so instances may be
// solved on separate goroutines.
//
// Option constructors panic on meaningless arguments (programmer errors);
// generators return sentinel errors (ErrTooSmall, ErrInvalidProbability,
// ErrNeedRandSource, ErrDimensionMismatch) wrapped with call-site context.
package generate
