// Package combinator provides function-level building blocks: identity,
// composition, application, side-effect taps and one-shot wrappers.
//
//	inc := func(n int) int { return n + 1 }
//	double := func(n int) int { return n * 2 }
//
//	combinator.Compose(inc, double)(3) // → 7, double runs first
//	combinator.Pipe(inc, double)(3)    // → 8, inc runs first
//
// [Compose] and [Pipe] chain functions of a single type. The typed
// [Compose2] … [Compose5] chain functions whose types change along the way.
//
// # Once
//
// [Once] memoizes: the wrapped function runs on the first call only, and
// every call returns that first result whatever its argument. Wrappers are
// safe for concurrent use.
//
// # Tracing
//
// [Trace] is a [Tee] that logs the value flowing through a composition with
// a *zap.Logger, which is handy when debugging a long pipeline:
//
//	pipeline := combinator.Compose(render, combinator.Trace[Doc](logger, "parsed"), parse)
package combinator
