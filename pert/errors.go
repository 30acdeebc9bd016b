package pert

import "errors"

// ErrCyclicDependency is not returned by Analyze or any other function in
// this package: cycles never
// abort the analysis (a fallback is mandated), but callers that
// want to detect the degraded path can check Result.Cyclic instead. This
// sentinel exists for completeness and for tests that assert on the
// underlying dag failure mode.
var ErrCyclicDependency = errors.New("pert: prerequisite graph contains a cycle")
