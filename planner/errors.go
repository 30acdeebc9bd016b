package planner

import "errors"

// ErrInvalidRequest is returned for malformed input: a missing plan ID, or
// a malformed preferred/forbidden time range token.
var ErrInvalidRequest = errors.New("planner: invalid request")

// ErrPlanNotFound is returned when a plan signature is not cached and no
// source rows were supplied to build it.
var ErrPlanNotFound = errors.New("planner: plan not found")
