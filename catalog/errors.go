package catalog

import "errors"

var (
	// ErrEmptyPlanID indicates Fuse was called without a plan identifier.
	ErrEmptyPlanID = errors.New("catalog: empty plan id")

	// ErrDuplicateCourseID indicates two curriculum rows in the same plan
	// share a course ID, violating the (plan, id) uniqueness invariant.
	ErrDuplicateCourseID = errors.New("catalog: duplicate course id in plan")
)
