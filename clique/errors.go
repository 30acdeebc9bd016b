package clique

import "errors"

// ErrInvalidTimeRange is returned by ParseTimeRange for a malformed token:
// missing day codes, an unrecognized day code, or an unparsable clock
// range. The planner surfaces this as InvalidRequest.
var ErrInvalidTimeRange = errors.New("clique: invalid time range")
