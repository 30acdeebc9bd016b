package clique

import "github.com/quickshift/plannercore/catalog"

// conflicts reports whether sections a and b share a day with overlapping
// [start, end) blocks.
func conflicts(a, b *catalog.Section) bool {
	for _, ba := range a.Schedule {
		for _, bb := range b.Schedule {
			if ba.Day == bb.Day && overlaps(ba.StartMinute, ba.EndMinute, bb.StartMinute, bb.EndMinute) {
				return true
			}
		}
	}
	return false
}

// mutuallyExclusive reports whether a and b represent the same course
// under two alternative identifiers: a shared box_id grouping, or equal
// 7-character code prefixes.
func mutuallyExclusive(a, b *catalog.Section) bool {
	if a.BoxID != "" && a.BoxID == b.BoxID {
		return true
	}
	return a.CodePrefix7() == b.CodePrefix7()
}

// compatible reports whether a and b may appear together in a schedule:
// neither mutually exclusive nor time-conflicting.
func compatible(a, b *catalog.Section) bool {
	if mutuallyExclusive(a, b) {
		return false
	}
	return !conflicts(a, b)
}

// minGapSatisfied reports whether every same-day pair of blocks across a
// and b leaves at least minGap minutes between them. Used only when the
// request's min_gap_minutes filter is enabled; it is
// independent of the conflict predicate, which only rules out overlap.
func minGapSatisfied(a, b *catalog.Section, minGap int) bool {
	if minGap <= 0 {
		return true
	}
	for _, ba := range a.Schedule {
		for _, bb := range b.Schedule {
			if ba.Day != bb.Day {
				continue
			}
			gap := 0
			switch {
			case ba.EndMinute <= bb.StartMinute:
				gap = bb.StartMinute - ba.EndMinute
			case bb.EndMinute <= ba.StartMinute:
				gap = ba.StartMinute - bb.EndMinute
			default:
				continue // overlapping blocks are rejected by conflicts(), not here
			}
			if gap < minGap {
				return false
			}
		}
	}
	return true
}
