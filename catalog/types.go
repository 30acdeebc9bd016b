// Package catalog defines the unified Course and Section records and
// performs Catalog Fusion (C1): merging curriculum, offering and historical
// row streams into one catalog keyed by normalized name.
//
// Errors:
//
//	ErrEmptyPlanID        - Fuse was called with an empty plan identifier.
//	ErrDuplicateCourseID  - two curriculum rows in the same plan share a course ID.
//
// Complexity: Fuse runs in O(H + O + C) where H, O, C are the historical,
// offering and curriculum row counts, using hash-map joins throughout.
package catalog

import (
	"sort"
	"strings"
)

// Block is one weekly meeting block of a Section: a day code (one of
// LU MA MI JU VI SA DO) plus a half-open [StartMinute, EndMinute) range in
// minutes since midnight.
type Block struct {
	Day          string
	StartMinute  int
	EndMinute    int
}

// Course is a unit of study within a curricular plan.
//
// ID is the stable integer the curriculum row assigned; Prerequisites is
// populated after the fact by package prereq via ApplyPrerequisites and is
// nil until then. Semester of 0 means "unspecified". Difficulty of nil
// means "no historical pass-rate data".
type Course struct {
	ID             int
	Name           string
	Code           string
	Semester       int
	Prerequisites  map[int]struct{}
	PrereqsKnown   bool // true once package prereq has resolved this course
	Difficulty     *float64
	IsElective     bool
	SequenceNumber int
	IsCritical     bool // set by package pert; zero value until PERT runs
	Slack          int  // set by package pert; zero value until PERT runs
}

// NormalizedKey mirrors the fusion's join key for the non-elective case.
// Electives are instead keyed by their synthetic slot identifier; see Fuse.
func NormalizedKey(name string) string { return normalizedName(name) }

// Section is one concrete teaching instance of a course.
//
// Code may carry an event suffix after an underscore; BaseCode strips it.
// Two sections sharing BoxID, or whose first 7 characters of Code match,
// are mutually exclusive — see CodePrefix7.
type Section struct {
	Code       string
	Name       string
	SectionID  string
	Schedule   []Block
	Instructor string
	BoxID      string
	IsCFG      bool
	IsElective bool
}

// BaseCode returns the prefix of Code up to (not including) the first
// underscore, or the whole code if there is no underscore.
func (s Section) BaseCode() string {
	if i := strings.IndexByte(s.Code, '_'); i >= 0 {
		return s.Code[:i]
	}
	return s.Code
}

// CodePrefix7 returns the first 7 characters of Code, or the whole code if
// shorter. Two sections with equal CodePrefix7 represent the same course.
func (s Section) CodePrefix7() string {
	if len(s.Code) <= 7 {
		return s.Code
	}
	return s.Code[:7]
}

// Catalog is the unified course catalog produced by Fuse, keyed by
// normalized name for non-electives and by synthetic "elective_<slot>" key
// for elective slots. Catalog is an immutable value once returned by Fuse;
// callers that need to attach prerequisite sets use ApplyPrerequisites.
type Catalog struct {
	PlanID  string
	Courses map[string]*Course // key -> Course
	byID    map[int]*Course    // course ID -> Course, built alongside Courses

	// CodeToNormalizedName maps an offering code back to the normalized
	// course name it was matched against during Fuse. The clique scheduler
	// uses this to resolve an IsElective section whose name does not match
	// the catalog back to the course named by the offering row for its code.
	// Elective slots (keyed "elective_<id>") are not reachable this way.
	CodeToNormalizedName map[string]string
}

// ByID looks up a course by its integer ID. Returns nil, false if absent.
func (c *Catalog) ByID(id int) (*Course, bool) {
	crs, ok := c.byID[id]
	return crs, ok
}

// ByNormalizedName looks up a non-elective course by its normalized name
// key. Elective slots are not addressable this way; use Courses directly.
func (c *Catalog) ByNormalizedName(name string) (*Course, bool) {
	crs, ok := c.Courses[normalizedName(name)]
	return crs, ok
}

// AllCourses returns every course in the catalog ordered by ascending ID,
// the deterministic iteration order the scheduler relies on for
// reproducible output.
func (c *Catalog) AllCourses() []*Course {
	ids := c.SortedIDs()
	out := make([]*Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.byID[id])
	}
	return out
}

// SortedIDs returns all course IDs in ascending order, the deterministic
// iteration order the scheduler relies on for reproducible output.
func (c *Catalog) SortedIDs() []int {
	ids := make([]int, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ApplyPrerequisites attaches a resolved prerequisite map (as produced by
// package prereq) to the matching courses. Course IDs absent from the
// catalog are silently ignored (defense in depth; callers are expected to
// have built prereqs from this same catalog).
func (c *Catalog) ApplyPrerequisites(prereqs map[int]map[int]struct{}) {
	for id, set := range prereqs {
		if crs, ok := c.byID[id]; ok {
			crs.Prerequisites = set
			crs.PrereqsKnown = true
		}
	}
}

