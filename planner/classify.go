package planner

import (
	"github.com/quickshift/plannercore/catalog"
	"github.com/quickshift/plannercore/eligibility"
)

func codePrefix7(code string) string {
	if len(code) <= 7 {
		return code
	}
	return code[:7]
}

// classifyFromSections builds an eligibility.Classifier that identifies a
// course as a CFG if any offered section resolving to it carries
// Section.IsCFG, and as a free elective if the catalog marked it
// IsElective. Course itself has no CFG flag (that information lives on
// the offered section, not the curricular course record), so the
// classifier is derived per invocation from the offered sections.
func classifyFromSections(cat *catalog.Catalog, sections []*catalog.Section) eligibility.Classifier {
	byCode := make(map[string]*catalog.Course, len(cat.Courses))
	byCodePrefix := make(map[string]*catalog.Course, len(cat.Courses))
	for _, crs := range cat.AllCourses() {
		if crs.Code != "" {
			byCode[crs.Code] = crs
			byCodePrefix[codePrefix7(crs.Code)] = crs
		}
	}

	cfgCourseIDs := make(map[int]struct{})
	for _, sec := range sections {
		if !sec.IsCFG {
			continue
		}
		if crs, ok := byCode[sec.BaseCode()]; ok {
			cfgCourseIDs[crs.ID] = struct{}{}
		} else if crs, ok := byCodePrefix[sec.CodePrefix7()]; ok {
			cfgCourseIDs[crs.ID] = struct{}{}
		}
	}

	return eligibility.Classifier{
		IsCFG: func(c *catalog.Course) bool {
			_, ok := cfgCourseIDs[c.ID]
			return ok
		},
		IsFreeElective: func(c *catalog.Course) bool {
			return c.IsElective
		},
	}
}

// approvedCaps counts how many approved courses are already CFGs or free
// electives, the Caps eligibility.Filter needs to enforce the remaining
// allowance.
func approvedCaps(cat *catalog.Catalog, approved []string, cls eligibility.Classifier) eligibility.Caps {
	var caps eligibility.Caps
	for id := range eligibility.ApprovedIDs(cat, approved) {
		crs, ok := cat.ByID(id)
		if !ok {
			continue
		}
		if cls.IsCFG != nil && cls.IsCFG(crs) {
			caps.ApprovedCFGs++
		}
		if cls.IsFreeElective != nil && cls.IsFreeElective(crs) {
			caps.ApprovedFreeElectives++
		}
	}
	return caps
}
