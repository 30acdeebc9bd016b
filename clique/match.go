package clique

import (
	"strings"

	"github.com/quickshift/plannercore/catalog"
)

// courseIndex resolves an offered Section back to the catalog Course it
// belongs to, trying progressively looser keys: exact base-code match,
// then 7-character code-prefix match, then the elective-slot code table
// Fuse built, then normalized name.
type courseIndex struct {
	byCode       map[string]*catalog.Course
	byCodePrefix map[string]*catalog.Course
	cat          *catalog.Catalog
}

func buildCourseIndex(cat *catalog.Catalog) *courseIndex {
	idx := &courseIndex{
		byCode:       make(map[string]*catalog.Course),
		byCodePrefix: make(map[string]*catalog.Course),
		cat:          cat,
	}
	for _, crs := range cat.AllCourses() {
		if crs.Code == "" {
			continue
		}
		idx.byCode[crs.Code] = crs
		idx.byCodePrefix[codePrefix7(crs.Code)] = crs
	}
	return idx
}

func codePrefix7(code string) string {
	if len(code) <= 7 {
		return code
	}
	return code[:7]
}

// resolve finds the Course a Section belongs to, or false if none matches.
func (idx *courseIndex) resolve(sec *catalog.Section) (*catalog.Course, bool) {
	if crs, ok := idx.byCode[sec.BaseCode()]; ok {
		return crs, true
	}
	if crs, ok := idx.byCodePrefix[sec.CodePrefix7()]; ok {
		return crs, true
	}
	if sec.IsElective {
		if name, ok := idx.cat.CodeToNormalizedName[sec.BaseCode()]; ok {
			if crs, ok := idx.cat.Courses[name]; ok {
				return crs, true
			}
		}
	}
	if crs, ok := idx.cat.ByNormalizedName(sec.Name); ok {
		return crs, true
	}
	return nil, false
}

// isTBA reports whether a section carries no usable schedule or
// instructor information — the "no-TBA" exclusion's target.
func isTBA(sec *catalog.Section) bool {
	if len(sec.Schedule) == 0 {
		return true
	}
	instructor := strings.ToUpper(strings.TrimSpace(sec.Instructor))
	if instructor == "" || instructor == "TBA" || instructor == "POR DEFINIR" {
		return true
	}
	for _, b := range sec.Schedule {
		if strings.ToUpper(b.Day) == "TBA" {
			return true
		}
	}
	return false
}
