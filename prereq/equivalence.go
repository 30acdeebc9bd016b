package prereq

import "strings"

// Equivalences maps an old-curriculum course code to the new-curriculum
// code it satisfies. Zero value is usable (an empty table).
type Equivalences struct {
	oldToNew map[string]string
}

// NewEquivalences builds an Equivalences table from (oldCode, newCode)
// pairs. Codes are compared case-insensitively (uppercased internally),
// matching the uppercase comparison used for approved-code matching in
// package eligibility.
func NewEquivalences(pairs map[string]string) *Equivalences {
	eq := &Equivalences{oldToNew: make(map[string]string, len(pairs))}
	for old, new_ := range pairs {
		eq.oldToNew[strings.ToUpper(old)] = strings.ToUpper(new_)
	}
	return eq
}

// Apply replaces every approved identifier with its equivalent new code,
// if one exists; identifiers without an equivalent pass through unchanged.
// Apply is idempotent for identifiers that are not codes at all (e.g. a
// course name), since those simply never match a key in the table.
func (e *Equivalences) Apply(approved []string) []string {
	if e == nil || len(e.oldToNew) == 0 {
		return approved
	}
	out := make([]string, len(approved))
	for i, id := range approved {
		if mapped, ok := e.oldToNew[strings.ToUpper(id)]; ok {
			out[i] = mapped
			continue
		}
		out[i] = id
	}
	return out
}
