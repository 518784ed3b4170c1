package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseName strips a trailing _<digits> suffix from a name. It recovers a
// template's canonical name from any of its generated instance names.
func BaseName(name string) string {
	idx := strings.LastIndex(name, "_")
	if idx < 0 {
		return name
	}

	tail := name[idx+1:]
	if !isDigits(tail) {
		return name
	}

	return name[:idx]
}

// NextName derives a sibling name by adding increment to the name's trailing
// numeric segment, keeping the original zero-padded width. Once the number
// outgrows that width it is not re-padded. A name without a numeric tail gets
// _<increment> appended.
func NextName(name string, increment int) string {
	idx := strings.LastIndex(name, "_")
	if idx >= 0 {
		tail := name[idx+1:]
		if isDigits(tail) {
			n, _ := strconv.Atoi(tail)

			return fmt.Sprintf("%s_%0*d", name[:idx], len(tail), n+increment)
		}
	}

	return fmt.Sprintf("%s_%d", name, increment)
}

// ConvertName overwrites the second underscore-delimited segment of name with
// middleID, disambiguating names across repeated decompressions into the same
// geometry. An empty middleID (full-document mode) returns name unchanged.
func ConvertName(name, middleID string) string {
	if middleID == "" {
		return name
	}

	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return name + "_" + middleID
	}

	parts[1] = middleID

	return strings.Join(parts, "_")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// NameRegistry tracks the display names already present in a geometry and
// hands out collision-free generated names. It replaces the converter's
// historical reliance on a per-call snapshot of used names: the registry is
// an explicit value threaded through decompression, so probing order is
// deterministic and testable.
type NameRegistry struct {
	used map[string]struct{}
}

// NewNameRegistry builds a registry pre-seeded with the given names.
func NewNameRegistry(names ...string) *NameRegistry {
	r := &NameRegistry{used: make(map[string]struct{}, len(names))}
	for _, n := range names {
		r.used[n] = struct{}{}
	}

	return r
}

// Add records a name as taken.
func (r *NameRegistry) Add(name string) {
	r.used[name] = struct{}{}
}

// Has reports whether a name is already taken.
func (r *NameRegistry) Has(name string) bool {
	_, ok := r.used[name]

	return ok
}

// MakeG4Name strips any numeric suffix from candidate and probes
// base_0, base_1, ... until a free name is found. The returned name is
// recorded as taken, so successive calls with the same base never collide.
func (r *NameRegistry) MakeG4Name(candidate string) string {
	base := BaseName(candidate)

	for i := 0; ; i++ {
		name := fmt.Sprintf("%s_%d", base, i)
		if !r.Has(name) {
			r.Add(name)

			return name
		}
	}
}
