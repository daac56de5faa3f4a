package store

import (
	"sort"
	"strings"
	"time"

	"github.com/ortelius/vulnmgt-backend/model"
)

// FilterSpec narrows a record list. Empty fields mean "no filter"; the
// predicates are ANDed together.
type FilterSpec struct {
	Status      string
	Criticality string
	Search      string
}

// Filter returns the records matching the spec, most recently updated first.
// The input is never mutated; ties keep their relative order so lists that
// were produced in insertion order stay that way.
func Filter(records []model.Vulnerability, spec FilterSpec) []model.Vulnerability {
	search := strings.ToLower(spec.Search)

	out := make([]model.Vulnerability, 0, len(records))
	for _, v := range records {
		if spec.Status != "" && v.Status != spec.Status {
			continue
		}
		if spec.Criticality != "" && v.Criticality != spec.Criticality {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lastTouched(out[i]).After(lastTouched(out[j]))
	})

	return out
}

// matchesSearch checks title, description and CWE for the lowercased needle
func matchesSearch(v model.Vulnerability, needle string) bool {
	return strings.Contains(strings.ToLower(v.Title), needle) ||
		strings.Contains(strings.ToLower(v.Description), needle) ||
		strings.Contains(strings.ToLower(v.Cwe), needle)
}

func lastTouched(v model.Vulnerability) time.Time {
	if v.UpdatedAt.IsZero() {
		return v.CreatedAt
	}
	return v.UpdatedAt
}
