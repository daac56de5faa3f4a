// Package vulnerabilities implements the resolvers for vulnerability data.
package vulnerabilities

import (
	"github.com/ortelius/vulnmgt-backend/model"
	"github.com/ortelius/vulnmgt-backend/store"
)

// ResolveVulnerabilities fetches the filtered record list, most recently
// updated first
func ResolveVulnerabilities(s *store.VulnerabilityStore, spec store.FilterSpec) []model.Vulnerability {
	return store.Filter(s.List(), spec)
}

// ResolveVulnerability fetches a single record. Unknown ids resolve to null
// rather than a GraphQL error, matching how the other query modules behave.
func ResolveVulnerability(s *store.VulnerabilityStore, id int) (interface{}, error) {
	vuln, err := s.Get(id)
	if err != nil {
		return nil, nil
	}
	return vuln, nil
}

// ResolveWorkflowStates returns the full transition table
func ResolveWorkflowStates() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(model.States))
	for _, state := range model.States {
		next := model.NextStates(state)
		out = append(out, map[string]interface{}{
			"name":     state,
			"next":     next,
			"terminal": len(next) == 0,
		})
	}
	return out
}
