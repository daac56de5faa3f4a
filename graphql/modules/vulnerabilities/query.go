// Package vulnerabilities defines the GraphQL queries for vulnerability records.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/vulnmgt-backend/store"
)

// GetQueryFields returns the vulnerability queries to be mounted in the root schema.
func GetQueryFields(s *store.VulnerabilityStore) graphql.Fields {
	return graphql.Fields{
		"vulnerabilities": &graphql.Field{
			Type: graphql.NewList(VulnerabilityType),
			Args: graphql.FieldConfigArgument{
				"status":      &graphql.ArgumentConfig{Type: graphql.String},
				"criticality": &graphql.ArgumentConfig{Type: graphql.String},
				"search":      &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				spec := store.FilterSpec{}
				if status, ok := p.Args["status"].(string); ok {
					spec.Status = status
				}
				if criticality, ok := p.Args["criticality"].(string); ok {
					spec.Criticality = criticality
				}
				if search, ok := p.Args["search"].(string); ok {
					spec.Search = search
				}
				return ResolveVulnerabilities(s, spec), nil
			},
		},
		"vulnerability": &graphql.Field{
			Type: VulnerabilityType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				id := p.Args["id"].(int)
				return ResolveVulnerability(s, id)
			},
		},
		"workflowStates": &graphql.Field{
			Type: graphql.NewList(WorkflowStateType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return ResolveWorkflowStates(), nil
			},
		},
	}
}
