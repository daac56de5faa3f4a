// Package graphql assembles the root schema from the query modules.
package graphql

import (
	"github.com/graphql-go/graphql"
	"github.com/ortelius/vulnmgt-backend/graphql/modules/vulnerabilities"
	"github.com/ortelius/vulnmgt-backend/store"
)

var vulnStore *store.VulnerabilityStore

// InitStore wires the vulnerability store into the resolvers. Must be called
// before CreateSchema.
func InitStore(s *store.VulnerabilityStore) {
	vulnStore = s
}

// CreateSchema builds the root query schema from each module's query fields
func CreateSchema() (graphql.Schema, error) {
	fields := graphql.Fields{}
	for name, field := range vulnerabilities.GetQueryFields(vulnStore) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
