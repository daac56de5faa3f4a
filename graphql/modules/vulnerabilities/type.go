// Package vulnerabilities defines the GraphQL types for vulnerability records.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"
)

// HistoryEntryType represents one accepted status transition
var HistoryEntryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "HistoryEntry",
	Fields: graphql.Fields{
		"from": &graphql.Field{Type: graphql.String},
		"to":   &graphql.Field{Type: graphql.String},
		"at":   &graphql.Field{Type: graphql.DateTime},
	},
})

// VulnerabilityType represents a tracked security finding
var VulnerabilityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Vulnerability",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.Int},
		"title":        &graphql.Field{Type: graphql.String},
		"description":  &graphql.Field{Type: graphql.String},
		"criticality":  &graphql.Field{Type: graphql.String},
		"cwe":          &graphql.Field{Type: graphql.String},
		"suggestedFix": &graphql.Field{Type: graphql.String},
		"status":       &graphql.Field{Type: graphql.String},
		"history":      &graphql.Field{Type: graphql.NewList(HistoryEntryType)},
		"createdAt":    &graphql.Field{Type: graphql.DateTime},
		"updatedAt":    &graphql.Field{Type: graphql.DateTime},
	},
})

// WorkflowStateType pairs a state with the states reachable from it
var WorkflowStateType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WorkflowState",
	Fields: graphql.Fields{
		"name":     &graphql.Field{Type: graphql.String},
		"next":     &graphql.Field{Type: graphql.NewList(graphql.String)},
		"terminal": &graphql.Field{Type: graphql.Boolean},
	},
})
