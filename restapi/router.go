// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/ortelius/vulnmgt-backend/restapi/modules/auth"
	"github.com/ortelius/vulnmgt-backend/restapi/modules/vulnerabilities"
	"github.com/ortelius/vulnmgt-backend/store"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
// Reads require any authenticated role; writes require admin.
func SetupRoutes(app *fiber.App, s *store.VulnerabilityStore, creds auth.CredentialStore, schema graphql.Schema) {

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", auth.RequireAuth, GraphQLHandler(schema))

	// Auth Routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login(creds))
	authGroup.Post("/logout", auth.Logout())
	authGroup.Get("/me", auth.RequireAuth, auth.Me())

	// Vulnerability Routes
	vulnGroup := api.Group("/vulnerabilities", auth.RequireAuth)
	vulnGroup.Get("/", vulnerabilities.ListVulnerabilities(s))
	vulnGroup.Get("/states", vulnerabilities.ListStates())
	vulnGroup.Get("/:id", vulnerabilities.GetVulnerability(s))
	vulnGroup.Post("/", auth.RequireRole("admin"), vulnerabilities.CreateVulnerability(s))
	vulnGroup.Put("/:id", auth.RequireRole("admin"), vulnerabilities.UpdateVulnerability(s))
	vulnGroup.Delete("/:id", auth.RequireRole("admin"), vulnerabilities.DeleteVulnerability(s))
}
