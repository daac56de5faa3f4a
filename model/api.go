// Package model - API types for vulnerability manager requests/responses
package model

// CreateVulnerabilityRequest is the body for POST /vulnerabilities
type CreateVulnerabilityRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Criticality  string `json:"criticality" validate:"omitempty,oneof=High Medium Low"`
	Cwe          string `json:"cwe"`
	SuggestedFix string `json:"suggestedFix"`
	Status       string `json:"status" validate:"required"`
}

// UpdateVulnerabilityRequest is the body for PUT /vulnerabilities/:id.
// Pointer fields distinguish "omitted" from "set to empty": omitted or null
// fields leave the stored value unchanged.
type UpdateVulnerabilityRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	Criticality  *string `json:"criticality" validate:"omitempty,oneof=High Medium Low"`
	Cwe          *string `json:"cwe"`
	SuggestedFix *string `json:"suggestedFix"`
	Status       *string `json:"status"`
}

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// StatesResponse describes the workflow for UI consumption
type StatesResponse struct {
	States      []string            `json:"states"`
	Transitions map[string][]string `json:"transitions"`
	Criticality []string            `json:"criticalityOptions"`
	CweOptions  []string            `json:"cweOptions"`
}
