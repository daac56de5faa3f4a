// Package model provides data models for the vulnerability manager.
package model

import (
	"time"
)

// Workflow states a vulnerability can be in
const (
	StatePendingFix    = "Pending Fix"
	StateInProgress    = "In Progress"
	StateUnderReview   = "Under Review"
	StateSolved        = "Solved"
	StateFalsePositive = "False Positive"
	StateDuplicate     = "Duplicate"
)

// States lists every valid workflow state
var States = []string{
	StatePendingFix,
	StateInProgress,
	StateUnderReview,
	StateSolved,
	StateFalsePositive,
	StateDuplicate,
}

// StateTransitions maps each state to the states it may move to.
// Solved, False Positive and Duplicate are terminal.
var StateTransitions = map[string][]string{
	StatePendingFix:    {StateInProgress, StateUnderReview, StateFalsePositive, StateDuplicate},
	StateInProgress:    {StateUnderReview, StateSolved, StateFalsePositive, StateDuplicate},
	StateUnderReview:   {StateSolved, StateFalsePositive, StateDuplicate},
	StateSolved:        {},
	StateFalsePositive: {},
	StateDuplicate:     {},
}

// CriticalityOptions lists the accepted criticality ratings
var CriticalityOptions = []string{"High", "Medium", "Low"}

// CWEOptions lists the CWE identifiers offered by the UI dropdown
var CWEOptions = []string{
	"CWE-22: Path Traversal",
	"CWE-78: OS Command Injection",
	"CWE-79: Cross-site Scripting (XSS)",
	"CWE-89: SQL Injection",
	"CWE-200: Information Exposure",
	"CWE-287: Improper Authentication",
	"CWE-306: Missing Authentication",
	"CWE-434: Unrestricted Upload",
	"CWE-521: Weak Password Requirements",
	"CWE-601: Open Redirect",
	"CWE-611: XXE",
	"CWE-918: SSRF",
}

// IsValidState checks if state is a member of the workflow state set
func IsValidState(state string) bool {
	_, ok := StateTransitions[state]
	return ok
}

// IsValidCriticality checks criticality against the accepted ratings
func IsValidCriticality(criticality string) bool {
	for _, c := range CriticalityOptions {
		if c == criticality {
			return true
		}
	}
	return false
}

// IsValidTransition reports whether a vulnerability may move from one state
// to another. A state never transitions to itself.
func IsValidTransition(from, to string) bool {
	for _, next := range StateTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStates returns the states reachable from the given state.
// Returns an empty slice for terminal or unknown states.
func NextStates(from string) []string {
	next := StateTransitions[from]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

// HistoryEntry records a single accepted status transition
type HistoryEntry struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	At   time.Time `json:"at"`
}

// Vulnerability represents a tracked security finding
type Vulnerability struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Criticality  string         `json:"criticality,omitempty"`
	Cwe          string         `json:"cwe,omitempty"`
	SuggestedFix string         `json:"suggestedFix,omitempty"`
	Status       string         `json:"status"`
	History      []HistoryEntry `json:"history"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// NewVulnerability creates a vulnerability with timestamps set and an empty
// transition history. The caller assigns the id.
func NewVulnerability(title, status string) *Vulnerability {
	now := time.Now().UTC()
	return &Vulnerability{
		Title:     title,
		Status:    status,
		History:   []HistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy so callers never share history slices
func (v *Vulnerability) Clone() Vulnerability {
	out := *v
	out.History = make([]HistoryEntry, len(v.History))
	copy(out.History, v.History)
	return out
}
