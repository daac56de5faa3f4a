// Package store - in-memory source of truth for vulnerability records
package store

import (
	"sync"
	"time"

	"github.com/ortelius/vulnmgt-backend/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = InitLogger() // setup the logger

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

// VulnerabilityStore owns all vulnerability records for the lifetime of the
// process. A mutex serializes mutations so concurrent requests never observe
// a partially applied write. Ids are assigned from a counter that only moves
// forward, so a deleted id is never handed out again.
type VulnerabilityStore struct {
	mu      sync.RWMutex
	records map[int]*model.Vulnerability
	order   []int // live ids in insertion order
	nextID  int
}

// NewVulnerabilityStore creates an empty store
func NewVulnerabilityStore() *VulnerabilityStore {
	return &VulnerabilityStore{
		records: make(map[int]*model.Vulnerability),
		nextID:  1,
	}
}

// Create validates the request, assigns a fresh id and stores the record.
// Returns a copy of the stored record.
func (s *VulnerabilityStore) Create(req model.CreateVulnerabilityRequest) (model.Vulnerability, error) {
	if err := validateCreate(req); err != nil {
		return model.Vulnerability{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vuln := model.NewVulnerability(req.Title, req.Status)
	vuln.ID = s.nextID
	s.nextID++
	vuln.Description = req.Description
	vuln.Criticality = req.Criticality
	vuln.Cwe = req.Cwe
	vuln.SuggestedFix = req.SuggestedFix

	s.records[vuln.ID] = vuln
	s.order = append(s.order, vuln.ID)

	logger.Info("vulnerability created",
		zap.Int("id", vuln.ID),
		zap.String("title", vuln.Title),
		zap.String("status", vuln.Status))

	return vuln.Clone(), nil
}

// Get returns a copy of the record with the given id
func (s *VulnerabilityStore) Get(id int) (model.Vulnerability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vuln, ok := s.records[id]
	if !ok {
		return model.Vulnerability{}, ErrNotFound
	}
	return vuln.Clone(), nil
}

// List returns copies of all records in insertion order
func (s *VulnerabilityStore) List() []model.Vulnerability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Vulnerability, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].Clone())
	}
	return out
}

// Update merges the provided fields over the existing record. Omitted fields
// are left unchanged. A status change is validated against the workflow and
// appended to the record's history; setting the current status again is a
// no-op on the history.
func (s *VulnerabilityStore) Update(id int, req model.UpdateVulnerabilityRequest) (model.Vulnerability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vuln, ok := s.records[id]
	if !ok {
		return model.Vulnerability{}, ErrNotFound
	}

	if err := validateUpdate(req); err != nil {
		return model.Vulnerability{}, err
	}

	statusChanged := req.Status != nil && *req.Status != vuln.Status
	if statusChanged && !model.IsValidTransition(vuln.Status, *req.Status) {
		return model.Vulnerability{}, &InvalidTransitionError{From: vuln.Status, To: *req.Status}
	}

	now := time.Now().UTC()
	if !now.After(vuln.UpdatedAt) {
		// UpdatedAt must strictly increase even on coarse clocks
		now = vuln.UpdatedAt.Add(time.Nanosecond)
	}

	if req.Title != nil {
		vuln.Title = *req.Title
	}
	if req.Description != nil {
		vuln.Description = *req.Description
	}
	if req.Criticality != nil {
		vuln.Criticality = *req.Criticality
	}
	if req.Cwe != nil {
		vuln.Cwe = *req.Cwe
	}
	if req.SuggestedFix != nil {
		vuln.SuggestedFix = *req.SuggestedFix
	}
	if statusChanged {
		vuln.History = append(vuln.History, model.HistoryEntry{
			From: vuln.Status,
			To:   *req.Status,
			At:   now,
		})
		vuln.Status = *req.Status
	}
	vuln.UpdatedAt = now

	logger.Info("vulnerability updated",
		zap.Int("id", vuln.ID),
		zap.String("status", vuln.Status),
		zap.Bool("status_changed", statusChanged))

	return vuln.Clone(), nil
}

// Delete permanently removes the record. The id is not reused.
func (s *VulnerabilityStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	for i, liveID := range s.order {
		if liveID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	logger.Info("vulnerability deleted", zap.Int("id", id))
	return nil
}

// Count returns the number of live records
func (s *VulnerabilityStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func validateCreate(req model.CreateVulnerabilityRequest) error {
	if req.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !model.IsValidState(req.Status) {
		return &ValidationError{Field: "status", Reason: "unknown state " + req.Status}
	}
	if req.Criticality != "" && !model.IsValidCriticality(req.Criticality) {
		return &ValidationError{Field: "criticality", Reason: "must be High, Medium or Low"}
	}
	return nil
}

func validateUpdate(req model.UpdateVulnerabilityRequest) error {
	if req.Title != nil && *req.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if req.Status != nil && !model.IsValidState(*req.Status) {
		return &ValidationError{Field: "status", Reason: "unknown state " + *req.Status}
	}
	if req.Criticality != nil && *req.Criticality != "" && !model.IsValidCriticality(*req.Criticality) {
		return &ValidationError{Field: "criticality", Reason: "must be High, Medium or Low"}
	}
	return nil
}
