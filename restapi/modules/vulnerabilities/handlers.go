// Package vulnerabilities provides CRUD handlers for vulnerability records.
package vulnerabilities

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/vulnmgt-backend/model"
	"github.com/ortelius/vulnmgt-backend/store"
)

var validate = validator.New()

// ListVulnerabilities returns records filtered by the status, criticality and
// search query parameters, most recently updated first
func ListVulnerabilities(s *store.VulnerabilityStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		spec := store.FilterSpec{
			Status:      c.Query("status"),
			Criticality: c.Query("criticality"),
			Search:      c.Query("search"),
		}
		return c.JSON(store.Filter(s.List(), spec))
	}
}

// GetVulnerability returns a single record by id
func GetVulnerability(s *store.VulnerabilityStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
		}

		vuln, err := s.Get(id)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(vuln)
	}
}

// CreateVulnerability validates the payload and stores a new record
func CreateVulnerability(s *store.VulnerabilityStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.CreateVulnerabilityRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data"})
		}

		vuln, err := s.Create(req)
		if err != nil {
			return storeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(vuln)
	}
}

// UpdateVulnerability merges the provided fields over an existing record
func UpdateVulnerability(s *store.VulnerabilityStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
		}

		var req model.UpdateVulnerabilityRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid data"})
		}

		vuln, err := s.Update(id, req)
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(vuln)
	}
}

// DeleteVulnerability permanently removes a record
func DeleteVulnerability(s *store.VulnerabilityStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
		}

		if err := s.Delete(id); err != nil {
			return storeError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListStates exposes the workflow definition so clients can render valid
// next-state choices without hardcoding the transition table
func ListStates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.StatesResponse{
			States:      model.States,
			Transitions: model.StateTransitions,
			Criticality: model.CriticalityOptions,
			CweOptions:  model.CWEOptions,
		})
	}
}

// storeError maps store error kinds onto HTTP statuses
func storeError(c *fiber.Ctx, err error) error {
	var validationErr *store.ValidationError
	var transitionErr *store.InvalidTransitionError

	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.As(err, &transitionErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": transitionErr.Error()})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
