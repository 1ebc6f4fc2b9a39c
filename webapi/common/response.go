// Package common holds the response envelope, problem-details rendering, and
// request binding shared by the three service APIs.
package common

import (
	"github.com/bankingsystem/services/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the standard success envelope for operations that return a
// message rather than an entity (currently only deletes).
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// ErrorResponseJSON writes a problem-details response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	return c.Status(status).JSON(pd, "application/problem+json")
}

// DomainErrorJSON renders a service error: business errors get their kind as
// title, a catalog message as detail, and the mapped status; anything else is
// a 500 with no internals leaked.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	kind, ok := domain.KindOf(err)
	if !ok {
		return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", nil)
	}
	return ErrorResponseJSON(c, StatusForError(err), kind.String(), MessageFor(err))
}

// StatusForError maps error kinds to HTTP statuses. The original surfaced
// everything as 400; not-found and conflict statuses are a documented
// improvement.
func StatusForError(err error) int {
	kind, ok := domain.KindOf(err)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch kind {
	case domain.NotFound:
		return fiber.StatusNotFound
	case domain.DuplicateKey, domain.DuplicateRelation, domain.HasDependents:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure the 400 response is already written; the
// returned pointer is nil and the error is the write result, so handlers can
// return it without triggering the app error handler.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
