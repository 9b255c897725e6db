package server

import (
	"fmt"
	"net/http"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/vecmath"
	"github.com/ansel1/merry"
	"github.com/labstack/echo/v4"
)

// APIError is the body of every failed response
type APIError struct {
	Status  int    `json:"-" msgpack:"-"`
	Code    string `json:"code" msgpack:"code"`
	Message string `json:"message" msgpack:"message"`
	Details string `json:"details,omitempty" msgpack:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBadRequestError(message string, cause error) *APIError {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// apiError maps the calculation error kinds to HTTP statuses
func apiError(err error) *APIError {
	switch e := err.(type) {
	case *APIError:
		return e
	case *echo.HTTPError:
		return &APIError{
			Status:  e.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprint(e.Message),
		}
	}

	switch {
	case merry.Is(err, catalog.ErrProfileNotFound, catalog.ErrUnknownFamily):
		return &APIError{
			Status:  http.StatusNotFound,
			Code:    "NOT_FOUND",
			Message: err.Error(),
		}
	case merry.Is(err, frame.ErrInvalidParameter):
		return &APIError{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	case merry.Is(err, frame.ErrDivisionByZero, vecmath.ErrDegenerateVector):
		return &APIError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "UNBUILDABLE",
			Message: err.Error(),
		}
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
		Details: err.Error(),
	}
}

// errorHandler replaces echo's default so every failure carries an APIError
// body, encoded the way the client asked for.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	apiErr := apiError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		s.log.PrintErr(err, "method", c.Request().Method, "path", c.Path())
	}
	if err := respond(c, apiErr.Status, apiErr); err != nil {
		s.log.PrintErr(err, "path", c.Path())
	}
}
