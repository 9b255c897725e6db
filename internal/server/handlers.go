package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/estimate"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/alexiusacademia/framecalc/internal/portal"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
)

type LayoutResponse struct {
	ID        uuid.UUID              `json:"id" msgpack:"id"`
	Request   portal.Request         `json:"request" msgpack:"request"`
	Column    catalog.SectionProfile `json:"column" msgpack:"column"`
	Rafter    catalog.SectionProfile `json:"rafter" msgpack:"rafter"`
	Geometry  *frame.Geometry        `json:"geometry" msgpack:"geometry"`
	Plan      *layout.Plan           `json:"plan" msgpack:"plan"`
	Elevation *layout.Elevation      `json:"elevation" msgpack:"elevation"`
}

type EstimateResponse struct {
	ID       uuid.UUID         `json:"id" msgpack:"id"`
	Request  portal.Request    `json:"request" msgpack:"request"`
	Estimate estimate.Estimate `json:"estimate" msgpack:"estimate"`
	Rates    estimate.Rates    `json:"rates" msgpack:"rates"`
}

type ProfilesResponse struct {
	Families []string                 `json:"families,omitempty" msgpack:"families,omitempty"`
	Family   string                   `json:"family,omitempty" msgpack:"family,omitempty"`
	Query    string                   `json:"query,omitempty" msgpack:"query,omitempty"`
	Profiles []catalog.SectionProfile `json:"profiles" msgpack:"profiles"`
}

// respond encodes v as msgpack when the client accepts it, JSON otherwise
func respond(c echo.Context, status int, v interface{}) error {
	if !strings.Contains(c.Request().Header.Get(echo.HeaderAccept), mimeMsgpack) {
		return c.JSON(status, v)
	}
	data, err := msgpack.Marshal(v)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, &APIError{
			Code:    "ENCODING_ERROR",
			Message: "failed to encode msgpack",
			Details: err.Error(),
		})
	}
	return c.Blob(status, mimeMsgpack, data)
}

// bindRequest decodes the body over the configured defaults
func (s *Server) bindRequest(c echo.Context) (portal.Request, error) {
	req := s.defaults
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), mimeMsgpack) {
		if err := c.Bind(&req); err != nil {
			return req, newBadRequestError("invalid request body", err)
		}
		return req, nil
	}
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return req, newBadRequestError("failed to read request body", err)
	}
	if len(data) > 0 {
		if err := msgpack.Unmarshal(data, &req); err != nil {
			return req, newBadRequestError("invalid msgpack body", err)
		}
	}
	return req, nil
}

func (s *Server) run(c echo.Context) (*portal.Result, error) {
	req, err := s.bindRequest(c)
	if err != nil {
		return nil, err
	}
	return s.designer.Run(req)
}

// HandleHealth returns the service status
func (s *Server) HandleHealth(c echo.Context) error {
	return respond(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

// HandleLayout computes the derived geometry with the plan and elevation views
func (s *Server) HandleLayout(c echo.Context) error {
	r, err := s.run(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, LayoutResponse{
		ID:        r.ID,
		Request:   r.Request,
		Column:    r.Column,
		Rafter:    r.Rafter,
		Geometry:  r.Geometry,
		Plan:      r.Plan,
		Elevation: r.Elevation,
	})
}

// HandleEstimate computes the quantity and cost estimate, rounded for display
func (s *Server) HandleEstimate(c echo.Context) error {
	r, err := s.run(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, EstimateResponse{
		ID:       r.ID,
		Request:  r.Request,
		Estimate: r.Estimate.Rounded(),
		Rates:    s.designer.Rates(),
	})
}

// HandleProfiles lists the families, or searches every family when q is set.
// A query shorter than catalog.MinSearchLength finds nothing.
func (s *Server) HandleProfiles(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return respond(c, http.StatusOK, ProfilesResponse{
			Families: s.catalog.Families(),
			Profiles: []catalog.SectionProfile{},
		})
	}
	found := s.catalog.Search(q)
	if found == nil {
		found = []catalog.SectionProfile{}
	}
	return respond(c, http.StatusOK, ProfilesResponse{
		Query:    q,
		Profiles: found,
	})
}

// HandleFamily returns one family table
func (s *Server) HandleFamily(c echo.Context) error {
	family := c.Param("family")
	profiles, err := s.catalog.Profiles(family)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, ProfilesResponse{
		Family:   family,
		Profiles: profiles,
	})
}
