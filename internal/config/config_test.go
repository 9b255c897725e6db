package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framecalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 5, c.Building.Portals)
	assert.Equal(t, "IPE 360", c.Sections.Column.Designation)
	assert.Equal(t, 2.3, c.Layout.GussetDistance)
	assert.Equal(t, 1200.0, c.Costs.Material)
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
building:
  portals: 7
  width: 24
sections:
  column:
    family: HEA
    designation: HEA 300
costs:
  material: 1350
server:
  shutdown_timeout: 10s
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, c.Building.Portals)
	assert.Equal(t, 24.0, c.Building.Width)
	assert.Equal(t, 12.0, c.Building.Pitch, "untouched keys keep defaults")
	assert.Equal(t, catalog.Ref{Family: "HEA", Designation: "HEA 300"}, c.Sections.Column)
	assert.Equal(t, catalog.Ref{Family: "IPE", Designation: "IPE 360"}, c.Sections.Rafter)
	assert.Equal(t, 1350.0, c.Costs.Material)
	assert.Equal(t, 900.0, c.Costs.Fabrication)
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout)
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestLoadReportsEveryProblem(t *testing.T) {
	path := writeConfig(t, `
building:
  portals: 2
  pitch: 0
sections:
  rafter:
    designation: ""
`)
	_, err := Load(path)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
	assert.True(t, merry.Is(err, frame.ErrInvalidParameter))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "building: [1, 2"))
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	c := Default()
	c.Building.Width = 21.5
	c.Catalog.Path = "sections.yaml"

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, c.Write(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
