package config

import (
	"os"
	"time"

	"github.com/alexiusacademia/framecalc/internal/catalog"
	"github.com/alexiusacademia/framecalc/internal/estimate"
	"github.com/alexiusacademia/framecalc/internal/frame"
	"github.com/alexiusacademia/framecalc/internal/layout"
	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Building frame.Params   `yaml:"building"`
	Sections Sections       `yaml:"sections"`
	Frame    frame.Options  `yaml:"frame"`
	Layout   layout.Options `yaml:"layout"`
	Costs    estimate.Rates `yaml:"costs"`
	Catalog  Catalog        `yaml:"catalog"`
	Server   Server         `yaml:"server"`
}

// Sections selects the column and rafter profiles
type Sections struct {
	Column catalog.Ref `yaml:"column" json:"column" msgpack:"column"`
	Rafter catalog.Ref `yaml:"rafter" json:"rafter" msgpack:"rafter"`
}

type Catalog struct {
	// Path of a YAML section catalog; empty uses the builtin tables
	Path string `yaml:"path"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	BodyLimit       string        `yaml:"body_limit"` // echo size notation, e.g. 64K
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, merry.Prependf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, merry.Prependf(err, "parse config %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, merry.Prependf(err, "config %s", path)
	}
	return c, nil
}

// Write stores c as YAML
func (c Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, merry.Wrap(err)
	}
	return data, nil
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs *multierror.Error
	errs = multierror.Append(errs,
		c.Building.Validate(),
		c.Sections.Validate(),
		c.Frame.Validate(),
		c.Layout.Validate(),
		c.Costs.Validate(),
	)
	if c.Server.Addr == "" {
		errs = multierror.Append(errs, frame.ErrInvalidParameter.Here().Append("server address is empty"))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = multierror.Append(errs, frame.ErrInvalidParameter.Here().Appendf("negative shutdown timeout %v", c.Server.ShutdownTimeout))
	}
	return errs.ErrorOrNil()
}

func (s Sections) Validate() error {
	var errs *multierror.Error
	for _, x := range []struct {
		role string
		catalog.Ref
	}{
		{"column", s.Column},
		{"rafter", s.Rafter},
	} {
		if x.Family == "" || x.Designation == "" {
			errs = multierror.Append(errs, frame.ErrInvalidParameter.Here().Appendf("%s section needs a family and a designation", x.role))
		}
	}
	return errs.ErrorOrNil()
}
