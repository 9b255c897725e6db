// Package catalog holds the rolled steel section tables the frame is sized
// from. The built-in tables can be replaced by a YAML file of the same shape.
package catalog

import (
	_ "embed"
	"os"
	"strings"

	"github.com/ansel1/merry"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var (
	ErrProfileNotFound = merry.New("profile not found")
	ErrUnknownFamily   = merry.New("unknown profile family")
	ErrInvalidCatalog  = merry.New("invalid section catalog")
)

// MinSearchLength is the shortest query Search answers
const MinSearchLength = 2

//go:embed sections.yaml
var builtin []byte

// SectionProfile is one catalog row
type SectionProfile struct {
	Family            string  `json:"family" yaml:"-" msgpack:"family"`
	Designation       string  `json:"designation" yaml:"designation" msgpack:"designation"`
	HeightMillimeters float64 `json:"height_mm" yaml:"height_mm" msgpack:"height_mm"`
	MassPerMeterKg    float64 `json:"mass_kg_m" yaml:"mass_kg_m" msgpack:"mass_kg_m"`
}

// HeightMeters converts the section height to drawing units
func (s SectionProfile) HeightMeters() float64 {
	return s.HeightMillimeters / 1000
}

// Ref names a catalog row
type Ref struct {
	Family      string `json:"family" yaml:"family" msgpack:"family"`
	Designation string `json:"designation" yaml:"designation" msgpack:"designation"`
}

func (r Ref) String() string {
	return r.Family + "/" + r.Designation
}

// Lookup resolves a designation within a family
type Lookup interface {
	Lookup(family, designation string) (SectionProfile, error)
}

type family struct {
	Name     string           `yaml:"name"`
	Profiles []SectionProfile `yaml:"profiles"`
}

type file struct {
	Families []family `yaml:"families"`
}

// Catalog is read-only once built and safe for concurrent use
type Catalog struct {
	families []family
	byFamily map[string]int
}

// Builtin returns the embedded tables
func Builtin() (*Catalog, error) {
	c, err := Parse(builtin)
	if err != nil {
		return nil, merry.Prepend(err, "builtin catalog")
	}
	return c, nil
}

// Load reads a catalog file, or the builtin tables when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Prependf(err, "read catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, merry.Prependf(err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes and checks a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, ErrInvalidCatalog.Here().Append(err.Error())
	}

	var errs *multierror.Error
	fail := func(format string, args ...interface{}) {
		errs = multierror.Append(errs, ErrInvalidCatalog.Here().Appendf(format, args...))
	}

	c := &Catalog{byFamily: make(map[string]int)}
	for _, fam := range f.Families {
		key := normalize(fam.Name)
		if key == "" {
			fail("family without a name")
			continue
		}
		if _, dup := c.byFamily[key]; dup {
			fail("family %s listed twice", fam.Name)
			continue
		}
		seen := make(map[string]bool)
		for i := range fam.Profiles {
			p := &fam.Profiles[i]
			p.Family = fam.Name
			if seen[normalize(p.Designation)] {
				fail("%s: %s listed twice", fam.Name, p.Designation)
			}
			seen[normalize(p.Designation)] = true
			if !(p.HeightMillimeters > 0) || !(p.MassPerMeterKg > 0) {
				fail("%s: %q needs a positive height and mass", fam.Name, p.Designation)
			}
		}
		c.byFamily[key] = len(c.families)
		c.families = append(c.families, fam)
	}
	if len(c.families) == 0 {
		fail("no families")
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// normalize folds case and drops spaces, so "ipe360" matches "IPE 360"
func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

func (c *Catalog) family(name string) (*family, error) {
	i, ok := c.byFamily[normalize(name)]
	if !ok {
		return nil, ErrUnknownFamily.Here().Appendf("%q, have %s", name, strings.Join(c.Families(), ", "))
	}
	return &c.families[i], nil
}

// Lookup finds a designation in one family
func (c *Catalog) Lookup(family, designation string) (SectionProfile, error) {
	f, err := c.family(family)
	if err != nil {
		return SectionProfile{}, err
	}
	want := normalize(designation)
	for _, p := range f.Profiles {
		if normalize(p.Designation) == want {
			return p, nil
		}
	}
	return SectionProfile{}, ErrProfileNotFound.Here().Appendf("%q in %s", designation, f.Name)
}

// Find resolves a designation without naming its family. The first family
// in catalog order that has it wins.
func (c *Catalog) Find(designation string) (SectionProfile, error) {
	want := normalize(designation)
	for _, f := range c.families {
		for _, p := range f.Profiles {
			if normalize(p.Designation) == want {
				return p, nil
			}
		}
	}
	return SectionProfile{}, ErrProfileNotFound.Here().Appendf("%q in any family", designation)
}

// Families lists family names in catalog order
func (c *Catalog) Families() []string {
	names := make([]string, len(c.families))
	for i, f := range c.families {
		names[i] = f.Name
	}
	return names
}

// Profiles returns a copy of one family table
func (c *Catalog) Profiles(family string) ([]SectionProfile, error) {
	f, err := c.family(family)
	if err != nil {
		return nil, err
	}
	return append([]SectionProfile(nil), f.Profiles...), nil
}

// Search matches designations in every family by case-insensitive
// substring, trying the query both as typed and with spaces removed.
// Queries shorter than MinSearchLength return nothing.
func (c *Catalog) Search(query string) []SectionProfile {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLength {
		return nil
	}
	terms := []string{strings.ToLower(query)}
	if compact := strings.ReplaceAll(terms[0], " ", ""); compact != terms[0] {
		terms = append(terms, compact)
	}

	var out []SectionProfile
	for _, f := range c.families {
		for _, p := range f.Profiles {
			d := strings.ToLower(p.Designation)
			for _, t := range terms {
				if strings.Contains(d, t) {
					out = append(out, p)
					break
				}
			}
		}
	}
	return out
}
