package color

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kpfaulkner/gamutcheck/util"
	"gopkg.in/yaml.v3"
)

// Registry is an immutable lookup of reference gamuts by name. Build one with
// DefaultRegistry, NewRegistry or LoadRegistry and hand it to the analyser.
type Registry struct {
	gamuts map[string]ReferenceGamut
}

// NewRegistry validates every gamut: primaries and white must be valid
// chromaticities and the primaries must span a non zero area.
func NewRegistry(gamuts ...ReferenceGamut) (*Registry, error) {
	r := &Registry{gamuts: make(map[string]ReferenceGamut, len(gamuts))}
	for _, g := range gamuts {
		if err := validateReference(g); err != nil {
			return nil, err
		}
		g.Name = normaliseName(g.Name)
		r.gamuts[g.Name] = g
	}
	return r, nil
}

// DefaultRegistry holds ntsc, srgb, dcip3, rec709 and rec2020.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultReferenceGamuts()...)
	if err != nil {
		panic("built in reference gamuts are invalid: " + err.Error())
	}
	return r
}

// LoadRegistry reads reference gamuts from YAML keyed by name:
//
//	ebu:
//	  label: EBU Tech 3213
//	  primaries:
//	    red:   {x: 0.64, y: 0.33}
//	    green: {x: 0.29, y: 0.60}
//	    blue:  {x: 0.15, y: 0.06}
//	  white: {x: 0.3127, y: 0.3290}
func LoadRegistry(in io.Reader) (*Registry, error) {
	var raw map[string]ReferenceGamut
	if err := yaml.NewDecoder(in).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return NewRegistry()
		}
		return nil, fmt.Errorf("decoding reference gamuts: %w", err)
	}

	gamuts := make([]ReferenceGamut, 0, len(raw))
	for name, g := range raw {
		g.Name = name
		if g.Label == "" {
			g.Label = name
		}
		gamuts = append(gamuts, g)
	}
	return NewRegistry(gamuts...)
}

// Lookup returns the named gamut or a ReferenceNotFoundError.
func (r *Registry) Lookup(name string) (ReferenceGamut, error) {
	if r != nil {
		if g, ok := r.gamuts[normaliseName(name)]; ok {
			return g, nil
		}
	}
	return ReferenceGamut{}, &ReferenceNotFoundError{Name: name}
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.gamuts))
	for n := range r.gamuts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new registry with other's entries added on top of r's.
func (r *Registry) Merge(other *Registry) *Registry {
	merged := &Registry{gamuts: make(map[string]ReferenceGamut, len(r.gamuts)+len(other.gamuts))}
	for n, g := range r.gamuts {
		merged.gamuts[n] = g
	}
	for n, g := range other.gamuts {
		merged.gamuts[n] = g
	}
	return merged
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateReference(g ReferenceGamut) error {
	if normaliseName(g.Name) == "" {
		return errors.New("reference gamut has no name")
	}
	for _, c := range []struct {
		channel Channel
		xy      CIEXY
	}{
		{Red, g.Primaries.Red},
		{Green, g.Primaries.Green},
		{Blue, g.Primaries.Blue},
		{White, g.White},
	} {
		if err := ValidateXY(c.channel, c.xy.X, c.xy.Y); err != nil {
			return fmt.Errorf("reference gamut %s: %w", g.Name, err)
		}
	}
	if util.AlmostEqual(g.Area(), 0, util.Epsilon) {
		return fmt.Errorf("reference gamut %s has degenerate primaries", g.Name)
	}
	return nil
}
