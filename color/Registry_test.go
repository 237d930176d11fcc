package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"dcip3", "ntsc", "rec2020", "rec709", "srgb"}, r.Names())

	srgb, err := r.Lookup("sRGB")
	require.NoError(t, err)
	assert.Equal(t, REF_SRGB, srgb.Name)
	assert.Equal(t, "sRGB", srgb.Label)
	assert.Equal(t, WP_D65, srgb.White)
	assert.InDelta(t, 0.11205, srgb.Area(), 1e-12)

	ntsc, err := r.Lookup(REF_NTSC)
	require.NoError(t, err)
	assert.Equal(t, WP_C, ntsc.White)

	rec709, err := r.Lookup(REF_REC709)
	require.NoError(t, err)
	assert.Equal(t, srgb.Primaries, rec709.Primaries)
}

func TestRegistryLookupNotFound(t *testing.T) {
	_, err := DefaultRegistry().Lookup("adobergb")
	require.ErrorIs(t, err, ErrReferenceNotFound)
	assert.Contains(t, err.Error(), "adobergb")

	var r *Registry
	_, err = r.Lookup(REF_SRGB)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestNewRegistryRejectsInvalidReference(t *testing.T) {

	for _, tc := range []struct {
		name  string
		gamut ReferenceGamut
	}{
		{
			name: "no name",
			gamut: ReferenceGamut{
				Primaries: NewCIEPrimaries(NewCIEXY(0.64, 0.33), NewCIEXY(0.30, 0.60), NewCIEXY(0.15, 0.06)),
				White:     WP_D65,
			},
		},
		{
			name: "degenerate",
			gamut: ReferenceGamut{
				Name:      "flat",
				Primaries: NewCIEPrimaries(NewCIEXY(0.1, 0.1), NewCIEXY(0.2, 0.2), NewCIEXY(0.3, 0.3)),
				White:     WP_D65,
			},
		},
		{
			name: "invalid white",
			gamut: ReferenceGamut{
				Name:      "bad",
				Primaries: NewCIEPrimaries(NewCIEXY(0.64, 0.33), NewCIEXY(0.30, 0.60), NewCIEXY(0.15, 0.06)),
				White:     NewCIEXY(0.9, 0.9),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.gamut)
			assert.Error(t, err)
		})
	}
}

func TestLoadRegistry(t *testing.T) {
	in := `
adobergb:
  label: Adobe RGB (1998)
  primaries:
    red:   {x: 0.64, y: 0.33}
    green: {x: 0.21, y: 0.71}
    blue:  {x: 0.15, y: 0.06}
  white: {x: 0.3127, y: 0.3290}
srgb:
  primaries:
    red:   {x: 0.65, y: 0.33}
    green: {x: 0.30, y: 0.60}
    blue:  {x: 0.15, y: 0.06}
  white: {x: 0.3127, y: 0.3290}
`
	loaded, err := LoadRegistry(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"adobergb", "srgb"}, loaded.Names())

	adobe, err := loaded.Lookup("adobergb")
	require.NoError(t, err)
	assert.Equal(t, "Adobe RGB (1998)", adobe.Label)
	assert.Equal(t, NewCIEXY(0.21, 0.71), adobe.Primaries.Green)

	merged := DefaultRegistry().Merge(loaded)
	assert.Len(t, merged.Names(), 6)
	srgb, err := merged.Lookup(REF_SRGB)
	require.NoError(t, err)
	assert.Equal(t, 0.65, srgb.Primaries.Red.X)
	assert.Equal(t, "srgb", srgb.Label)

	// originals untouched
	orig, err := DefaultRegistry().Lookup(REF_SRGB)
	require.NoError(t, err)
	assert.Equal(t, 0.64, orig.Primaries.Red.X)
}

func TestLoadRegistryErrors(t *testing.T) {
	empty, err := LoadRegistry(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Names())

	_, err = LoadRegistry(strings.NewReader("srgb: [not, a, gamut]"))
	assert.Error(t, err)

	_, err = LoadRegistry(strings.NewReader("bad:\n  white: {x: 2, y: 0}\n"))
	assert.Error(t, err)
}
