package gas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModOfStandardGases(t *testing.T) {
	assert.InDelta(t, 6.7, Air.Mod(1.4), 0.01)
	assert.InDelta(t, 3.2, EAN50.Mod(1.6), 1e-9)
	assert.InDelta(t, 1.6, Oxygen.Mod(1.6), 1e-9)
}

func TestNitrogenIsTheRest(t *testing.T) {
	assert.InDelta(t, 0.4, Trimix3525.FN2(), 1e-9)
	assert.InDelta(t, 0.791, Air.FN2(), 1e-9)
	assert.InDelta(t, 0.0, Oxygen.FN2(), 1e-9)
}

func TestCeiling(t *testing.T) {
	// hyperoxic gas is breathable at surface
	assert.Equal(t, 1.0, Air.Ceiling(1))
	assert.InDelta(t, 1.8, Trimix1070.Ceiling(1), 1e-9)
	assert.InDelta(t, 1.5, Trimix1260.Ceiling(1), 1e-9)
}

func TestEnd(t *testing.T) {
	// helium is not narcotic
	assert.InDelta(t, 2, Trimix2525.End(4, false), 1e-9)
	assert.InDelta(t, 3, Trimix2525.End(4, true), 1e-9)
	assert.InDelta(t, 4, Air.End(4, true), 1e-9)
}

func TestBestMix(t *testing.T) {
	assert.InDelta(t, 0.4, BestMix(1.6, 4), 1e-9)
	assert.Equal(t, 1.0, BestMix(1.6, 1))
}

func TestEquivalentAirDepth(t *testing.T) {
	// EAN32 at 4 bar: 4 * 0.68 / 0.791
	assert.InDelta(t, 3.4386, EquivalentAirDepth(0.32, 4), 0.0001)
}

func TestContentCode(t *testing.T) {
	assert.Equal(t, New(0.32, 0).ContentCode(), EAN32.ContentCode())
	assert.NotEqual(t, EAN32.ContentCode(), EAN36.ContentCode())
	assert.NotEqual(t, New(0.21, 0.35).ContentCode(), New(0.35, 0.21).ContentCode())
	assert.Equal(t, int64(20900000), Air.ContentCode())
}

func TestCompositionEquals(t *testing.T) {
	assert.True(t, Air.CompositionEquals(New(0.209, 0)))
	assert.False(t, Air.CompositionEquals(New(0.21, 0)))
}

func TestNames(t *testing.T) {
	cases := map[string]Gas{
		"Air":    Air,
		"Oxygen": Oxygen,
		"EAN32":  EAN32,
		"EAN50":  EAN50,
		"18/45":  Trimix1845,
		"10/70":  Trimix1070,
	}

	for name, g := range cases {
		assert.Equal(t, name, g.Name(), name)
	}
	assert.Equal(t, "", New(0, 0).Name())
}

func TestByName(t *testing.T) {
	found, ok := ByName("EAN36")
	require.True(t, ok)
	assert.Equal(t, EAN36, found)

	found, ok = ByName(" ean28 ")
	require.True(t, ok)
	assert.InDelta(t, 0.28, found.FO2, 1e-9)

	found, ok = ByName("20/40")
	require.True(t, ok)
	assert.InDelta(t, 0.2, found.FO2, 1e-9)
	assert.InDelta(t, 0.4, found.FHe, 1e-9)
}

func TestByNameUnknown(t *testing.T) {
	for _, name := range []string{"", "Nitrox", "EAN00", "60/50", "21/00", "EAN1"} {
		_, ok := ByName(name)
		assert.False(t, ok, name)
	}
}

func TestFromPercents(t *testing.T) {
	assert.Equal(t, Air, FromPercents(21, 0))
	assert.Equal(t, Air.ContentCode(), FromPercents(21, 0).ContentCode())
	assert.Equal(t, EAN32, FromPercents(32, 0))
	assert.Equal(t, Oxygen, FromPercents(100, 0))
	assert.Equal(t, Trimix1845, FromPercents(18, 45))
	assert.Equal(t, New(0.28, 0), FromPercents(28, 0))
	assert.Equal(t, New(0.215, 0), FromPercents(21.5, 0))
}

func TestCatalog(t *testing.T) {
	assert.Len(t, AllNames(), 13)
	assert.Equal(t, []string{"Air", "EAN32", "EAN36", "EAN38", "EAN50", "Oxygen"}, NitroxNames())

	for _, name := range AllNames() {
		found, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, found.Name())
	}
}
