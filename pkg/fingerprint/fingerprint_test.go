package fingerprint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	first := Generate("emulator-5554")
	for i := 0; i < 1000; i++ {
		require.Equal(t, first, Generate("emulator-5554"), "fingerprint drifted on call %d", i)
	}
}

func TestGenerateDistinctKeys(t *testing.T) {
	a := Generate("emulator-5554")
	b := Generate("emulator-5556")
	assert.NotEqual(t, a.DerivedSeed, b.DerivedSeed)
}

func TestGenerateEmptyAndWhitespaceKeys(t *testing.T) {
	empty := Generate("")
	assert.Equal(t, empty, Generate("   "), "whitespace-only key must fall back to the empty key")
	assert.Equal(t, empty, Generate("\t\n"))
	assert.Empty(t, empty.DeviceKey)
	assert.NotEmpty(t, empty.Model)
}

func TestGenerateTrimsKey(t *testing.T) {
	assert.Equal(t, Generate("device-a"), Generate("  device-a  "))
}

// TestGenerateInternalConsistency checks, over a large key corpus, that every
// generated identity is a member of the catalog: the OS version and resolution
// always belong to the chosen model's own lists.
func TestGenerateInternalConsistency(t *testing.T) {
	byModel := make(map[string]CatalogModel, len(deviceCatalog))
	for _, m := range deviceCatalog {
		byModel[m.Model] = m
	}
	validLocales := make(map[string]bool, len(locales))
	for _, l := range locales {
		validLocales[l] = true
	}

	for i := 0; i < 5000; i++ {
		fp := Generate(fmt.Sprintf("corpus-device-%04d", i))

		m, ok := byModel[fp.Model]
		require.True(t, ok, "model %q not in catalog", fp.Model)
		require.Equal(t, m.Manufacturer, fp.Manufacturer)
		require.Contains(t, m.OSVersions, fp.OSVersion,
			"impossible pairing: %s on %s", fp.OSVersion, fp.Model)
		require.Contains(t, m.Resolutions, fp.Resolution,
			"impossible panel %dx%d on %s", fp.Resolution.Width, fp.Resolution.Height, fp.Model)
		require.True(t, validLocales[fp.Locale], "locale %q not in catalog", fp.Locale)
	}
}

func TestGenerateTimezoneRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		fp := Generate(fmt.Sprintf("tz-device-%d", i))
		assert.GreaterOrEqual(t, fp.TimezoneOffsetMinutes, int32(-720))
		assert.LessOrEqual(t, fp.TimezoneOffsetMinutes, int32(840))
		assert.Zero(t, fp.TimezoneOffsetMinutes%30, "offset %d is not a 30-minute step", fp.TimezoneOffsetMinutes)
	}
}

func TestCatalogAccessorsCopy(t *testing.T) {
	cat := Catalog()
	require.NotEmpty(t, cat)
	cat[0].Model = "mutated"
	assert.NotEqual(t, "mutated", deviceCatalog[0].Model, "Catalog() must return a copy")

	locs := Locales()
	require.NotEmpty(t, locs)
	locs[0] = "xx-XX"
	assert.NotEqual(t, "xx-XX", locales[0], "Locales() must return a copy")
}

func TestCatalogEntriesWellFormed(t *testing.T) {
	for _, m := range deviceCatalog {
		assert.NotEmpty(t, m.Manufacturer)
		assert.NotEmpty(t, m.Model)
		assert.NotEmpty(t, m.OSVersions, "%s has no OS versions", m.Model)
		assert.NotEmpty(t, m.Resolutions, "%s has no resolutions", m.Model)
		for _, r := range m.Resolutions {
			assert.Greater(t, r.Width, uint32(0))
			assert.Greater(t, r.Height, r.Width, "catalog resolutions are portrait")
		}
	}
}

func TestStringIncludesIdentity(t *testing.T) {
	fp := Generate("emulator-5554")
	s := fp.String()
	assert.Contains(t, s, fp.Model)
	assert.Contains(t, s, fp.OSVersion)
	assert.Contains(t, s, fp.Locale)
}
