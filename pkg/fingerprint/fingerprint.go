// Package fingerprint derives complete, internally consistent synthetic device
// identities from stable device keys. The derivation is a pure function: the
// same key always yields the same fingerprint, across calls, restarts and
// machines, with no caller-visible randomness. Persistence of the key-to-
// fingerprint mapping is the embedding orchestrator's concern.
package fingerprint

import (
	"fmt"
	"strings"

	"github.com/oranolio956/qa-automation-framework-sub005/pkg/rng"
)

// Fingerprint is a synthetic but internally consistent hardware/software
// identity for one automated device. It is an immutable value object.
type Fingerprint struct {
	DeviceKey             string     `json:"device_key"`
	Manufacturer          string     `json:"manufacturer"`
	Model                 string     `json:"model"`
	OSVersion             string     `json:"os_version"`
	Resolution            Resolution `json:"resolution"`
	Locale                string     `json:"locale"`
	TimezoneOffsetMinutes int32      `json:"timezone_offset_minutes"`
	DerivedSeed           uint64     `json:"derived_seed"`
}

// Generate computes the fingerprint for the given device key. It is total:
// any string is a valid key, and a key that is empty after trimming falls back
// to the empty-string key (still deterministic).
//
// The draw order below is part of scheme version 1 and must not be reordered:
//
//	1. device model (index into the catalog)
//	2. OS version (index into the chosen model's compatibility list)
//	3. display resolution (index into the chosen model's panel list)
//	4. locale (index into the locale catalog)
//	5. timezone offset (UTC-12:00..UTC+14:00 in 30-minute steps)
func Generate(deviceKey string) Fingerprint {
	key := strings.TrimSpace(deviceKey)
	seed := rng.SeedFromKey(key)
	r := rng.New(seed)

	model := deviceCatalog[r.Intn(len(deviceCatalog))]
	osVersion := model.OSVersions[r.Intn(len(model.OSVersions))]
	resolution := model.Resolutions[r.Intn(len(model.Resolutions))]
	locale := locales[r.Intn(len(locales))]
	tzOffset := int32(tzOffsetMinMinutes + tzOffsetStep*r.Intn(tzOffsetSteps))

	return Fingerprint{
		DeviceKey:             key,
		Manufacturer:          model.Manufacturer,
		Model:                 model.Model,
		OSVersion:             osVersion,
		Resolution:            resolution,
		Locale:                locale,
		TimezoneOffsetMinutes: tzOffset,
		DerivedSeed:           seed,
	}
}

// String renders the fingerprint in the adb getprop style the device driver
// logs identities in.
func (f Fingerprint) String() string {
	sign := "+"
	m := f.TimezoneOffsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s %s (Android %s, %dx%d, %s, UTC%s%02d:%02d)",
		f.Manufacturer, f.Model, f.OSVersion,
		f.Resolution.Width, f.Resolution.Height, f.Locale, sign, m/60, m%60)
}
