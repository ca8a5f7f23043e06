package fingerprint

// SchemeVersion identifies the derivation scheme: the catalog contents below
// plus the fixed draw order in Generate. Any change to either (adding a model,
// reordering a slice, reordering draws) changes every downstream fingerprint
// and requires bumping this value.
const SchemeVersion = 1

// Resolution is a display size in physical pixels, portrait orientation.
type Resolution struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// CatalogModel describes one real handset together with the OS versions and
// panel resolutions it actually shipped with. Draws stay inside a single entry,
// so an impossible model/OS or model/resolution pairing cannot be produced.
type CatalogModel struct {
	Manufacturer string
	Model        string
	OSVersions   []string
	Resolutions  []Resolution
}

// deviceCatalog is the closed set of identities the generator can emit.
// Ordering is part of the scheme; append-only, never reorder.
var deviceCatalog = []CatalogModel{
	{
		Manufacturer: "Google",
		Model:        "Pixel 6",
		OSVersions:   []string{"12", "13", "14"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Google",
		Model:        "Pixel 7",
		OSVersions:   []string{"13", "14"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Google",
		Model:        "Pixel 7a",
		OSVersions:   []string{"13", "14"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Samsung",
		Model:        "Galaxy S21",
		OSVersions:   []string{"11", "12", "13"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Samsung",
		Model:        "Galaxy S22",
		OSVersions:   []string{"12", "13", "14"},
		Resolutions:  []Resolution{{1080, 2340}},
	},
	{
		Manufacturer: "Samsung",
		Model:        "Galaxy A53",
		OSVersions:   []string{"12", "13"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Samsung",
		Model:        "Galaxy S21 Ultra",
		OSVersions:   []string{"11", "12", "13"},
		Resolutions:  []Resolution{{1440, 3200}, {1080, 2400}},
	},
	{
		Manufacturer: "Xiaomi",
		Model:        "Redmi Note 11",
		OSVersions:   []string{"11", "12", "13"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Xiaomi",
		Model:        "Poco X4 Pro",
		OSVersions:   []string{"11", "12"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "OnePlus",
		Model:        "OnePlus 9",
		OSVersions:   []string{"11", "12", "13"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "OnePlus",
		Model:        "Nord 2T",
		OSVersions:   []string{"12", "13"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
	{
		Manufacturer: "Motorola",
		Model:        "Moto G52",
		OSVersions:   []string{"12"},
		Resolutions:  []Resolution{{1080, 2400}},
	},
}

// locales is the closed set of BCP 47 tags the generator can emit.
var locales = []string{
	"en-US",
	"en-GB",
	"de-DE",
	"fr-FR",
	"es-ES",
	"pt-BR",
	"it-IT",
	"nl-NL",
	"pl-PL",
	"tr-TR",
	"id-ID",
	"ja-JP",
}

// Timezone offsets span the real-world UTC-12:00..UTC+14:00 range in
// 30-minute increments.
const (
	tzOffsetMinMinutes = -720
	tzOffsetMaxMinutes = 840
	tzOffsetStep       = 30
	tzOffsetSteps      = (tzOffsetMaxMinutes-tzOffsetMinMinutes)/tzOffsetStep + 1
)

// Catalog returns a copy of the device catalog, for callers that want to
// validate fingerprints or enumerate the identity space.
func Catalog() []CatalogModel {
	out := make([]CatalogModel, len(deviceCatalog))
	copy(out, deviceCatalog)
	return out
}

// Locales returns a copy of the locale catalog.
func Locales() []string {
	out := make([]string, len(locales))
	copy(out, locales)
	return out
}
