package catalog

// Built-in catalogs. Deployments normally supply their own via the
// catalogs.*_path config keys; these defaults keep the tool usable out
// of the box and pin the declaration order the fuzzy tie-break relies on.

// DefaultModelCodes returns the built-in model-code catalog.
func DefaultModelCodes() *Catalog {
	return MustNew(
		Entry{Code: "21CF", Phrase: "iX xDrive50"},
		Entry{Code: "11CF", Phrase: "iX xDrive40"},
		Entry{Code: "21EM", Phrase: "X7 xDrive40i"},
		Entry{Code: "21EN", Phrase: "X7 xDrive40d"},
		Entry{Code: "DZ01", Phrase: "M8"},
		Entry{Code: "28FF", Phrase: "318i"},
	)
}

// DefaultAbbreviations returns the built-in option-abbreviation catalog.
// Later entries win fuzzy ties, so the more specific package variants
// are declared after their base phrases.
func DefaultAbbreviations() *Catalog {
	return MustNew(
		Entry{Code: "LL", Phrase: "Left-Hand Drive"},
		Entry{Code: "RL", Phrase: "Right-Hand Drive"},
		Entry{Code: "P337A", Phrase: "M Sport Package"},
		Entry{Code: "P33BA", Phrase: "M Sport Package Pro"},
		Entry{Code: "P7LGA", Phrase: "Comfort Package EU"},
		Entry{Code: "S402A", Phrase: "Panorama Glass Roof"},
		Entry{Code: "S407A", Phrase: "Panorama Glass Roof Sky Lounge"},
		Entry{Code: "S403A", Phrase: "Sunroof"},
	)
}
