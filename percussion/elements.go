package percussion

// FallbackKey is returned by KeyFor for element ids outside the table. It is
// the catalog key of a plain snare hit, used so malformed legacy notes still
// render as something plausible.
const FallbackKey = 38

// NumVariations is the number of variation columns per element.
const NumVariations = 3

type element struct {
	name       string
	variations [NumVariations]string
	keys       [NumVariations]int
}

// elements correlates the legacy element/variation classification with
// catalog keys. Row index is the element id, column index the variation id,
// neither may be reordered.
var elements = []element{
	{"Kick", [3]string{"hit", "", ""}, [3]int{35, 35, 35}},
	{"Snare", [3]string{"hit", "rim shot", "side stick"}, [3]int{38, 91, 37}},
	{"Cowbell low", [3]string{"hit", "tip", ""}, [3]int{99, 100, 99}},
	{"Cowbell medium", [3]string{"hit", "tip", ""}, [3]int{56, 100, 56}},
	{"Cowbell high", [3]string{"hit", "tip", ""}, [3]int{102, 103, 102}},
	{"Tom very low", [3]string{"hit", "", ""}, [3]int{43, 43, 43}},
	{"Tom low", [3]string{"hit", "", ""}, [3]int{45, 45, 45}},
	{"Tom medium", [3]string{"hit", "", ""}, [3]int{47, 47, 47}},
	{"Tom high", [3]string{"hit", "", ""}, [3]int{48, 48, 48}},
	{"Tom very high", [3]string{"hit", "", ""}, [3]int{50, 50, 50}},
	{"Hihat", [3]string{"closed", "half", "open"}, [3]int{42, 92, 46}},
	{"Pedal hihat", [3]string{"hit", "", ""}, [3]int{44, 44, 44}},
	{"Crash medium", [3]string{"hit", "choke", ""}, [3]int{57, 98, 57}},
	{"Crash high", [3]string{"hit", "choke", ""}, [3]int{49, 97, 49}},
	{"Splash", [3]string{"hit", "choke", ""}, [3]int{55, 95, 55}},
	{"Ride", [3]string{"middle", "edge", "bell"}, [3]int{51, 93, 127}},
	{"China", [3]string{"hit", "choke", ""}, [3]int{52, 96, 52}},
}

// NumElements is the number of legacy element categories.
func NumElements() int {
	return len(elements)
}

// KeyFor returns the catalog key of a legacy element/variation pair.
//
// Element ids outside the table yield FallbackKey. Variation ids outside
// 0..2 are clamped to 0, imported files are known to carry garbage there.
func KeyFor(element, variation int) int {
	if element < 0 || element >= len(elements) {
		tracer().Debugf("element %d out of range, falling back to key %d", element, FallbackKey)
		return FallbackKey
	}
	if variation < 0 || variation >= NumVariations {
		variation = 0
	}
	return elements[element].keys[variation]
}

// ElementName returns the instrument name of a legacy element id, or "" if
// the id is unknown.
func ElementName(element int) string {
	if element < 0 || element >= len(elements) {
		return ""
	}
	return elements[element].name
}

// VariationName returns the strike name of a variation, or "" for unknown
// ids and variations the format leaves unused.
func VariationName(element, variation int) string {
	if element < 0 || element >= len(elements) || variation < 0 || variation >= NumVariations {
		return ""
	}
	return elements[element].variations[variation]
}
