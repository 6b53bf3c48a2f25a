package percussion

import "github.com/jsphweid/percmap/model"

// Classify tells apart the two meanings of a note's articulation number.
// Numbers addressing an entry of the override list are overrides, everything
// else is taken as a catalog key.
//
// This mirrors the file format's own convention. It would misread catalog
// keys on a track with 128 or more custom articulations.
func Classify(index int, overrides []model.Articulation) model.ArticulationRef {
	if index >= 0 && index < len(overrides) {
		return model.OverrideRef(index)
	}
	return model.CatalogKeyRef(index)
}

// ResolveRef returns the articulation ref points to. Override positions
// outside overrides resolve to nothing.
func ResolveRef(ref model.ArticulationRef, overrides []model.Articulation) (model.Articulation, bool) {
	if ref.Kind == model.RefOverride {
		if ref.Position < 0 || ref.Position >= len(overrides) {
			return model.Articulation{}, false
		}
		return overrides[ref.Position], true
	}
	return Lookup(ref.Key)
}

// Articulation resolves the notation of a percussion note, preferring the
// custom articulations of the note's track over the catalog.
func Articulation(n *model.Note) (model.Articulation, bool) {
	if n == nil {
		return model.Articulation{}, false
	}
	overrides := n.Overrides()
	return ResolveRef(Classify(n.PercussionArticulation, overrides), overrides)
}

// ByKey looks up a catalog articulation. The key is a MIDI input number, it
// need not equal the OutputPitch of the articulation returned.
func ByKey(key int) (model.Articulation, bool) {
	return Lookup(key)
}

// ElementAndVariation returns the legacy classification of a note: the first
// element/variation pair, in table order, whose articulation sounds at the
// same pitch as the note's. It returns (-1, -1) if the note does not resolve
// or no pair matches.
func ElementAndVariation(n *model.Note) (int, int) {
	a, ok := Articulation(n)
	if !ok {
		return -1, -1
	}
	e, v := ElementAndVariationForPitch(a.OutputPitch)
	if e < 0 {
		tracer().Debugf("no legacy element sounds at pitch %d", a.OutputPitch)
	}
	return e, v
}

// ElementAndVariationForPitch is ElementAndVariation for an already resolved
// output pitch. It does not trace misses.
func ElementAndVariationForPitch(outputPitch int) (int, int) {
	for e := range elements {
		for v := 0; v < NumVariations; v++ {
			a, ok := Lookup(elements[e].keys[v])
			if ok && a.OutputPitch == outputPitch {
				return e, v
			}
		}
	}
	return -1, -1
}
