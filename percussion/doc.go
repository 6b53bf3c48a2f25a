/*
Package percussion maps percussion notes to their notation.

Two encodings of percussion notes exist in tablature files. Older files
classify a sound by an element (instrument category) and a variation (strike
kind). Newer files store an articulation number: either a position in a
track-local list of custom articulations, or a key into a fixed catalog keyed
by MIDI input number.

Resolving a note yields a model.Articulation: noteheads per duration class, an
optional technique glyph, the staff line and the sounding pitch. The inverse
direction finds the legacy element/variation with the same sounding pitch.

All tables are built during package initialization and never modified, every
function in this package is safe for concurrent use.
*/
package percussion

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'percmap'
func tracer() tracing.Trace {
	return tracing.Select("percmap")
}
