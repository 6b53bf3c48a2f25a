package model

import (
	"encoding/json"

	"github.com/jsphweid/percmap/glyph"
)

// Placement anchors a technique glyph vertically relative to the note.
type Placement int

const (
	PlacementMiddle Placement = iota
	PlacementTop
	PlacementBottom
)

func (p Placement) String() string {
	switch p {
	case PlacementTop:
		return "top"
	case PlacementBottom:
		return "bottom"
	}
	return "middle"
}

// DurationClass groups rhythmic durations by the notehead they are drawn with.
type DurationClass int

const (
	DurationDefault DurationClass = iota // quarter and shorter
	DurationHalf
	DurationWhole
)

// Articulation describes how a percussion note is notated and what it sounds.
// Values are passed around by copy; the catalog entries never change.
type Articulation struct {
	StaffLine          int       `json:"staffLine"`
	OutputPitch        int       `json:"outputPitch"`
	NoteheadDefault    glyph.Ref `json:"noteheadDefault"`
	NoteheadHalf       glyph.Ref `json:"noteheadHalf"`
	NoteheadWhole      glyph.Ref `json:"noteheadWhole"`
	Technique          glyph.Ref `json:"technique"`
	TechniquePlacement Placement `json:"techniquePlacement"`
}

// NewArticulation returns an articulation without a technique glyph.
func NewArticulation(staffLine, outputPitch int, def, half, whole glyph.Ref) Articulation {
	return Articulation{
		StaffLine:          staffLine,
		OutputPitch:        outputPitch,
		NoteheadDefault:    def,
		NoteheadHalf:       half,
		NoteheadWhole:      whole,
		Technique:          glyph.None,
		TechniquePlacement: PlacementMiddle,
	}
}

// WithTechnique returns a copy of a carrying the given technique glyph.
func (a Articulation) WithTechnique(technique glyph.Ref, placement Placement) Articulation {
	a.Technique = technique
	a.TechniquePlacement = placement
	return a
}

// HasTechnique reports whether a technique glyph is drawn next to the notehead.
func (a Articulation) HasTechnique() bool {
	return a.Technique != glyph.None
}

// UnmarshalJSON decodes a, an omitted technique means no technique glyph.
func (a *Articulation) UnmarshalJSON(data []byte) error {
	type plain Articulation
	p := plain{Technique: glyph.None}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Articulation(p)
	return nil
}

// Notehead selects the notehead glyph for a duration class.
func (a Articulation) Notehead(d DurationClass) glyph.Ref {
	switch d {
	case DurationWhole:
		return a.NoteheadWhole
	case DurationHalf:
		return a.NoteheadHalf
	}
	return a.NoteheadDefault
}
