package model

// Track is the part of a score track the percussion mapper reads.
type Track struct {
	Name string

	// NOTE: owned by the caller, may be empty
	PercussionArticulations []Articulation
}

// Note is a percussion note. PercussionArticulation is either a position in
// the track's override list or a catalog key, see ArticulationRef.
type Note struct {
	PercussionArticulation int
	Track                  *Track
}

// Overrides returns the override list of the note's track, nil if the note
// has no track.
func (n *Note) Overrides() []Articulation {
	if n == nil || n.Track == nil {
		return nil
	}
	return n.Track.PercussionArticulations
}

// RefKind tells which list an ArticulationRef points into.
type RefKind int

const (
	RefCatalogKey RefKind = iota
	RefOverride
)

func (k RefKind) String() string {
	if k == RefOverride {
		return "override"
	}
	return "catalog"
}

// ArticulationRef is a percussion articulation index after it has been told
// apart into an override position or a catalog key.
type ArticulationRef struct {
	Kind RefKind
	// Position in the track override list, for RefOverride.
	Position int
	// Catalog key, for RefCatalogKey.
	Key int
}

// OverrideRef refers to position in the track override list.
func OverrideRef(position int) ArticulationRef {
	return ArticulationRef{Kind: RefOverride, Position: position}
}

// CatalogKeyRef refers to key in the articulation catalog.
func CatalogKeyRef(key int) ArticulationRef {
	return ArticulationRef{Kind: RefCatalogKey, Key: key}
}
