package model

type CatalogEntry struct {
	Key          int          `json:"key"`
	Articulation Articulation `json:"articulation"`
}

type ElementResponse struct {
	Element      int          `json:"element"`
	Variation    int          `json:"variation"`
	Name         string       `json:"name"`
	Key          int          `json:"key"`
	Articulation Articulation `json:"articulation"`
}

type ResolveRequestBody struct {
	PercussionArticulation int            `json:"percussionArticulation"`
	Overrides              []Articulation `json:"overrides"`
	// NOTE: takes precedence over Overrides when set
	TrackID string `json:"trackId"`
}

type ResolveResponse struct {
	Found        bool          `json:"found"`
	Source       string        `json:"source"`
	Articulation *Articulation `json:"articulation"`
	Element      int           `json:"element"`
	Variation    int           `json:"variation"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
