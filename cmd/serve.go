package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/percmap/constants"
	"github.com/jsphweid/percmap/db"
	"github.com/jsphweid/percmap/model"
	"github.com/jsphweid/percmap/percussion"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves the articulation catalog and the resolver over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		addr := constants.GetListenAddr()
		tracer().Infof("listening on %s", addr)
		return http.ListenAndServe(addr, NewRouter(store))
	},
}

// TrackSource loads stored tracks by id.
type TrackSource interface {
	GetTrack(ctx context.Context, id string) (*model.Track, error)
}

type server struct {
	tracks TrackSource
}

// NewRouter returns the HTTP API. tracks may be nil, requests naming a
// track id are rejected then.
func NewRouter(tracks TrackSource) http.Handler {
	s := &server{tracks: tracks}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/articulations", s.handleCatalog).Methods("GET")
	router.HandleFunc("/articulations/{key:-?[0-9]+}", s.handleArticulation).Methods("GET")
	router.HandleFunc("/elements/{element:-?[0-9]+}/{variation:-?[0-9]+}", s.handleElement).Methods("GET")
	router.HandleFunc("/resolve", s.handleResolve).Methods("POST")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	res := make([]model.CatalogEntry, 0, percussion.CatalogSize())
	for _, key := range percussion.Keys() {
		a, _ := percussion.ByKey(key)
		res = append(res, model.CatalogEntry{Key: key, Articulation: a})
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleArticulation(w http.ResponseWriter, r *http.Request) {
	key, err := strconv.Atoi(mux.Vars(r)["key"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid key")
		return
	}
	a, ok := percussion.ByKey(key)
	if !ok {
		writeError(w, http.StatusNotFound, "no articulation for key "+strconv.Itoa(key))
		return
	}
	writeJSON(w, http.StatusOK, model.CatalogEntry{Key: key, Articulation: a})
}

func (s *server) handleElement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	element, err1 := strconv.Atoi(vars["element"])
	variation, err2 := strconv.Atoi(vars["variation"])
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "invalid element or variation")
		return
	}
	key := percussion.KeyFor(element, variation)
	a, _ := percussion.ByKey(key)
	writeJSON(w, http.StatusOK, model.ElementResponse{
		Element:      element,
		Variation:    variation,
		Name:         percussion.ElementName(element),
		Key:          key,
		Articulation: a,
	})
}

func (s *server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	track := &model.Track{PercussionArticulations: input.Overrides}
	if input.TrackID != "" {
		if s.tracks == nil {
			writeError(w, http.StatusBadRequest, "track storage is not available")
			return
		}
		stored, err := s.tracks.GetTrack(r.Context(), input.TrackID)
		if errors.Is(err, db.ErrTrackNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			tracer().Errorf("loading track %s: %v", input.TrackID, err)
			writeError(w, http.StatusInternalServerError, "could not load track")
			return
		}
		track = stored
	}

	note := &model.Note{PercussionArticulation: input.PercussionArticulation, Track: track}
	ref := percussion.Classify(note.PercussionArticulation, note.Overrides())
	res := model.ResolveResponse{Source: ref.Kind.String(), Element: -1, Variation: -1}
	if a, ok := percussion.ResolveRef(ref, note.Overrides()); ok {
		res.Found = true
		res.Articulation = &a
		res.Element, res.Variation = percussion.ElementAndVariation(note)
	}
	writeJSON(w, http.StatusOK, res)
}
