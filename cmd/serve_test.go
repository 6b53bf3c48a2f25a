package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/percmap/db"
	"github.com/jsphweid/percmap/glyph"
	"github.com/jsphweid/percmap/model"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTracks map[string]*model.Track

func (f fakeTracks) GetTrack(_ context.Context, id string) (*model.Track, error) {
	if t, ok := f[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", db.ErrTrackNotFound, id)
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*http.Response, []byte) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody
}

func TestGetArticulation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "percmap")
	defer teardown()

	resp, body := do(t, NewRouter(nil), http.MethodGet, "/articulations/92", nil)
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var entry model.CatalogEntry
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(92, entry.Key)
	assert.Equal(46, entry.Articulation.OutputPitch)
	assert.Equal(glyph.NoteheadCircleSlash, entry.Articulation.NoteheadDefault)

	resp, _ = do(t, NewRouter(nil), http.MethodGet, "/articulations/9999", nil)
	assert.Equal(404, resp.StatusCode)
}

func TestListCatalog(t *testing.T) {
	resp, body := do(t, NewRouter(nil), http.MethodGet, "/articulations", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var entries []model.CatalogEntry
	require.NoError(t, json.Unmarshal(body, &entries))
	assert.Len(t, entries, 94)
	assert.Equal(t, 29, entries[0].Key)
}

func TestGetElement(t *testing.T) {
	resp, body := do(t, NewRouter(nil), http.MethodGet, "/elements/10/1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var res model.ElementResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, model.ElementResponse{
		Element:      10,
		Variation:    1,
		Name:         "Hihat",
		Key:          92,
		Articulation: res.Articulation,
	}, res)
	assert.Equal(t, 46, res.Articulation.OutputPitch)

	_, body = do(t, NewRouter(nil), http.MethodGet, "/elements/40/1", nil)
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, 38, res.Key)
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "percmap")
	defer teardown()

	custom := model.NewArticulation(0, 42, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack)
	tracks := fakeTracks{"t1": {Name: "Drums", PercussionArticulations: []model.Articulation{custom}}}
	router := NewRouter(tracks)

	cases := []struct {
		name      string
		body      model.ResolveRequestBody
		status    int
		found     bool
		source    string
		element   int
		variation int
	}{
		{"catalog", model.ResolveRequestBody{PercussionArticulation: 46}, 200, true, "catalog", 10, 1},
		{"unknown", model.ResolveRequestBody{PercussionArticulation: 9999}, 200, false, "catalog", -1, -1},
		{"inline override", model.ResolveRequestBody{
			PercussionArticulation: 0,
			Overrides:              []model.Articulation{custom},
		}, 200, true, "override", 10, 0},
		{"stored track", model.ResolveRequestBody{PercussionArticulation: 0, TrackID: "t1"}, 200, true, "override", 10, 0},
		{"at boundary", model.ResolveRequestBody{PercussionArticulation: 1, TrackID: "t1"}, 200, false, "catalog", -1, -1},
		{"missing track", model.ResolveRequestBody{PercussionArticulation: 0, TrackID: "t2"}, 404, false, "", 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp, body := do(t, router, http.MethodPost, "/resolve", c.body)
			require.Equal(t, c.status, resp.StatusCode)
			if c.status != 200 {
				return
			}
			var res model.ResolveResponse
			require.NoError(t, json.Unmarshal(body, &res))
			assert.Equal(t, c.found, res.Found)
			assert.Equal(t, c.source, res.Source)
			assert.Equal(t, c.element, res.Element)
			assert.Equal(t, c.variation, res.Variation)
			assert.Equal(t, c.found, res.Articulation != nil)
		})
	}
}

func TestResolveWithoutStorage(t *testing.T) {
	resp, _ := do(t, NewRouter(nil), http.MethodPost, "/resolve", model.ResolveRequestBody{TrackID: "t1"})
	assert.Equal(t, 400, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/resolve", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	NewRouter(nil).ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}
