package percussion

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/jsphweid/percmap/glyph"
	"github.com/jsphweid/percmap/model"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customArticulations(n int) []model.Articulation {
	res := make([]model.Articulation, n)
	for i := range res {
		res[i] = model.NewArticulation(i, 100+i%20, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite, glyph.NoteheadDiamondWhite)
	}
	return res
}

func TestOverrideTakesPrecedence(t *testing.T) {
	track := &model.Track{PercussionArticulations: customArticulations(40)}
	note := &model.Note{PercussionArticulation: 38, Track: track}

	a, ok := Articulation(note)
	require.True(t, ok)
	assert.Equal(t, track.PercussionArticulations[38], a)
	assert.Equal(t, glyph.NoteheadDiamondWhite, a.NoteheadDefault)
}

func TestIndexAtOverrideLengthFallsThroughToCatalog(t *testing.T) {
	track := &model.Track{PercussionArticulations: customArticulations(38)}
	note := &model.Note{PercussionArticulation: 38, Track: track}

	a, ok := Articulation(note)
	require.True(t, ok)
	snare, _ := Lookup(38)
	assert.Equal(t, snare, a)
}

func TestNoTrackUsesCatalog(t *testing.T) {
	assert := assert.New(t)
	a, ok := Articulation(&model.Note{PercussionArticulation: 42})
	assert.True(ok)
	assert.Equal(42, a.OutputPitch)

	_, ok = Articulation(nil)
	assert.False(ok)
}

func TestUnknownKey(t *testing.T) {
	assert := assert.New(t)
	note := &model.Note{PercussionArticulation: 9999, Track: &model.Track{}}
	_, ok := Articulation(note)
	assert.False(ok)
	e, v := ElementAndVariation(note)
	assert.Equal(-1, e)
	assert.Equal(-1, v)
}

func TestNegativeIndexIsCatalogKey(t *testing.T) {
	track := &model.Track{PercussionArticulations: customArticulations(3)}
	ref := Classify(-1, track.PercussionArticulations)
	assert.Equal(t, model.CatalogKeyRef(-1), ref)
	_, ok := Articulation(&model.Note{PercussionArticulation: -1, Track: track})
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	overrides := customArticulations(2)
	cases := []struct {
		index int
		want  model.ArticulationRef
	}{
		{0, model.OverrideRef(0)},
		{1, model.OverrideRef(1)},
		{2, model.CatalogKeyRef(2)},
		{38, model.CatalogKeyRef(38)},
	}
	for _, c := range cases {
		t.Run(c.want.Kind.String(), func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.index, overrides))
		})
	}
	assert.Equal(t, model.CatalogKeyRef(0), Classify(0, nil))
}

func TestResolveRefOutOfRangeOverride(t *testing.T) {
	_, ok := ResolveRef(model.OverrideRef(5), customArticulations(2))
	assert.False(t, ok)
	_, ok = ResolveRef(model.OverrideRef(0), nil)
	assert.False(t, ok)
}

func TestByKeyIsCatalogLookup(t *testing.T) {
	for _, k := range Keys() {
		a, ok := ByKey(k)
		b, _ := Lookup(k)
		assert.True(t, ok)
		assert.Equal(t, b, a)
	}
}

func TestElementAndVariationPicksFirstMatch(t *testing.T) {
	cases := []struct {
		name      string
		key       int
		element   int
		variation int
	}{
		{"snare hit", 38, 1, 0},
		{"snare rim shot sounds as snare", 91, 1, 0},
		{"side stick", 37, 1, 2},
		{"half open hihat", 92, 10, 1},
		{"open hihat aliases half open", 46, 10, 1},
		{"medium cowbell aliases low cowbell", 56, 2, 0},
		{"high cowbell tip", 103, 2, 0},
		{"ride edge", 93, 15, 0},
		{"ride bell", 127, 15, 2},
		{"crash medium choke", 98, 12, 0},
		{"china choke", 96, 16, 0},
		{"pedal hihat", 44, 11, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, v := ElementAndVariation(&model.Note{PercussionArticulation: c.key})
			assert.Equal(t, c.element, e)
			assert.Equal(t, c.variation, v)
		})
	}
}

func TestElementAndVariationWithoutLegacyPitch(t *testing.T) {
	// 81 (open triangle) has no legacy element
	e, v := ElementAndVariation(&model.Note{PercussionArticulation: 81})
	assert.Equal(t, -1, e)
	assert.Equal(t, -1, v)

	track := &model.Track{PercussionArticulations: []model.Articulation{
		model.NewArticulation(0, 42, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack),
	}}
	e, v = ElementAndVariation(&model.Note{PercussionArticulation: 0, Track: track})
	assert.Equal(t, 10, e)
	assert.Equal(t, 0, v)
}

func TestElementVariationRoundTrip(t *testing.T) {
	for e := 0; e < NumElements(); e++ {
		for v := 0; v < NumVariations; v++ {
			want, ok := ByKey(KeyFor(e, v))
			require.True(t, ok)
			ge, gv := ElementAndVariation(&model.Note{PercussionArticulation: KeyFor(e, v)})
			require.NotEqual(t, -1, ge)
			got, _ := ByKey(KeyFor(ge, gv))
			assert.Equal(t, want.OutputPitch, got.OutputPitch)
			// first match in row-major order, never after the origin cell
			assert.LessOrEqual(t, ge*NumVariations+gv, e*NumVariations+v)
		}
	}
}

func TestConcurrentResolve(t *testing.T) {
	track := &model.Track{PercussionArticulations: customArticulations(4)}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, k := range Keys() {
				Articulation(&model.Note{PercussionArticulation: k, Track: track})
				ElementAndVariation(&model.Note{PercussionArticulation: k})
				KeyFor(i, k)
			}
		}(i)
	}
	wg.Wait()
}

type recordingTracer struct {
	debug []string
}

func (r *recordingTracer) Debugf(s string, args ...interface{}) {
	r.debug = append(r.debug, fmt.Sprintf(s, args...))
}

func (r *recordingTracer) Errorf(string, ...interface{}) {}

func (r *recordingTracer) Infof(string, ...interface{}) {}

func (r *recordingTracer) P(string, interface{}) tracing.Trace { return r }

func (r *recordingTracer) SetTraceLevel(tracing.TraceLevel) {}

func (r *recordingTracer) GetTraceLevel() tracing.TraceLevel { return tracing.LevelDebug }

func (r *recordingTracer) SetOutput(io.Writer) {}

func (r *recordingTracer) Select(string) tracing.Trace { return r }

func TestPitchScanDoesNotTraceMisses(t *testing.T) {
	rec := &recordingTracer{}
	tracing.SetTraceSelector(rec)
	defer tracing.SetTraceSelector(nil)

	for pitch := 0; pitch < 128; pitch++ {
		ElementAndVariationForPitch(pitch)
	}
	assert.Empty(t, rec.debug)

	e, v := ElementAndVariation(&model.Note{PercussionArticulation: 81})
	assert.Equal(t, -1, e)
	assert.Equal(t, -1, v)
	require.Len(t, rec.debug, 1)
	assert.Contains(t, rec.debug[0], "pitch 81")
}
