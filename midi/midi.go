package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/percmap/model"
	"github.com/jsphweid/percmap/percussion"
	"github.com/npillmayer/schuko/tracing"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DrumChannel is MIDI channel 10, zero based.
const DrumChannel = 9

// DrumHit is a note-on on the drum channel.
type DrumHit struct {
	Tick     uint64
	Velocity uint8
	Note     model.Note
}

func tracer() tracing.Trace {
	return tracing.Select("percmap")
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// DrumHits collects the note-ons of the drum channel of all tracks, ordered
// by tick. Each key becomes the articulation number of a note on track.
func DrumHits(s *smf.SMF, track *model.Track) []DrumHit {
	var hits []DrumHit
	for _, events := range s.Tracks {
		var absTicks uint64
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel, key, velocity uint8
			if !event.Message.GetNoteOn(&channel, &key, &velocity) {
				continue
			}
			if channel != DrumChannel || velocity == 0 {
				continue
			}
			hits = append(hits, DrumHit{
				Tick:     absTicks,
				Velocity: velocity,
				Note:     model.Note{PercussionArticulation: int(key), Track: track},
			})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Tick < hits[j].Tick
	})
	tracer().Debugf("found %d drum hits in %d tracks", len(hits), len(s.Tracks))
	return hits
}

type timedMessage struct {
	tick  uint64
	isOff bool
	msg   gomidi.Message
}

// WriteDrumTrack writes hits as a single-track SMF. Every hit is played at
// the output pitch of its articulation, hits that do not resolve keep their
// key. It returns the number of hits whose pitch changed.
func WriteDrumTrack(w io.Writer, tf smf.TimeFormat, hits []DrumHit) (int, error) {
	length := uint64(60)
	if mt, ok := tf.(smf.MetricTicks); ok && mt >= 4 {
		length = uint64(mt) / 4
	}

	var remapped int
	msgs := make([]timedMessage, 0, 2*len(hits))
	for i := range hits {
		key := hits[i].Note.PercussionArticulation
		if a, ok := percussion.Articulation(&hits[i].Note); ok {
			if a.OutputPitch != key {
				remapped++
			}
			key = a.OutputPitch
		}
		if key < 0 || key > 127 {
			tracer().Infof("skipping drum hit at tick %d with key %d", hits[i].Tick, key)
			continue
		}
		k := uint8(key)
		msgs = append(msgs,
			timedMessage{tick: hits[i].Tick, msg: gomidi.NoteOn(DrumChannel, k, hits[i].Velocity)},
			timedMessage{tick: hits[i].Tick + length, isOff: true, msg: gomidi.NoteOff(DrumChannel, k)},
		)
	}

	// prioritize smaller ticks then note off
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var tr smf.Track
	var last uint64
	for _, m := range msgs {
		tr.Add(uint32(m.tick-last), m.msg)
		last = m.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = tf
	if err := s.Add(tr); err != nil {
		return 0, fmt.Errorf("error adding drum track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return 0, fmt.Errorf("error writing midi file: %w", err)
	}
	return remapped, nil
}
