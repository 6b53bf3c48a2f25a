package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/percmap/midi"
	"github.com/jsphweid/percmap/model"
	"github.com/jsphweid/percmap/percussion"
	"github.com/jsphweid/percmap/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	overridesPath string
	inspectLimit  int
)

func init() {
	inspectCmd.Flags().StringVar(&overridesPath, "overrides", "", "JSON file with the track's custom articulations")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "Show at most this many hits (0 shows all)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects the drum notes of a MIDI file",
	Long:  `Lists every drum note of a MIDI file with its articulation and legacy element/variation.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := loadTrack(overridesPath)
		if err != nil {
			return err
		}
		return inspect(args[0], track)
	},
}

func loadTrack(path string) (*model.Track, error) {
	track := &model.Track{Name: "drums"}
	if path == "" {
		return track, nil
	}
	overrides, err := util.ReadJSONFile[[]model.Articulation](path)
	if err != nil {
		return nil, err
	}
	track.PercussionArticulations = overrides
	tracer().Infof("loaded %d custom articulations from %s", len(overrides), path)
	return track, nil
}

func inspect(path string, track *model.Track) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	hits := midi.DrumHits(s, track)
	if len(hits) == 0 {
		pterm.Warning.Printf("no drum notes in %s\n", path)
		return nil
	}
	n := len(hits)
	if inspectLimit > 0 {
		n = util.Min(n, inspectLimit)
	}

	header := append([]string{"Tick", "Number", "Source", "Element"}, articulationHeader...)
	var rows [][]string
	var unresolved int
	for _, hit := range hits[:n] {
		ref := percussion.Classify(hit.Note.PercussionArticulation, track.PercussionArticulations)
		row := []string{
			strconv.FormatUint(hit.Tick, 10),
			strconv.Itoa(hit.Note.PercussionArticulation),
			ref.Kind.String(),
		}
		a, ok := percussion.ResolveRef(ref, track.PercussionArticulations)
		if !ok {
			unresolved++
			row = append(row, "-")
			for range articulationHeader {
				row = append(row, "?")
			}
			rows = append(rows, row)
			continue
		}
		row = append(row, elementLabel(percussion.ElementAndVariationForPitch(a.OutputPitch)))
		rows = append(rows, append(row, articulationCells(a)...))
	}
	printTable(header, rows)
	pterm.Info.Printf("%d drum notes, %d shown, %d without articulation\n", len(hits), n, unresolved)
	return nil
}

func elementLabel(element, variation int) string {
	if element < 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d %s %s", element, variation,
		percussion.ElementName(element), percussion.VariationName(element, variation))
}
