package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/percmap/constants"
	"github.com/jsphweid/percmap/midi"
	"github.com/jsphweid/percmap/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default <uuid>.mid in the output dir)")
	exportCmd.Flags().StringVar(&overridesPath, "overrides", "", "JSON file with the track's custom articulations")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.mid>",
	Short: "Writes the drum notes at their sounding pitch",
	Long: `Extracts the drum notes of a MIDI file and writes them as a new MIDI file,
every note played at the output pitch of its articulation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := exportOutput
		if out == "" {
			if err := util.EnsureDir(constants.GetOutDir()); err != nil {
				return err
			}
			out = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
		}
		return export(args[0], out)
	},
}

func export(in, out string) error {
	track, err := loadTrack(overridesPath)
	if err != nil {
		return err
	}
	s, err := midi.ReadMidiFile(in)
	if err != nil {
		return err
	}
	hits := midi.DrumHits(s, track)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	remapped, err := midi.WriteDrumTrack(f, s.TimeFormat, hits)
	if err != nil {
		return err
	}
	tracer().Infof("exported %d drum notes from %s", len(hits), in)
	pterm.Success.Printf("wrote %s (%d notes, %d remapped)\n", out, len(hits), remapped)
	return nil
}
