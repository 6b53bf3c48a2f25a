package cmd

import (
	"context"
	"strconv"

	"github.com/jsphweid/percmap/constants"
	"github.com/jsphweid/percmap/db"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var trackName string

func init() {
	trackPutCmd.Flags().StringVar(&trackName, "name", "drums", "Track name")
	trackCmd.AddCommand(trackPutCmd, trackGetCmd)
	rootCmd.AddCommand(trackCmd)
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Manages stored track articulations",
	Long:  `Stores and loads the custom articulations of tracks in DynamoDB.`,
}

var trackPutCmd = &cobra.Command{
	Use:   "put <overrides.json>",
	Short: "Stores a track's custom articulations",
	Long:  `Stores a track's custom articulations and prints the new track id.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		track, err := loadTrack(args[0])
		if err != nil {
			return err
		}
		track.Name = trackName
		store, err := openStore()
		if err != nil {
			return err
		}
		id, err := store.PutTrack(context.Background(), track)
		if err != nil {
			return err
		}
		pterm.Success.Println(id)
		return nil
	},
}

var trackGetCmd = &cobra.Command{
	Use:   "get <track-id>",
	Short: "Shows a track's custom articulations",
	Long:  `Shows a track's custom articulations by position.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		track, err := store.GetTrack(context.Background(), args[0])
		if err != nil {
			return err
		}
		pterm.Info.Printf("%s: %d custom articulations\n", track.Name, len(track.PercussionArticulations))
		var rows [][]string
		for i, a := range track.PercussionArticulations {
			rows = append(rows, append([]string{strconv.Itoa(i)}, articulationCells(a)...))
		}
		if len(rows) > 0 {
			printTable(append([]string{"Position"}, articulationHeader...), rows)
		}
		return nil
	},
}

func openStore() (*db.Store, error) {
	return db.NewStore(constants.GetDynamoEndpoint(), constants.GetDynamoRegion(), constants.GetOverridesTable())
}
