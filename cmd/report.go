package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/percmap/percussion"
	"github.com/jsphweid/percmap/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the articulation catalog and its coverage by legacy elements.`,
	Run: func(cmd *cobra.Command, args []string) {
		printReport(buildReport())
	},
}

type catalogReport struct {
	numEntries      int
	keysByPitch     map[int][]int
	numCells        int
	elementsByPitch map[int]string
	pitchesNoLegacy []int
}

func buildReport() catalogReport {
	r := catalogReport{
		numEntries:      percussion.CatalogSize(),
		keysByPitch:     make(map[int][]int),
		elementsByPitch: make(map[int]string),
	}
	for _, key := range percussion.Keys() {
		a, _ := percussion.ByKey(key)
		r.keysByPitch[a.OutputPitch] = append(r.keysByPitch[a.OutputPitch], key)
	}
	r.numCells = percussion.NumElements() * percussion.NumVariations
	for _, pitch := range util.GetSortedKeys(r.keysByPitch) {
		e, v := percussion.ElementAndVariationForPitch(pitch)
		if e < 0 {
			r.pitchesNoLegacy = append(r.pitchesNoLegacy, pitch)
			continue
		}
		r.elementsByPitch[pitch] = elementLabel(e, v)
	}
	return r
}

func printReport(r catalogReport) {
	pterm.Info.Printf("catalog entries: %d\n", r.numEntries)
	pterm.Info.Printf("distinct output pitches: %d\n", len(r.keysByPitch))
	pterm.Info.Printf("legacy element/variation cells: %d\n", r.numCells)
	pterm.Info.Printf("output pitches without legacy element: %d\n", len(r.pitchesNoLegacy))

	var rows [][]string
	for _, pitch := range util.GetSortedKeys(r.keysByPitch) {
		keys := r.keysByPitch[pitch]
		strs := make([]string, len(keys))
		for i, k := range keys {
			strs[i] = strconv.Itoa(k)
		}
		legacy, ok := r.elementsByPitch[pitch]
		if !ok {
			legacy = "-"
		}
		rows = append(rows, []string{strconv.Itoa(pitch), strings.Join(strs, " "), legacy})
	}
	printTable([]string{"Pitch", "Keys", "Legacy element"}, rows)
}
