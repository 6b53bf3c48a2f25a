package cmd

import (
	"strconv"

	"github.com/jsphweid/percmap/model"
	"github.com/pterm/pterm"
)

var articulationHeader = []string{"Pitch", "Staff line", "Default", "Half", "Whole", "Technique"}

func articulationCells(a model.Articulation) []string {
	technique := "-"
	if a.HasTechnique() {
		technique = a.Technique.String() + " (" + a.TechniquePlacement.String() + ")"
	}
	return []string{
		strconv.Itoa(a.OutputPitch),
		strconv.Itoa(a.StaffLine),
		a.NoteheadDefault.String(),
		a.NoteheadHalf.String(),
		a.NoteheadWhole.String(),
		technique,
	}
}

func printTable(header []string, rows [][]string) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
