package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/percmap/percussion"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(elementCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <key>...",
	Short: "Looks up catalog articulations",
	Long:  `Looks up catalog articulations by key. Without arguments the whole catalog is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return lookup(percussion.Keys())
		}
		var keys []int
		for _, arg := range args {
			key, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid key %q: %w", arg, err)
			}
			keys = append(keys, key)
		}
		return lookup(keys)
	},
}

func lookup(keys []int) error {
	var rows [][]string
	for _, key := range keys {
		a, ok := percussion.ByKey(key)
		if !ok {
			pterm.Warning.Printf("no articulation for key %d\n", key)
			continue
		}
		rows = append(rows, append([]string{strconv.Itoa(key)}, articulationCells(a)...))
	}
	if len(rows) > 0 {
		printTable(append([]string{"Key"}, articulationHeader...), rows)
	}
	return nil
}

var elementCmd = &cobra.Command{
	Use:   "element <element> <variation>",
	Short: "Translates a legacy element/variation",
	Long:  `Translates a legacy element/variation pair to its catalog key and articulation.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		element, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid element %q: %w", args[0], err)
		}
		variation, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid variation %q: %w", args[1], err)
		}
		key := percussion.KeyFor(element, variation)
		pterm.Info.Printf("%s %s -> key %d\n", percussion.ElementName(element), percussion.VariationName(element, variation), key)
		return lookup([]int{key})
	},
}
