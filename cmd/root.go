package cmd

import (
	"fmt"

	"github.com/jsphweid/percmap/constants"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

var traceLevel string

var rootCmd = &cobra.Command{
	Use:   "percmap",
	Short: "Percussion articulation mapper",
	Long: `percmap resolves percussion notes to their notation and translates
between element/variation and articulation numbers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(traceLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
}

// tracer traces with key 'percmap'
func tracer() tracing.Trace {
	return tracing.Select(constants.TraceKey)
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.percmap":   level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
