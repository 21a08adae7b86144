package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/vista/pkg/cmd/cmdutil"
	"github.com/c9s/vista/pkg/config"
	"github.com/c9s/vista/pkg/data"
	"github.com/c9s/vista/pkg/indicator"
)

func init() {
	cmdutil.DataFlags(CalcCmd.Flags())
	cmdutil.IndicatorFlags(CalcCmd.Flags())
	CalcCmd.Flags().String("config", "", "run file listing the data and the indicators, overrides the other flags")
	CalcCmd.Flags().StringP("format", "f", config.FormatTable, "output format: table, tsv or json")
	CalcCmd.Flags().StringP("output", "o", "", "write the result into the file instead of stdout")
	CalcCmd.Flags().Int("round", -1, "round the values to the given decimal places, -1 to disable")
	CalcCmd.Flags().String("round-mode", "half_up", "rounding mode: half_up, half_down, half_even, up, down, ceiling or floor")
	CalcCmd.Flags().Bool("metrics", false, "print the evaluation counters after the result")
	RootCmd.AddCommand(CalcCmd)
}

var CalcCmd = &cobra.Command{
	Use:          "calc --data=[file|url] --indicator=[name] [--param key=value]",
	Short:        "evaluate indicators over market data",
	SilenceUsage: true,
	RunE:         calc,
}

// dataLocation reads --data, falling back to the VISTA_DATA environment variable.
func dataLocation(cmd *cobra.Command) (string, error) {
	if err := viper.BindPFlag("data", cmd.Flags().Lookup("data")); err != nil {
		return "", err
	}

	location := viper.GetString("data")
	if location == "" {
		return "", errors.New("--data is required")
	}
	return location, nil
}

// calcConfig builds the run either from the --config file or from the flags.
func calcConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		return config.Load(configFile)
	}

	location, err := dataLocation(cmd)
	if err != nil {
		return nil, err
	}

	req, err := cmdutil.IndicatorRequest(cmd)
	if err != nil {
		return nil, err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	roundMode, err := cmd.Flags().GetString("round-mode")
	if err != nil {
		return nil, err
	}

	run := &config.Config{
		Data:       location,
		Limit:      limit,
		Format:     format,
		Output:     output,
		RoundMode:  roundMode,
		Indicators: []indicator.Request{*req},
	}

	round, err := cmd.Flags().GetInt("round")
	if err != nil {
		return nil, err
	}

	if round >= 0 {
		run.Round = &round
	}

	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}

func calc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	run, err := calcConfig(cmd)
	if err != nil {
		return err
	}

	d, err := data.Load(ctx, run.Data)
	if err != nil {
		return err
	}

	columns, err := evaluate(ctx, indicator.DefaultRegistry(), d, run.Indicators)
	if err != nil {
		return err
	}

	if run.Round != nil {
		roundColumns(columns, *run.Round, run.Rounding())
	}

	if err := render(cmd.OutOrStdout(), run, d, columns); err != nil {
		return err
	}

	if run.Chart != nil {
		if err := saveChart(d, run, columns); err != nil {
			return err
		}
		log.Infof("chart saved to %s", run.Chart.Output)
	}

	showMetrics, err := cmd.Flags().GetBool("metrics")
	if err != nil {
		return err
	}

	if showMetrics {
		return renderMetrics(cmd.OutOrStdout())
	}
	return nil
}

func render(stdout io.Writer, run *config.Config, d *data.Data, columns []column) error {
	if run.Format == config.FormatTSV {
		return renderTSV(stdout, run.Output, d, columns, run.Limit)
	}

	out := stdout
	if run.Output != "" {
		f, err := os.Create(run.Output)
		if err != nil {
			return errors.Wrapf(err, "can not create %s", run.Output)
		}
		//nolint:errcheck // the render error is reported instead
		defer f.Close()
		out = f
	}

	if run.Format == config.FormatJSON {
		return renderJSON(out, d, columns, run.Limit)
	}
	return renderTable(out, d, columns, run.Limit)
}
