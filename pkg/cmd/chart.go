package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c9s/vista/pkg/chart"
	"github.com/c9s/vista/pkg/cmd/cmdutil"
	"github.com/c9s/vista/pkg/config"
	"github.com/c9s/vista/pkg/data"
	"github.com/c9s/vista/pkg/indicator"
)

func init() {
	cmdutil.DataFlags(ChartCommand.Flags())
	cmdutil.IndicatorFlags(ChartCommand.Flags())
	ChartCommand.Flags().String("title", "", "chart title, the indicator by default")
	ChartCommand.Flags().StringP("output", "o", "chart.png", "the png file to write")
	ChartCommand.Flags().Bool("overlay", false, "plot the price source along with the indicator")
	RootCmd.AddCommand(ChartCommand)
}

var ChartCommand = &cobra.Command{
	Use:          "chart --data=[file|url] --indicator=[name] [--output=chart.png]",
	Short:        "plot indicators over market data into a png file",
	SilenceUsage: true,
	RunE:         runChart,
}

func runChart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	location, err := dataLocation(cmd)
	if err != nil {
		return err
	}

	req, err := cmdutil.IndicatorRequest(cmd)
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	title, err := cmd.Flags().GetString("title")
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	overlay, err := cmd.Flags().GetBool("overlay")
	if err != nil {
		return err
	}

	run := &config.Config{
		Data:       location,
		Limit:      limit,
		Indicators: []indicator.Request{*req},
		Chart:      &config.ChartConfig{Title: title, Output: output, Overlay: overlay},
	}
	if err := run.Validate(); err != nil {
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

	return saveChart(d, run, columns)
}

func saveChart(d *data.Data, run *config.Config, columns []column) error {
	title := run.Chart.Title
	if title == "" {
		title = run.Indicators[0].String()
	}

	canvas := chart.NewCanvas(title, d)
	if run.Chart.Overlay {
		for _, req := range run.Indicators {
			source, err := d.Source(req.Source)
			if err != nil {
				return err
			}

			name := req.Source
			if name == "" {
				name = "close"
			}
			canvas.Plot(name, source, run.Limit)
		}
	}

	for _, c := range columns {
		canvas.Plot(c.Name, c.Values, run.Limit)
	}

	return canvas.Save(run.Chart.Output)
}
