package cmd

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/vista/pkg/indicator"
	"github.com/c9s/vista/pkg/style"
)

func init() {
	RootCmd.AddCommand(ListCmd)
}

var ListCmd = &cobra.Command{
	Use:          "list",
	Short:        "list the available indicators with their parameters",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := indicator.DefaultRegistry()

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(*style.NewDefaultTableStyle(!color.NoColor))
		t.AppendHeader(table.Row{"name", "parameters", "outputs", "description"})

		for _, name := range registry.List() {
			def, err := registry.Get(name)
			if err != nil {
				return err
			}

			t.AppendRow(table.Row{
				def.Name,
				formatDefaults(def.Defaults),
				strings.Join(def.Outputs, ", "),
				def.Description,
			})
		}

		t.Render()
		return nil
	},
}

func formatDefaults(params indicator.Params) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.FormatFloat(params[k], 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
