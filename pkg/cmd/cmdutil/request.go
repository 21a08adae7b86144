package cmdutil

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/vista/pkg/indicator"
	"github.com/c9s/vista/pkg/num"
)

// IndicatorRequest builds the indicator request from the flags defined by
// IndicatorFlags and DataFlags.
func IndicatorRequest(cmd *cobra.Command) (*indicator.Request, error) {
	name, err := cmd.Flags().GetString("indicator")
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errors.New("--indicator is required")
	}

	source, err := cmd.Flags().GetString("source")
	if err != nil {
		return nil, err
	}

	rawParams, err := cmd.Flags().GetStringToString("param")
	if err != nil {
		return nil, err
	}

	params := indicator.Params{}
	for k, v := range rawParams {
		n, err := num.ParseStrict(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid parameter %s=%s", k, v)
		}
		params[k] = n.Float64()
	}

	return &indicator.Request{Name: name, Source: source, Params: params}, nil
}
