package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sartorproj/statshypo/report"
	"github.com/sartorproj/statshypo/sample"
)

// describeCommand prints the descriptive summary of one or more columns.
// statshypo describe --column before --column after data.csv
var describeCommand = cli.Command{
	Action:    describe,
	Name:      "describe",
	Usage:     "Prints count, quartiles, mean, standard deviation, skewness and kurtosis.",
	ArgsUsage: "<csv|->",
	Flags: []cli.Flag{
		&columnFlag,
		&groupColumnFlag,
		&groupFlag,
	},
}

func describe(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	ss, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer ss.close()

	columns := ctx.StringSlice(columnFlag.Name)
	if len(columns) == 0 {
		columns = []string{""}
	}

	samples, err := loadColumns(ctx, ctx.Args().First(), columns, false)
	if err != nil {
		return err
	}
	for _, s := range samples {
		d, err := sample.Describe(s.Values)
		if err != nil {
			return err
		}
		ss.logger.Debug("sample described", zap.String("column", s.Name), zap.Int("count", d.Count))

		if err := report.WriteDescription(ctx.App.Writer, s.Name, d); err != nil {
			return err
		}
	}
	return nil
}
