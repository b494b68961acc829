package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sartorproj/statshypo/report"
	"github.com/sartorproj/statshypo/stats"
)

// acfCommand prints the correlogram of a column.
// statshypo acf --column y --lags 12 series.csv
var acfCommand = cli.Command{
	Action:    correlogram,
	Name:      "acf",
	Usage:     "Prints autocorrelations and partial autocorrelations with 95% bounds.",
	ArgsUsage: "<csv|->",
	Flags: []cli.Flag{
		&columnFlag,
		&groupColumnFlag,
		&groupFlag,
		&lagsFlag,
	},
}

func correlogram(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	ss, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer ss.close()

	s, err := loadColumn(ctx, ctx.Args().First(), firstColumn(ctx))
	if err != nil {
		return err
	}

	lags := ctx.Int(lagsFlag.Name)
	if lags <= 0 {
		lags = 10
	}
	acf, err := stats.ACFWithConfidence(s, lags)
	if err != nil {
		return err
	}
	pacf, err := stats.PACFWithConfidence(s, lags)
	if err != nil {
		return err
	}

	ss.logger.Debug("correlogram computed",
		zap.Int("lags", len(acf.Values)-1),
		zap.Ints("significant", acf.Significant()))
	return report.WriteCorrelogram(ctx.App.Writer, acf, pacf)
}
