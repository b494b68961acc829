package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/statshypo/report"
	"github.com/sartorproj/statshypo/sample"
)

// densityCommand evaluates the Gaussian kernel density estimate of a column.
// statshypo density --at 0 --at 1.5 data.csv
var densityCommand = cli.Command{
	Action:    density,
	Name:      "density",
	Usage:     "Evaluates a Gaussian kernel density estimate.",
	ArgsUsage: "<csv|->",
	Flags: []cli.Flag{
		&columnFlag,
		&groupColumnFlag,
		&groupFlag,
		&atFlag,
		&pointsFlag,
		&covarianceFactorFlag,
	},
}

func density(ctx *cli.Context) error {
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
	kde, err := sample.NewDensity(s.Values, ss.cfg.Density.CovarianceFactor)
	if err != nil {
		return err
	}

	xs := ctx.Float64Slice(atFlag.Name)
	if len(xs) == 0 {
		n := ctx.Int(pointsFlag.Name)
		if n < 2 {
			return fmt.Errorf("%w: --points must be at least 2", sample.ErrInvalidInput)
		}
		xs = floats.Span(make([]float64, n), s.Min(), s.Max())
	}

	ss.logger.Debug("density estimated",
		zap.Float64("bandwidth", kde.Bandwidth()),
		zap.Int("points", len(xs)))
	return report.WriteDensity(ctx.App.Writer, xs, kde.Evaluate(xs), kde.Bandwidth())
}
