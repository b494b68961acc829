package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sartorproj/statshypo/report"
	"github.com/sartorproj/statshypo/sample"
)

// bootstrapCommand builds the bootstrap distribution of a statistic and
// derives its empirical cutoff and p-value.
// statshypo bootstrap --statistic median --iterations 5000 --out dist.csv data.csv
var bootstrapCommand = cli.Command{
	Action:    bootstrap,
	Name:      "bootstrap",
	Usage:     "Bootstraps a statistic and prints the empirical cutoff and p-value.",
	ArgsUsage: "<csv|->",
	Flags: []cli.Flag{
		&columnFlag,
		&groupColumnFlag,
		&groupFlag,
		&statisticFlag,
		&iterationsFlag,
		&ratioFlag,
		&seedFlag,
		&alphaFlag,
		&tailFlag,
		&outFlag,
	},
}

var statistics = map[string]sample.Statistic{
	"mean":   sample.MeanStatistic,
	"median": sample.MedianStatistic,
	"std":    sample.StdStatistic,
}

func bootstrap(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}
	name := ctx.String(statisticFlag.Name)
	fn, ok := statistics[name]
	if !ok {
		return fmt.Errorf("%w: unknown statistic %q", sample.ErrInvalidInput, name)
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
	tail, err := ss.cfg.TailMode()
	if err != nil {
		return err
	}

	rs, err := sample.NewResampler(ss.cfg.BootstrapConfig(), ss.logger)
	if err != nil {
		return err
	}
	dist, err := rs.Distribution(s.Values, fn)
	if err != nil {
		return err
	}
	cutoff, p, err := sample.EmpiricalPValue(dist, ss.cfg.Alpha, tail)
	if err != nil {
		return err
	}

	if out := ctx.String(outFlag.Name); out != "" {
		if err := sample.SaveCSVFile(out, sample.NewNamed(name, dist)); err != nil {
			return err
		}
		ss.logger.Info("distribution written", zap.String("path", out), zap.Int("values", len(dist)))
	}

	return report.WriteBootstrap(ctx.App.Writer, cutoff, p, len(dist))
}
