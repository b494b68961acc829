package main

import "github.com/urfave/cli/v2"

var (
	configFlag = cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML configuration file",
		EnvVars: []string{"STATSHYPO_CONFIG"},
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error (overrides the configuration)",
	}

	columnFlag = cli.StringSliceFlag{
		Name:  "column",
		Usage: "value column; defaults to y, value or the last column",
	}
	column2Flag = cli.StringFlag{
		Name:  "column2",
		Usage: "second sample column for two-sample and correlation tests",
	}
	groupColumnFlag = cli.StringFlag{
		Name:  "group-column",
		Usage: "column used with --group to select rows",
	}
	groupFlag = cli.StringFlag{
		Name:  "group",
		Usage: "keep only rows whose --group-column equals this value",
	}

	alphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level (overrides the configuration)",
	}
	tailFlag = cli.StringFlag{
		Name:  "tail",
		Usage: "one-tail or two-tail (overrides the configuration)",
	}
	iterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "bootstrap iterations (overrides the configuration)",
	}
	ratioFlag = cli.Float64Flag{
		Name:  "ratio",
		Usage: "fraction of the sample drawn per resample (overrides the configuration)",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed, 0 for clock seeded (overrides the configuration)",
	}
	statisticFlag = cli.StringFlag{
		Name:  "statistic",
		Usage: "mean, median or std",
		Value: "mean",
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "write the bootstrap distribution to this CSV file",
	}

	atFlag = cli.Float64SliceFlag{
		Name:  "at",
		Usage: "evaluation point (repeatable)",
	}
	pointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "evenly spaced evaluation points between min and max when --at is absent",
		Value: 10,
	}
	covarianceFactorFlag = cli.Float64Flag{
		Name:  "covariance-factor",
		Usage: "kernel bandwidth factor (overrides the configuration)",
	}

	muFlag = cli.Float64Flag{
		Name:  "mu",
		Usage: "hypothesised mean",
	}
	sigmaFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "population standard deviation",
		Value: 1,
	}
	alternativeFlag = cli.StringFlag{
		Name:  "alternative",
		Usage: "two-sided, less or greater",
		Value: "two-sided",
	}
	equalVarianceFlag = cli.BoolFlag{
		Name:  "equal-variance",
		Usage: "use the pooled variance t-test instead of Welch's",
	}
	lagsFlag = cli.IntFlag{
		Name:  "lags",
		Usage: "lags for time series tests, 0 selects a default",
	}
	fitdfFlag = cli.IntFlag{
		Name:  "fitdf",
		Usage: "fitted model parameters subtracted from Ljung-Box degrees of freedom",
	}
	regressionFlag = cli.StringFlag{
		Name:  "regression",
		Usage: "KPSS deterministic terms: c or ct",
		Value: "c",
	}
)
