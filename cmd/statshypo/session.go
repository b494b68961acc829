package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sartorproj/statshypo/config"
	"github.com/sartorproj/statshypo/sample"
)

// session carries the resolved configuration and logger of one command.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
}

// newSession loads the configuration, applies command line overrides and
// builds the logger.
func newSession(ctx *cli.Context) (*session, error) {
	cfg, err := config.NewLoader().
		WithConfigPath(ctx.String(configFlag.Name)).
		Load()
	if err != nil {
		return nil, err
	}

	if ctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(alphaFlag.Name) {
		cfg.Alpha = ctx.Float64(alphaFlag.Name)
	}
	if ctx.IsSet(tailFlag.Name) {
		cfg.Tail = ctx.String(tailFlag.Name)
	}
	if ctx.IsSet(iterationsFlag.Name) {
		cfg.Bootstrap.Iterations = ctx.Int(iterationsFlag.Name)
	}
	if ctx.IsSet(ratioFlag.Name) {
		cfg.Bootstrap.Ratio = ctx.Float64(ratioFlag.Name)
	}
	if ctx.IsSet(seedFlag.Name) {
		cfg.Bootstrap.Seed = ctx.Int64(seedFlag.Name)
	}
	if ctx.IsSet(covarianceFactorFlag.Name) {
		cfg.Density.CovarianceFactor = ctx.Float64(covarianceFactorFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("command", ctx.Command.Name))
	return &session{cfg: cfg, logger: logger}, nil
}

func (ss *session) close() {
	_ = ss.logger.Sync()
}

// readInput returns the contents of path, or of standard input when path
// is "-". A command reads its input once and parses every column from the
// returned bytes.
func readInput(ctx *cli.Context, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(ctx.App.Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// loadColumns reads columns of path in a single pass. With complete, a row
// missing any of the columns is dropped from all of them so paired values
// stay aligned.
func loadColumns(ctx *cli.Context, path string, columns []string, complete bool) ([]*sample.Sample, error) {
	data, err := readInput(ctx, path)
	if err != nil {
		return nil, err
	}

	opts := sample.DefaultCSVOptions()
	opts.IDColumn = ctx.String(groupColumnFlag.Name)
	opts.IDFilter = ctx.String(groupFlag.Name)
	opts.CompleteRows = complete

	samples, err := sample.LoadCSVColumnsFromReader(bytes.NewReader(data), opts, columns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// loadColumn reads one column of path, see loadColumns.
func loadColumn(ctx *cli.Context, path, column string) (*sample.Sample, error) {
	samples, err := loadColumns(ctx, path, []string{column}, false)
	if err != nil {
		return nil, err
	}
	return samples[0], nil
}

// firstColumn returns the first --column value or "" for auto-detection.
func firstColumn(ctx *cli.Context) string {
	if cols := ctx.StringSlice(columnFlag.Name); len(cols) > 0 {
		return cols[0]
	}
	return ""
}

func requireArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() != n {
		return fmt.Errorf("%w: %s expects %d argument(s): %s",
			sample.ErrInvalidInput, ctx.Command.Name, n, ctx.Command.ArgsUsage)
	}
	return nil
}
