package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sartorproj/statshypo/report"
	"github.com/sartorproj/statshypo/sample"
	"github.com/sartorproj/statshypo/stats"
)

// testCommand runs one hypothesis test on the columns of a CSV file.
// statshypo test --column before --column2 after two-sample data.csv
// statshypo test --column a --column b --column c anova data.csv
var testCommand = cli.Command{
	Action:      runTest,
	Name:        "test",
	Usage:       "Runs a hypothesis test.",
	Description: "Available tests: " + strings.Join(testNames(), ", "),
	ArgsUsage:   "<test> <csv|->",
	Flags: []cli.Flag{
		&columnFlag,
		&column2Flag,
		&groupColumnFlag,
		&groupFlag,
		&muFlag,
		&sigmaFlag,
		&alternativeFlag,
		&equalVarianceFlag,
		&alphaFlag,
		&lagsFlag,
		&fitdfFlag,
		&regressionFlag,
		&iterationsFlag,
		&ratioFlag,
		&seedFlag,
	},
}

// inputKind says which columns a test reads and whether rows stay aligned.
type inputKind int

const (
	oneColumn         inputKind = iota
	twoIndependent              // --column and --column2, gaps skipped per column
	twoAligned                  // --column and --column2, incomplete rows dropped
	groupsIndependent           // every --column, gaps skipped per column
	groupsAligned               // every --column, incomplete rows dropped
)

// testInput is what a catalog entry needs to run.
type testInput struct {
	x, y   *sample.Sample
	groups []*sample.Sample
	alt    stats.Alternative
	ctx    *cli.Context
}

func (in testInput) groupValues() [][]float64 {
	values := make([][]float64, len(in.groups))
	for i, g := range in.groups {
		values[i] = g.Values
	}
	return values
}

type testEntry struct {
	input inputKind
	run   func(in testInput) (*stats.Result, error)
}

var catalog = map[string]testEntry{
	"z": {run: func(in testInput) (*stats.Result, error) {
		return stats.ZTest(in.x.Values, in.ctx.Float64(muFlag.Name), in.ctx.Float64(sigmaFlag.Name), in.alt)
	}},
	"t": {run: func(in testInput) (*stats.Result, error) {
		return stats.OneSampleTTest(in.x.Values, in.ctx.Float64(muFlag.Name), in.alt)
	}},
	"variance": {run: func(in testInput) (*stats.Result, error) {
		return stats.VarianceTest(in.x.Values, in.ctx.Float64(sigmaFlag.Name), in.alt)
	}},
	"skew": {run: func(in testInput) (*stats.Result, error) {
		return stats.SkewTest(in.x.Values)
	}},
	"kurtosis": {run: func(in testInput) (*stats.Result, error) {
		return stats.KurtosisTest(in.x.Values)
	}},
	"normal": {run: func(in testInput) (*stats.Result, error) {
		return stats.NormalTest(in.x.Values)
	}},
	"jarque-bera": {run: func(in testInput) (*stats.Result, error) {
		return stats.JarqueBera(in.x.Values)
	}},
	"two-sample": {input: twoIndependent, run: func(in testInput) (*stats.Result, error) {
		return stats.TwoSampleTTest(in.x.Values, in.y.Values, in.ctx.Bool(equalVarianceFlag.Name), in.alt)
	}},
	"mann-whitney": {input: twoIndependent, run: func(in testInput) (*stats.Result, error) {
		return stats.MannWhitneyU(in.x.Values, in.y.Values, in.alt)
	}},
	"ks": {input: twoIndependent, run: func(in testInput) (*stats.Result, error) {
		return stats.KolmogorovSmirnov(in.x.Values, in.y.Values)
	}},
	"paired": {input: twoAligned, run: func(in testInput) (*stats.Result, error) {
		return stats.PairedTTest(in.x.Values, in.y.Values, in.alt)
	}},
	"wilcoxon": {input: twoAligned, run: func(in testInput) (*stats.Result, error) {
		return stats.WilcoxonSignedRank(in.x.Values, in.y.Values, in.alt)
	}},
	"pearson": {input: twoAligned, run: func(in testInput) (*stats.Result, error) {
		return stats.Pearson(in.x.Values, in.y.Values, in.alt)
	}},
	"spearman": {input: twoAligned, run: func(in testInput) (*stats.Result, error) {
		return stats.Spearman(in.x.Values, in.y.Values, in.alt)
	}},
	"kendall": {input: twoAligned, run: func(in testInput) (*stats.Result, error) {
		return stats.KendallTau(in.x.Values, in.y.Values, in.alt)
	}},
	"anova": {input: groupsIndependent, run: func(in testInput) (*stats.Result, error) {
		return stats.OneWayANOVA(in.groupValues()...)
	}},
	"kruskal": {input: groupsIndependent, run: func(in testInput) (*stats.Result, error) {
		return stats.KruskalWallis(in.groupValues()...)
	}},
	"friedman": {input: groupsAligned, run: func(in testInput) (*stats.Result, error) {
		return stats.Friedman(in.groupValues()...)
	}},
	"ljung-box": {run: func(in testInput) (*stats.Result, error) {
		return stats.LjungBox(in.x, portmanteauLags(in.ctx), in.ctx.Int(fitdfFlag.Name))
	}},
	"box-pierce": {run: func(in testInput) (*stats.Result, error) {
		return stats.BoxPierce(in.x, portmanteauLags(in.ctx), in.ctx.Int(fitdfFlag.Name))
	}},
}

func portmanteauLags(ctx *cli.Context) int {
	if lags := ctx.Int(lagsFlag.Name); lags > 0 {
		return lags
	}
	return 10
}

// stationarity tests report through a different result type. Each builds
// the configured test so the differencing order uses the same settings.
var stationarity = map[string]func(ctx *cli.Context) stats.StationarityTest{
	"adf": func(ctx *cli.Context) stats.StationarityTest {
		return stats.ADFTest(ctx.Int(lagsFlag.Name))
	},
	"kpss": func(ctx *cli.Context) stats.StationarityTest {
		return stats.KPSSTest(ctx.String(regressionFlag.Name), ctx.Int(lagsFlag.Name))
	},
	"pp": func(ctx *cli.Context) stats.StationarityTest {
		return stats.PhillipsPerronTest(ctx.Int(lagsFlag.Name))
	},
}

// special tests with their own reporting.
var special = map[string]inputKind{
	"bootstrap-pearson": twoAligned,
	"durbin-watson":     oneColumn,
}

func testNames() []string {
	var names []string
	for name := range catalog {
		names = append(names, name)
	}
	for name := range stationarity {
		names = append(names, name)
	}
	for name := range special {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// inputFor returns the input a test needs and whether the test exists.
func inputFor(name string) (inputKind, bool) {
	if entry, ok := catalog[name]; ok {
		return entry.input, true
	}
	if _, ok := stationarity[name]; ok {
		return oneColumn, true
	}
	kind, ok := special[name]
	return kind, ok
}

func runTest(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}
	name, path := ctx.Args().Get(0), ctx.Args().Get(1)

	kind, known := inputFor(name)
	if !known {
		return fmt.Errorf("%w: unknown test %q (available: %s)",
			sample.ErrInvalidInput, name, strings.Join(testNames(), ", "))
	}

	alt, err := stats.ParseAlternative(ctx.String(alternativeFlag.Name))
	if err != nil {
		return err
	}

	ss, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer ss.close()

	in, err := loadTestInput(ctx, path, name, kind)
	if err != nil {
		return err
	}
	in.alt = alt

	ss.logger.Debug("running test", zap.String("test", name), zap.Int("columns", len(in.groups)))

	if build, ok := stationarity[name]; ok {
		return runStationarity(ctx, ss, in.x, build(ctx))
	}

	switch name {
	case "bootstrap-pearson":
		rs, err := sample.NewResampler(ss.cfg.BootstrapConfig(), ss.logger)
		if err != nil {
			return err
		}
		res, err := stats.BootstrapPearson(in.x.Values, in.y.Values, rs, ss.cfg.Alpha)
		if err != nil {
			return err
		}
		if res.Dropped > 0 {
			ss.logger.Warn("resamples without a correlation were dropped",
				zap.Int("dropped", res.Dropped), zap.Int("kept", res.Iterations))
		}
		return report.WriteBootstrapResult(ctx.App.Writer, res, ss.cfg.Alpha)
	case "durbin-watson":
		d, err := stats.DurbinWatson(in.x)
		if err != nil {
			return err
		}
		return report.WriteDurbinWatson(ctx.App.Writer, d, in.x.Len())
	}

	res, err := catalog[name].run(in)
	if err != nil {
		return err
	}
	return report.WriteResult(ctx.App.Writer, res, ss.cfg.Alpha)
}

// loadTestInput reads the columns kind asks for in a single pass over path.
func loadTestInput(ctx *cli.Context, path, name string, kind inputKind) (testInput, error) {
	in := testInput{ctx: ctx}

	var columns []string
	switch kind {
	case oneColumn:
		columns = []string{firstColumn(ctx)}
	case twoIndependent, twoAligned:
		col2 := ctx.String(column2Flag.Name)
		if col2 == "" {
			return in, fmt.Errorf("%w: %s needs --column2", sample.ErrInvalidInput, name)
		}
		columns = []string{firstColumn(ctx), col2}
	case groupsIndependent, groupsAligned:
		columns = ctx.StringSlice(columnFlag.Name)
		if len(columns) < 2 {
			return in, fmt.Errorf("%w: %s needs --column for each group, at least 2", sample.ErrInvalidInput, name)
		}
	}

	aligned := kind == twoAligned || kind == groupsAligned
	samples, err := loadColumns(ctx, path, columns, aligned)
	if err != nil {
		return in, err
	}

	in.groups = samples
	in.x = samples[0]
	if len(samples) > 1 {
		in.y = samples[1]
	}
	return in, nil
}

func runStationarity(ctx *cli.Context, ss *session, s *sample.Sample, test stats.StationarityTest) error {
	res, err := test(s)
	if err != nil {
		return err
	}
	if err := writeStationarity(ctx, res, ss.cfg.Alpha); err != nil {
		return err
	}

	d, err := stats.NDiffs(s, 2, ss.cfg.Alpha, test)
	if err != nil {
		ss.logger.Debug("differencing order unavailable", zap.Error(err))
		return nil
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "  differences needed: %d\n", d)
	return err
}

func writeStationarity(ctx *cli.Context, r *stats.StationarityResult, alpha float64) error {
	verdict := "non-stationary"
	if r.IsStationary(alpha) {
		verdict = "stationary"
	}
	res := &stats.Result{
		Test:        r.Test,
		Statistic:   r.Statistic,
		PValue:      r.PValue,
		N:           r.NObs,
		Alternative: stats.TwoSided,
	}
	if err := report.WriteResult(ctx.App.Writer, res, alpha); err != nil {
		return err
	}
	_, err := fmt.Fprintf(ctx.App.Writer, "  lags:\t\t%d\n  1%%/5%%/10%% critical: %.3f/%.3f/%.3f\n  series is %s at alpha=%g\n",
		r.Lags, r.CriticalVals["1%"], r.CriticalVals["5%"], r.CriticalVals["10%"], verdict, alpha)
	return err
}
