package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/sartorproj/statshypo/sample"
	"github.com/sartorproj/statshypo/stats"
)

// WriteDescription renders d as a two column table under title.
func WriteDescription(w io.Writer, title string, d sample.Description) error {
	var buf bytes.Buffer
	bold := color.New(color.Bold).SprintfFunc()

	if title != "" {
		fmt.Fprintf(&buf, "%s\n", bold(title))
	}

	tbl := tablewriter.NewWriter(&buf)
	tbl.SetHeader([]string{"Statistic", "Value"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	tbl.Append([]string{"count", strconv.Itoa(d.Count)})
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"min", d.Min},
		{"25%", d.Q25},
		{"median", d.Median},
		{"75%", d.Q75},
		{"max", d.Max},
		{"mean", d.Mean},
		{"std", d.StdDev},
		{"skewness", d.Skewness},
		{"kurtosis", d.Kurtosis},
	} {
		tbl.Append([]string{row.name, formatFloat(row.value)})
	}
	tbl.Render()

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteResult prints a test result and the verdict at level alpha.
func WriteResult(w io.Writer, r *stats.Result, alpha float64) error {
	var buf bytes.Buffer
	bold := color.New(color.Bold).SprintfFunc()

	fmt.Fprintf(&buf, "%s\n", bold(r.Test))
	fmt.Fprintf(&buf, "  statistic:\t%s\n", formatFloat(r.Statistic))
	switch {
	case r.DF2 > 0:
		fmt.Fprintf(&buf, "  df:\t\t%s, %s\n", formatFloat(r.DF), formatFloat(r.DF2))
	case r.DF > 0:
		fmt.Fprintf(&buf, "  df:\t\t%s\n", formatFloat(r.DF))
	}
	fmt.Fprintf(&buf, "  p-value:\t%s\n", formatP(r.PValue))
	fmt.Fprintf(&buf, "  n:\t\t%d\n", r.N)
	fmt.Fprintf(&buf, "  %s\n", verdict(r.Reject(alpha), alpha))

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteBootstrap prints the cutoff and empirical p-value of a bootstrap
// distribution.
func WriteBootstrap(w io.Writer, cutoff, p float64, iterations int) error {
	var buf bytes.Buffer

	tbl := tablewriter.NewWriter(&buf)
	tbl.SetHeader([]string{"Iterations", "Cutoff", "P-Value"})
	tbl.SetBorder(true)
	tbl.Append([]string{strconv.Itoa(iterations), formatFloat(cutoff), formatP(p)})
	tbl.Render()

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteBootstrapResult prints a bootstrap test with its verdict.
func WriteBootstrapResult(w io.Writer, r *stats.BootstrapResult, alpha float64) error {
	var buf bytes.Buffer
	bold := color.New(color.Bold).SprintfFunc()

	fmt.Fprintf(&buf, "%s\n", bold(r.Test))
	fmt.Fprintf(&buf, "  statistic:\t%s\n", formatFloat(r.Statistic))
	fmt.Fprintf(&buf, "  cutoff:\t%s\n", formatFloat(r.Cutoff))
	fmt.Fprintf(&buf, "  p-value:\t%s\n", formatP(r.PValue))
	fmt.Fprintf(&buf, "  iterations:\t%d\n", r.Iterations)
	if r.Dropped > 0 {
		fmt.Fprintf(&buf, "  dropped:\t%d (statistic undefined)\n", r.Dropped)
	}
	fmt.Fprintf(&buf, "  %s\n", verdict(r.Reject(alpha), alpha))

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteDensity prints density estimates at each query point.
func WriteDensity(w io.Writer, xs, densities []float64, bandwidth float64) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "bandwidth: %s\n", formatFloat(bandwidth))
	tbl := tablewriter.NewWriter(&buf)
	tbl.SetHeader([]string{"X", "Density"})
	tbl.SetBorder(true)
	for i, x := range xs {
		tbl.Append([]string{formatFloat(x), strconv.FormatFloat(densities[i], 'g', 6, 64)})
	}
	tbl.Render()

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteCorrelogram prints autocorrelations and partial autocorrelations by
// lag. Values outside the confidence bounds are marked with "*".
func WriteCorrelogram(w io.Writer, acf, pacf *stats.ACFResult) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "95%% bounds: +/-%s\n", formatFloat(acf.ConfBounds))
	tbl := tablewriter.NewWriter(&buf)
	tbl.SetHeader([]string{"Lag", "ACF", "PACF"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for k := 1; k < len(acf.Values); k++ {
		row := []string{strconv.Itoa(k), markSignificant(acf.Values[k], acf.ConfBounds), ""}
		if k < len(pacf.Values) {
			row[2] = markSignificant(pacf.Values[k], pacf.ConfBounds)
		}
		tbl.Append(row)
	}
	tbl.Render()

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteDurbinWatson prints the Durbin-Watson statistic of n observations.
func WriteDurbinWatson(w io.Writer, d float64, n int) error {
	var buf bytes.Buffer
	bold := color.New(color.Bold).SprintfFunc()

	fmt.Fprintf(&buf, "%s\n", bold("Durbin-Watson Statistic"))
	fmt.Fprintf(&buf, "  statistic:\t%s\n", formatFloat(d))
	fmt.Fprintf(&buf, "  n:\t\t%d\n", n)
	fmt.Fprintf(&buf, "  %s\n", durbinWatsonNote(d))

	_, err := w.Write(buf.Bytes())
	return err
}

func durbinWatsonNote(d float64) string {
	switch {
	case d < 1.5:
		return color.YellowString("positive first-order autocorrelation suspected")
	case d > 2.5:
		return color.YellowString("negative first-order autocorrelation suspected")
	}
	return "no first-order autocorrelation indicated"
}

func markSignificant(v, bound float64) string {
	s := formatFloat(v)
	if math.Abs(v) > bound {
		s += "*"
	}
	return s
}

func verdict(reject bool, alpha float64) string {
	if reject {
		return color.RedString("reject H0 at alpha=%g", alpha)
	}
	return color.GreenString("fail to reject H0 at alpha=%g", alpha)
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatP(p float64) string {
	if p != 0 && p < 1e-4 {
		return strconv.FormatFloat(p, 'e', 3, 64)
	}
	return strconv.FormatFloat(p, 'f', 4, 64)
}
