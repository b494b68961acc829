package report

import (
	"bytes"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/statshypo/sample"
	"github.com/sartorproj/statshypo/stats"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestWriteDescription(t *testing.T) {
	d, err := sample.Describe([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDescription(&buf, "y", d))

	out := buf.String()
	assert.Contains(t, out, "y\n")
	assert.Contains(t, out, "STATISTIC")
	assert.Contains(t, out, "median")
	assert.Contains(t, out, "3.000")
	assert.Contains(t, out, "1.581")
	assert.Contains(t, out, "-1.300")
}

func TestWriteDescriptionNaN(t *testing.T) {
	d, err := sample.Describe([]float64{7})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDescription(&buf, "", d))
	assert.Contains(t, buf.String(), "NaN")
}

func TestWriteResult(t *testing.T) {
	r := &stats.Result{Test: "Single-Sample T-test", Statistic: 2.5, PValue: 0.03, DF: 9, N: 10}

	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, r, 0.05))
	out := buf.String()
	assert.Contains(t, out, "Single-Sample T-test")
	assert.Contains(t, out, "2.500")
	assert.Contains(t, out, "0.0300")
	assert.Contains(t, out, "reject H0 at alpha=0.05")
	assert.NotContains(t, out, "fail to reject")

	buf.Reset()
	require.NoError(t, WriteResult(&buf, r, 0.01))
	assert.Contains(t, buf.String(), "fail to reject H0 at alpha=0.01")
}

func TestWriteResultOmitsZeroDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, &stats.Result{Test: "Z", PValue: 1e-9}, 0.05))
	assert.NotContains(t, buf.String(), "df:")
	assert.Contains(t, buf.String(), "1.000e-09")
}

func TestWriteBootstrap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBootstrap(&buf, 95.05, 0.05, 100))

	out := buf.String()
	assert.Contains(t, out, "100")
	assert.Contains(t, out, "95.050")
	assert.Contains(t, out, "0.0500")
}

func TestWriteBootstrapResult(t *testing.T) {
	r := &stats.BootstrapResult{Test: "Bootstrapped Pearson's Correlation Coefficient", Statistic: 0.9, Cutoff: 0.95, PValue: 0.2, Iterations: 50}

	var buf bytes.Buffer
	require.NoError(t, WriteBootstrapResult(&buf, r, 0.05))
	assert.Contains(t, buf.String(), "fail to reject")
	assert.Contains(t, buf.String(), "0.950")
	assert.NotContains(t, buf.String(), "dropped")

	r.Dropped = 7
	buf.Reset()
	require.NoError(t, WriteBootstrapResult(&buf, r, 0.05))
	assert.Contains(t, buf.String(), "dropped:\t7")
}

func TestWriteResultFTest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, &stats.Result{Test: "One-Way ANOVA", Statistic: 12.667, PValue: 0.0011, DF: 2, DF2: 12}, 0.05))
	assert.Contains(t, buf.String(), "2.000, 12.000")
}

func TestWriteCorrelogram(t *testing.T) {
	acf := &stats.ACFResult{Values: []float64{1, -0.95, 0.05}, ConfBounds: 0.2}
	pacf := &stats.ACFResult{Values: []float64{1, -0.95, -0.3}, ConfBounds: 0.2}

	var buf bytes.Buffer
	require.NoError(t, WriteCorrelogram(&buf, acf, pacf))
	out := buf.String()
	assert.Contains(t, out, "+/-0.200")
	assert.Contains(t, out, "-0.950*")
	assert.Contains(t, out, "-0.300*")
	assert.NotContains(t, out, "0.050*")
}

func TestWriteDurbinWatson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDurbinWatson(&buf, 3.8, 20))
	assert.Contains(t, buf.String(), "3.800")
	assert.Contains(t, buf.String(), "negative first-order")

	buf.Reset()
	require.NoError(t, WriteDurbinWatson(&buf, 2.02, 20))
	assert.Contains(t, buf.String(), "no first-order")
}

func TestWriteDensity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDensity(&buf, []float64{0, 1}, []float64{0.5, math.NaN()}, 0.25))
	assert.Contains(t, buf.String(), "bandwidth: 0.250")
	assert.Contains(t, buf.String(), "0.5")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrors(t *testing.T) {
	assert.Error(t, WriteBootstrap(failingWriter{}, 1, 0.5, 10))
	assert.Error(t, WriteResult(failingWriter{}, &stats.Result{}, 0.05))
}
