package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seisgrad/sensitivity"
)

const smallConfig = `
grid:
  shape: [5, 5]
  spacing: [1, 1]
  nt: 4
imaging:
  frequencies: [2, 3]
`

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "seisgrad", cmd.Use)

	for _, name := range []string{"table", "gradient", "source", "roundtrip"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "table", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestTable(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[4], "isic_freq")

	out, err = execute(t, "table", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Status string      `json:"status"`
		Data   TableResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Rows, 4)
	assert.Equal(t, TableRow{Frequencies: true, ISIC: false, Condition: "corr_freq", Source: "corr"}, resp.Data.Rows[2])
}

func TestGradient(t *testing.T) {
	path := writeConfig(t, smallConfig)

	out, err := execute(t, "gradient", "-c", path, "--condition", "corr")
	require.NoError(t, err)
	assert.Equal(t,
		"# corr\ngrad(x, y) = -dt*v(t, x, y)*Derivative(u(t, x, y), (t, 2))/rho(x, y) + grad(x, y)\n", out)

	// frequencies in the configuration select corr_freq
	out, err = execute(t, "gradient", "-c", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# corr_freq", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ufr(freq_dim, x, y) = "))
	assert.True(t, strings.HasPrefix(lines[3], "grad(x, y) = (2*pi*f(freq_dim))**2*"))

	_, err = execute(t, "gradient", "-c", path, "--condition", "born")
	assert.ErrorIs(t, err, sensitivity.ErrUnknownCondition)

	bare := writeConfig(t, "grid:\n  shape: [5]\n  spacing: [1]\n  nt: 4\n")
	_, err = execute(t, "gradient", "-c", bare, "--condition", "isic_freq")
	assert.ErrorIs(t, err, sensitivity.ErrNoFrequencies)
}

func TestSource(t *testing.T) {
	path := writeConfig(t, smallConfig)

	out, err := execute(t, "source", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "# corr\n-dm(x, y)*irho(x, y)*Derivative(u(t, x, y), (t, 2))\n", out)

	out, err = execute(t, "source", "-c", path, "--formula", "isic", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Data EquationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "isic", resp.Data.Key)
	require.Len(t, resp.Data.Equations, 1)
	assert.Contains(t, resp.Data.Equations[0], "Derivative(Derivative(u(t, x, y), (x, 1))*dm(x, y)*irho(x, y), (x, 1))")

	_, err = execute(t, "source", "-c", path, "--formula", "corr_freq")
	assert.ErrorIs(t, err, sensitivity.ErrUnknownSource)
}

func TestRoundTrip(t *testing.T) {
	out, err := execute(t, "roundtrip", "--nt", "32", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data RoundTripResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	r := resp.Data
	assert.Equal(t, 32, r.Steps)
	assert.Greater(t, r.Time, 0.0)
	assert.Greater(t, r.RelativeError, 0.0)
	assert.Less(t, r.RelativeError, r.Expected+1e-6)
	assert.Less(t, r.SpectrumError, 1e-9, "accumulated DFT must match the FFT of the trace")

	_, err = execute(t, "roundtrip", "--nt", "8", "--periods", "4")
	require.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "gradient", "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
