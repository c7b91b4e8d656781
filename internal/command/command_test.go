package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := New(&out, &errOut)
	err = app.Run(append([]string{"annuity"}, args...))
	return out.String(), errOut.String(), err
}

func TestApp_Formulas(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "pmt",
			args: []string{"pmt", "--rate", "0.01", "--nper", "360", "--pv", "100000"},
			want: "-1028.6125969255042\n",
		},
		{
			name: "pmt in dollars",
			args: []string{"pmt", "--rate", "0.01", "--nper", "360", "--pv", "100000", "--curr", "USD"},
			want: "USD -1028.61\n",
		},
		{
			name: "pmt at the beginning",
			args: []string{"pmt", "--rate", "0.01", "--nper", "360", "--pv", "100000", "--when", "begin", "--curr", "USD"},
			want: "USD -1018.43\n",
		},
		{
			name: "fv",
			args: []string{"fv", "--rate", "0.02", "--nper", "12", "--pmt", "100", "--pv", "400"},
			want: "-1848.5056906377456\n",
		},
		{
			name: "ipmt",
			args: []string{"ipmt", "--rate", "0.01", "--per", "1", "--nper", "360", "--pv", "100000", "--fv", "30000"},
			want: "-1000\n",
		},
		{
			name: "ppmt in dollars",
			args: []string{"ppmt", "--rate", "0.01", "--per", "1", "--nper", "360", "--pv", "100000", "--curr", "USD"},
			want: "USD -28.61\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestApp_ZeroRate(t *testing.T) {
	got, logs, err := run(t, "pmt", "--rate", "0", "--nper", "360", "--pv", "100000")
	require.NoError(t, err)
	require.Equal(t, "NaN\n", got)
	require.Contains(t, logs, "level=WARN")
	require.Contains(t, logs, "component=cli")

	_, _, err = run(t, "pmt", "--rate", "0", "--nper", "360", "--pv", "100000", "--curr", "USD")
	require.Error(t, err)
}

func TestApp_Verbose(t *testing.T) {
	_, logs, err := run(t, "pmt", "--rate", "0.01", "--nper", "12", "--pv", "1000")
	require.NoError(t, err)
	require.NotContains(t, logs, "level=DEBUG")

	_, logs, err = run(t, "--verbose", "pmt", "--rate", "0.01", "--nper", "12", "--pv", "1000")
	require.NoError(t, err)
	require.Contains(t, logs, "level=DEBUG")
	require.Contains(t, logs, "func=pmt")
}

func TestApp_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing rate", []string{"pmt", "--nper", "360", "--pv", "100000"}},
		{"missing period", []string{"ipmt", "--rate", "0.01", "--nper", "360", "--pv", "100000"}},
		{"unknown timing", []string{"pmt", "--rate", "0.01", "--nper", "360", "--pv", "100000", "--when", "middle"}},
		{"rate underflow", []string{"pmt", "--rate", "1e-20", "--nper", "360", "--pv", "100000", "--curr", "USD"}},
		{"unknown currency", []string{"pmt", "--rate", "0.01", "--nper", "360", "--pv", "100000", "--curr", "ABC"}},
		{"batch without file", []string{"batch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const batchYAML = `
calculations:
  - name: mortgage
    func: pmt
    rate: 0.01
    nper: 360
    pv: 100000
  - name: first interest
    func: ipmt
    rate: 0.01
    per: 1
    nper: 360
    pv: 100000
    fv: 30000
  - func: ppmt
    rate: 0.01
    per: 1
    nper: 360
    pv: 100000
    curr: USD
  - name: savings
    func: fv
    rate: 0.02
    nper: 12
    pmt: 100
    pv: 400
  - name: due
    func: pmt
    rate: 0.01
    nper: 360
    pv: 100000
    when: begin
    curr: USD
`

const batchTOML = `
[[calculations]]
name = "mortgage"
func = "pmt"
rate = 0.01
nper = 360
pv = 100000.0

[[calculations]]
name = "due"
func = "pmt"
rate = 0.01
nper = 360
pv = 100000.0
when = "begin"
curr = "USD"
`

func TestApp_Batch(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "calc.yaml", batchYAML)
		got, _, err := run(t, "batch", path)
		require.NoError(t, err)
		want := "mortgage\tpmt\t-1028.6125969255042\n" +
			"first interest\tipmt\t-1000\n" +
			"#3\tppmt\tUSD -28.61\n" +
			"savings\tfv\t-1848.5056906377456\n" +
			"due\tpmt\tUSD -1018.43\n"
		require.Equal(t, want, got)
	})

	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "calc.toml", batchTOML)
		got, _, err := run(t, "batch", path)
		require.NoError(t, err)
		want := "mortgage\tpmt\t-1028.6125969255042\n" +
			"due\tpmt\tUSD -1018.43\n"
		require.Equal(t, want, got)
	})

	t.Run("unknown func", func(t *testing.T) {
		path := writeFile(t, "calc.yml", "calculations:\n  - name: bad\n    func: npv\n    rate: 0.1\n")
		_, _, err := run(t, "batch", path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "calculation bad")
	})
}
