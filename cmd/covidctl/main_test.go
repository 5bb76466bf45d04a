package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sample = "../../internal/dataset/testdata/covid_sample.csv"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data", sample}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSummary(t *testing.T) {
	out, err := run(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total number of countries/regions: 4")
	assert.Contains(t, out, "Date range: from 2020-01-22 to 2020-01-24")
	assert.Contains(t, out, "Total confirmed cases: 601")
	assert.Contains(t, out, "Case fatality rate: 4.33%")
	assert.Contains(t, out, "Western Pacific")
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "plot", "--out", dir)
	require.NoError(t, err)

	for _, name := range []string{"global_trends.png", "regional_impact.png"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), name)
	}

	_, err = run(t, "plot", "--out", dir, "--format", "gif")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "italy.xlsx")
	_, err := run(t, "export", "--out", path, "--country", "Italy")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Daily")
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	_, err = run(t, "export", "--out", path, "--country", "Narnia")
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "partial file is removed")
}

func TestImportNeedsDatabase(t *testing.T) {
	t.Setenv("DB_SERVER", "")
	_, err := run(t, "import")
	assert.ErrorIs(t, err, errNoDatabase)
}

func TestMissingData(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"summary", "--data", filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, cmd.Execute())
}
