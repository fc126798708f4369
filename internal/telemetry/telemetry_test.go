package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	inner := NewTestAPI(t)
	scoped := NewScopedAPI("docs", inner)

	scoped.ReportWarning("client.fetch", "oops")
	scoped.ReportCount("rules", 3)

	warnings := inner.Reports("warning")
	require.Len(t, warnings, 1)
	require.Equal(t, "docs: client.fetch", warnings[0].Id)
	require.Equal(t, []any{"oops"}, warnings[0].Params)

	counts := inner.Reports("count")
	require.Len(t, counts, 1)
	require.Equal(t, "docs: rules", counts[0].Id)
	require.Equal(t, int64(3), counts[0].Count)
}

func TestSetupWithoutExporters(t *testing.T) {
	tel, err := Setup(context.Background(), "test:telemetry", Config{})
	if err != nil {
		t.Fatal(err)
	}
	require.Nil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	out, err := NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}

	out.Write("1", "hello")
	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "hello", string(contents))

	// recreating clears out old dumps
	_, err = NewFilesystemOutput(dir)
	if err != nil {
		t.Fatal(err)
	}
	_, err = os.Stat(filepath.Join(dir, "1"))
	require.True(t, os.IsNotExist(err))
}

func TestReportResourceUsage(t *testing.T) {
	tel := NewTestAPI(t)
	ReportResourceUsage(tel)
	require.NotEmpty(t, tel.Reports("count"))
}
