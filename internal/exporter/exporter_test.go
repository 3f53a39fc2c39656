package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobscout/internal/config"
	"jobscout/pkg/models"
)

func localConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Exporter.OutputDir = t.TempDir()
	cfg.Exporter.DumpLinks = true
	cfg.Exporter.UploadMode = "local"
	return cfg
}

func TestExportRun_WritesResultAndLinks(t *testing.T) {
	t.Parallel()

	cfg := localConfig(t)
	e, err := NewExporter(cfg)
	require.NoError(t, err)

	result := &models.LocateResult{
		Success:   true,
		JobParams: models.JobQueryParams{JobTitle: "Engineer", CompanyName: "Acme"},
		Timestamp: time.Now(),
	}
	links := &models.LinksDump{
		BaseURL:    "https://acme.com",
		TotalLinks: 1,
		Links:      []models.Link{{URL: "https://acme.com/careers", Text: "Careers"}},
	}

	written, err := e.ExportRun("req-123", result, links)
	require.NoError(t, err)
	require.Len(t, written, 2)

	data, err := os.ReadFile(filepath.Join(cfg.Exporter.OutputDir, "req-123", "result.json"))
	require.NoError(t, err)

	var restored models.LocateResult
	require.NoError(t, json.Unmarshal(data, &restored))
	require.True(t, restored.Success)
	require.Equal(t, "Engineer", restored.JobParams.JobTitle)
}

func TestExportRun_SkipsLinksWhenDisabled(t *testing.T) {
	t.Parallel()

	cfg := localConfig(t)
	cfg.Exporter.DumpLinks = false

	e, err := NewExporter(cfg)
	require.NoError(t, err)

	written, err := e.ExportRun("req-456", &models.LocateResult{Success: true}, &models.LinksDump{})
	require.NoError(t, err)
	require.Len(t, written, 1)

	_, err = os.Stat(filepath.Join(cfg.Exporter.OutputDir, "req-456", "links.json"))
	require.True(t, os.IsNotExist(err))
}

func TestNewExporter_SpacesWithoutCredentials(t *testing.T) {
	t.Parallel()

	cfg := localConfig(t)
	cfg.Exporter.UploadMode = "spaces"

	_, err := NewExporter(cfg)
	require.ErrorIs(t, err, ErrStorageConfig)
}
