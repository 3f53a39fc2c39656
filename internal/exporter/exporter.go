// Package exporter persists run artifacts, the final locate result and
// the landing-page links dump, to local disk or DigitalOcean Spaces.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/pkg/models"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrStorageConfig = errors.New("storage_configuration")
	ErrUpload        = errors.New("upload_failed")
)

// Exporter writes run artifacts according to the configured upload
// mode. Export failures never fail the run that produced the data.
type Exporter struct {
	config *config.Config
	spaces *SpacesClient
	logger types.Logger
}

// NewExporter creates an exporter. In spaces mode the client is created
// eagerly so credential problems surface at startup.
func NewExporter(cfg *config.Config) (*Exporter, error) {
	e := &Exporter{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}

	if cfg.Exporter.UploadMode == "spaces" {
		spaces, err := NewSpacesClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageConfig, err)
		}
		e.spaces = spaces
	}

	return e, nil
}

// ExportRun persists the result of one locate run and, when enabled,
// the links dump captured on the company landing page. Returns the
// locations (paths or URLs) of the written artifacts.
func (e *Exporter) ExportRun(requestID string, result *models.LocateResult, links *models.LinksDump) ([]string, error) {
	artifacts := map[string][]byte{}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal locate result: %w", err)
	}
	artifacts["result.json"] = resultJSON

	if e.config.Exporter.DumpLinks && links != nil {
		linksJSON, err := json.MarshalIndent(links, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal links dump: %w", err)
		}
		artifacts["links.json"] = linksJSON
	}

	if e.spaces != nil {
		return e.uploadArtifacts(requestID, artifacts)
	}
	return e.writeArtifacts(requestID, artifacts)
}

func (e *Exporter) writeArtifacts(requestID string, artifacts map[string][]byte) ([]string, error) {
	dir := filepath.Join(e.config.Exporter.OutputDir, requestID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}

	var written []string
	for name, data := range artifacts {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write artifact %s: %w", name, err)
		}
		written = append(written, path)
	}

	e.logger.Debug("Run artifacts written", map[string]interface{}{
		"request_id": requestID,
		"dir":        dir,
		"count":      len(written),
	})
	return written, nil
}

func (e *Exporter) uploadArtifacts(requestID string, artifacts map[string][]byte) ([]string, error) {
	var urls []string
	for name, data := range artifacts {
		url, err := e.spaces.UploadArtifact(requestID, name, data)
		if err != nil {
			return urls, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
