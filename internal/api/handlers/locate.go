package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobscout/internal/cache"
	"jobscout/internal/config"
	"jobscout/internal/exporter"
	"jobscout/internal/logging"
	"jobscout/internal/workers"
	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

var validate = validator.New()

// LocateHandler handles job posting locate requests
func LocateHandler(cfg *config.Config, poolManager *workers.PoolManager, resultCache *cache.ResultCache, runExporter *exporter.Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.LogWithRequestID(requestID)

		var req models.LocateRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind locate request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Locate request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing locate request", map[string]interface{}{
			"job_title":      req.JobTitle,
			"company_name":   req.CompanyName,
			"company_domain": req.CompanyDomain,
		})

		useCache := cfg.Redis.Enabled && resultCache != nil && (req.Options == nil || !req.Options.NoCache)
		if useCache {
			if cached := resultCache.GetResult(c.Request().Context(), req.QueryParams()); cached != nil {
				logger.Info("Serving locate result from cache")
				return c.JSON(http.StatusOK, models.LocateResponse{
					Success:        true,
					Result:         cached,
					ProcessingTime: time.Since(startTime),
					Engine:         "cache",
					RequestID:      requestID,
					Cached:         true,
				})
			}
		}

		jobResult, err := poolManager.SubmitJob(c.Request().Context(), &req)
		if err != nil {
			logger.Error("Failed to submit locate job", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "job_submission_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if jobResult.Error != nil {
			logger.Error("Locate pipeline failed", map[string]interface{}{"error": jobResult.Error.Error()})
			exportArtifacts(runExporter, requestID, jobResult, logger)
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error:     "locate_failed",
				Message:   jobResult.Error.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if useCache {
			if err := resultCache.SetResult(c.Request().Context(), req.QueryParams(), jobResult.Result); err != nil {
				logger.Warn("Failed to cache locate result", map[string]interface{}{"error": err.Error()})
			}
		}

		exportArtifacts(runExporter, requestID, jobResult, logger)

		logger.Info("Locate request completed", map[string]interface{}{
			"processing_time": time.Since(startTime).String(),
			"engine":          jobResult.Engine,
		})

		return c.JSON(http.StatusOK, models.LocateResponse{
			Success:        true,
			Result:         jobResult.Result,
			ProcessingTime: time.Since(startTime),
			Engine:         jobResult.Engine,
			RequestID:      requestID,
		})
	}
}

// exportArtifacts persists the run artifacts. Export failures are logged
// and never surfaced to the caller.
func exportArtifacts(runExporter *exporter.Exporter, requestID string, jobResult *workers.JobResult, logger logging.Logger) {
	if runExporter == nil || jobResult.Result == nil {
		return
	}
	paths, err := runExporter.ExportRun(requestID, jobResult.Result, jobResult.Links)
	if err != nil {
		logger.Warn("Failed to export run artifacts", map[string]interface{}{"error": err.Error()})
		return
	}
	if len(paths) > 0 {
		logger.Debug("Run artifacts exported", map[string]interface{}{"artifacts": paths})
	}
}
