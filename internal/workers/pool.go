package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobscout/internal/config"
	"jobscout/internal/heuristics"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/internal/navigator"
	"jobscout/internal/pipeline"
	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

// JobResult is what a worker hands back for one locate run.
type JobResult struct {
	Result    *models.LocateResult
	Links     *models.LinksDump
	Error     error
	RequestID string
	Duration  time.Duration
	Engine    string
}

// LocateJob is a queued locate request.
type LocateJob struct {
	ID         string
	Request    *models.LocateRequest
	ResultChan chan JobResult
	Context    context.Context
	CreatedAt  time.Time
}

// Worker is a single worker goroutine.
type Worker struct {
	ID       int
	JobChan  chan LocateJob
	QuitChan chan bool
	Pool     *WorkerPool
	logger   types.Logger
}

// WorkerPool manages the worker goroutines and the job queue.
type WorkerPool struct {
	config      *config.Config
	workers     []*Worker
	jobQueue    chan LocateJob
	dispatcher  *Dispatcher
	rateLimiter *RateLimiter
	navigator   navigator.Navigator
	advisor     pipeline.Advisor
	tables      *heuristics.Tables
	weights     heuristics.Weights
	logger      types.Logger
	mu          sync.RWMutex
	running     bool
	stats       *poolCounters
}

// poolCounters tracks worker pool statistics under its own lock.
type poolCounters struct {
	mu                  sync.RWMutex
	JobsQueued          int64
	JobsProcessed       int64
	JobsSuccessful      int64
	JobsFailed          int64
	TotalProcessingTime time.Duration
}

// PoolStats is a point-in-time snapshot of the pool counters.
type PoolStats struct {
	JobsQueued            int64         `json:"jobs_queued"`
	JobsProcessed         int64         `json:"jobs_processed"`
	JobsSuccessful        int64         `json:"jobs_successful"`
	JobsFailed            int64         `json:"jobs_failed"`
	TotalProcessingTime   time.Duration `json:"total_processing_time"`
	AverageProcessingTime time.Duration `json:"average_processing_time"`
}

// NewWorkerPool creates a new worker pool instance
func NewWorkerPool(cfg *config.Config, nav navigator.Navigator, advisor pipeline.Advisor, tables *heuristics.Tables, weights heuristics.Weights) *WorkerPool {
	logger := logging.GetGlobalLogger()

	pool := &WorkerPool{
		config:      cfg,
		jobQueue:    make(chan LocateJob, cfg.Workers.QueueSize),
		rateLimiter: NewRateLimiter(cfg),
		navigator:   nav,
		advisor:     advisor,
		tables:      tables,
		weights:     weights,
		logger:      logger,
		stats:       &poolCounters{},
	}

	pool.workers = make([]*Worker, cfg.Workers.PoolSize)
	for i := 0; i < cfg.Workers.PoolSize; i++ {
		pool.workers[i] = &Worker{
			ID:       i + 1,
			JobChan:  make(chan LocateJob),
			QuitChan: make(chan bool),
			Pool:     pool,
			logger:   logger.WithField("worker_id", i+1),
		}
	}

	pool.dispatcher = NewDispatcher(pool.jobQueue, pool.workers)

	logger.Info("Worker pool initialized", map[string]interface{}{
		"pool_size": cfg.Workers.PoolSize,
	})
	return pool
}

// Start starts the worker pool
func (wp *WorkerPool) Start() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.running {
		return fmt.Errorf("worker pool is already running")
	}

	wp.logger.Info("Starting worker pool")

	wp.dispatcher.Start()
	for _, worker := range wp.workers {
		go worker.Start()
	}

	wp.running = true
	wp.logger.Info("Worker pool started successfully", map[string]interface{}{
		"workers": len(wp.workers),
	})
	return nil
}

// Stop stops the worker pool gracefully
func (wp *WorkerPool) Stop() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if !wp.running {
		return nil
	}

	wp.logger.Info("Stopping worker pool")

	wp.dispatcher.Stop()
	for _, worker := range wp.workers {
		worker.Stop()
	}
	close(wp.jobQueue)
	wp.rateLimiter.Stop()

	wp.running = false
	wp.logger.Info("Worker pool stopped successfully")
	return nil
}

// SubmitJob queues a locate request and waits for the result. The
// per-domain rate limit is enforced at submission, before any browser
// work happens.
func (wp *WorkerPool) SubmitJob(ctx context.Context, req *models.LocateRequest) (*JobResult, error) {
	if !wp.IsRunning() {
		return nil, fmt.Errorf("worker pool is not running")
	}

	domain := req.CompanyDomain
	if domain == "" {
		domain = req.CompanyName
	}
	if !wp.rateLimiter.Allow(domain) {
		return nil, fmt.Errorf("rate limit exceeded for domain: %s", domain)
	}

	job := LocateJob{
		ID:         utils.GenerateRequestID(),
		Request:    req,
		ResultChan: make(chan JobResult, 1),
		Context:    ctx,
		CreatedAt:  time.Now(),
	}

	wp.stats.mu.Lock()
	wp.stats.JobsQueued++
	wp.stats.mu.Unlock()

	select {
	case wp.jobQueue <- job:
		wp.logger.Info("Job submitted to queue", map[string]interface{}{
			"job_id":    job.ID,
			"job_title": req.JobTitle,
			"company":   req.CompanyName,
		})
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("job queue is full, request timed out")
	}

	timeout := wp.config.Workers.Timeout
	if req.Options != nil && req.Options.Timeout > 0 {
		timeout = req.Options.Timeout
	}

	select {
	case result := <-job.ResultChan:
		if result.Error != nil {
			wp.rateLimiter.RecordFailure(domain, result.Error)
		} else {
			wp.rateLimiter.RecordSuccess(domain)
		}
		return &result, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("job processing timed out after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IsRunning returns true if the worker pool is running
func (wp *WorkerPool) IsRunning() bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.running
}

// GetStats returns current pool statistics
func (wp *WorkerPool) GetStats() PoolStats {
	wp.stats.mu.RLock()
	defer wp.stats.mu.RUnlock()

	stats := PoolStats{
		JobsQueued:          wp.stats.JobsQueued,
		JobsProcessed:       wp.stats.JobsProcessed,
		JobsSuccessful:      wp.stats.JobsSuccessful,
		JobsFailed:          wp.stats.JobsFailed,
		TotalProcessingTime: wp.stats.TotalProcessingTime,
	}
	if stats.JobsProcessed > 0 {
		stats.AverageProcessingTime = stats.TotalProcessingTime / time.Duration(stats.JobsProcessed)
	}
	return stats
}

// Start starts the worker goroutine
func (w *Worker) Start() {
	w.logger.Info("Worker started")

	for {
		select {
		case job := <-w.JobChan:
			w.processJob(job)
		case <-w.QuitChan:
			w.logger.Info("Worker stopping")
			return
		}
	}
}

// Stop stops the worker
func (w *Worker) Stop() {
	w.QuitChan <- true
}

// processJob runs one locate job through the pipeline and ships the
// result back to the submitter.
func (w *Worker) processJob(job LocateJob) {
	startTime := time.Now()

	w.logger.Debug("Processing job", map[string]interface{}{
		"job_id":    job.ID,
		"job_title": job.Request.JobTitle,
	})

	w.Pool.stats.mu.Lock()
	w.Pool.stats.JobsProcessed++
	w.Pool.stats.mu.Unlock()

	result := w.locateJob(job)
	result.Duration = time.Since(startTime)

	w.Pool.stats.mu.Lock()
	w.Pool.stats.TotalProcessingTime += result.Duration
	if result.Error != nil {
		w.Pool.stats.JobsFailed++
	} else {
		w.Pool.stats.JobsSuccessful++
	}
	w.Pool.stats.mu.Unlock()

	select {
	case job.ResultChan <- result:
		w.logger.Info("Job completed", map[string]interface{}{
			"job_id":          job.ID,
			"processing_time": result.Duration,
			"success":         result.Error == nil,
		})
	case <-time.After(100 * time.Millisecond):
		w.logger.Debug("Result channel timeout, client may have disconnected", map[string]interface{}{
			"job_id": job.ID,
		})
	}
}

// locateJob opens a fresh navigator session and runs the pipeline.
func (w *Worker) locateJob(job LocateJob) JobResult {
	result := JobResult{
		RequestID: job.ID,
		Engine:    w.Pool.navigator.Engine(),
	}

	session, err := w.Pool.navigator.NewSession(job.Context)
	if err != nil {
		result.Error = fmt.Errorf("failed to open navigator session: %w", err)
		return result
	}
	defer session.Close()

	orchestrator := pipeline.NewOrchestrator(session, w.Pool.advisor, w.Pool.tables, w.Pool.weights)
	locateResult := orchestrator.Run(job.Context, job.Request.QueryParams())

	result.Result = locateResult
	result.Links = orchestrator.LinksDump()
	if !locateResult.Success {
		result.Error = fmt.Errorf("locate failed: %s", locateResult.Error)
	}
	return result
}
