// Report job queue. Generation itself is sub-millisecond; the configurable
// processing delay exists so the job lifecycle (PENDING, PROCESSING, READY)
// is observable in the UI, mirroring how a real report backend would behave.
package jobs

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/appdb"
	"github.com/aquawatch/aquawatch_backend/pkg/report"
	"github.com/aquawatch/aquawatch_backend/pkg/types"
)

var ErrJobNotFound = fmt.Errorf("report job not found")

type Queue struct {
	NewID           IDSource
	Now             func() time.Time
	ProcessingDelay time.Duration
	OutputDir       string

	// Report config per job, kept so Retry can re-render
	mu      sync.Mutex
	configs map[string]jobConfig
}

type jobConfig struct {
	sources report.DataSources
	format  types.ReportFormat
}

func NewQueue(outputDir string, processingDelay time.Duration) *Queue {
	return &Queue{
		NewID:           DefaultIDSource,
		Now:             time.Now,
		ProcessingDelay: processingDelay,
		OutputDir:       outputDir,
		configs:         make(map[string]jobConfig),
	}
}

// Submit persists a PENDING job and starts processing it in the background.
// The returned snapshot reflects the job at submission time.
func (q *Queue) Submit(d report.DataSources, format types.ReportFormat) (types.ReportJob, error) {
	jobId := q.NewID()
	requestedAt := q.Now().UTC().Format(time.RFC3339)

	row := &appdb.DbReportJob{
		JobId:       jobId,
		ReportType:  d.ReportType,
		Format:      string(format),
		Status:      string(types.ReportPending),
		RequestedAt: requestedAt,
	}
	if err := appdb.InsertReportJob(row); err != nil {
		return types.ReportJob{}, fmt.Errorf("persist report job: %w", err)
	}

	q.mu.Lock()
	q.configs[jobId] = jobConfig{sources: d, format: format}
	q.mu.Unlock()

	go q.process(jobId, d, format)

	return row.ToReportJob(), nil
}

func (q *Queue) process(jobId string, d report.DataSources, format types.ReportFormat) {
	if err := appdb.UpdateReportJobStatus(jobId, string(types.ReportProcessing), "", "", ""); err != nil {
		log.Printf("job %s: mark processing: %v", jobId, err)
	}

	if q.ProcessingDelay > 0 {
		time.Sleep(q.ProcessingDelay)
	}

	artifact, err := report.Render(d, format)
	if err != nil {
		q.fail(jobId, err)
		return
	}

	basename := report.BuildFilename(d.ReportType, q.Now(), jobId)
	path, err := report.Save(artifact, q.OutputDir, basename)
	if err != nil {
		q.fail(jobId, err)
		return
	}

	completedAt := q.Now().UTC().Format(time.RFC3339)
	if err := appdb.UpdateReportJobStatus(jobId, string(types.ReportReady), completedAt, path, ""); err != nil {
		log.Printf("job %s: mark ready: %v", jobId, err)
	}
}

func (q *Queue) fail(jobId string, cause error) {
	completedAt := q.Now().UTC().Format(time.RFC3339)
	if err := appdb.UpdateReportJobStatus(jobId, string(types.ReportFailed), completedAt, "", cause.Error()); err != nil {
		log.Printf("job %s: mark failed: %v", jobId, err)
	}
}

// Retry re-runs a failed or finished job with its original configuration.
func (q *Queue) Retry(jobId string) error {
	q.mu.Lock()
	cfg, ok := q.configs[jobId]
	q.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobId)
	}

	go q.process(jobId, cfg.sources, cfg.format)
	return nil
}

// Cancel removes the job row and forgets its configuration. Processing that
// already started still runs to completion against the deleted row, which
// is harmless: the status update simply affects zero rows.
func (q *Queue) Cancel(jobId string) error {
	q.mu.Lock()
	delete(q.configs, jobId)
	q.mu.Unlock()
	return appdb.DeleteReportJob(jobId)
}

func (q *Queue) Get(jobId string) (types.ReportJob, error) {
	row, err := appdb.GetReportJob(jobId)
	if err != nil {
		return types.ReportJob{}, err
	}
	if row == nil {
		return types.ReportJob{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobId)
	}
	return row.ToReportJob(), nil
}

func (q *Queue) List() ([]types.ReportJob, error) {
	rows, err := appdb.ListReportJobs()
	if err != nil {
		return nil, err
	}
	jobs := make([]types.ReportJob, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, r.ToReportJob())
	}
	return jobs, nil
}
