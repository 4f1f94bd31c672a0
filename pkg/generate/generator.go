package generate

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/sdejongh/checknorris/internal/platform"
	"github.com/sdejongh/checknorris/pkg/checksum"
	"github.com/sdejongh/checknorris/pkg/logging"
	"github.com/sdejongh/checknorris/pkg/manifest"
	"github.com/sdejongh/checknorris/pkg/models"
	"github.com/sdejongh/checknorris/pkg/output"
	"github.com/sdejongh/checknorris/pkg/storage"
)

// Generator orchestrates the enumerate / fan-out / fan-in pipeline that
// produces a checksum manifest for one directory tree.
//
// The full file list is gathered before any hashing starts, so the
// fan-out is bounded: the worker count caps concurrent open file
// handles and hashing, not total work. Results are written to the sink
// in completion order by a single collector goroutine, which is the
// only writer; the manifest format carries no ordering meaning, so the
// nondeterministic row order is safe.
type Generator struct {
	backend   storage.Backend
	engine    checksum.Engine
	formatter output.Formatter
	logger    logging.Logger
	workers   int
}

// New creates a generator. A nil logger disables logging; a nil
// formatter disables progress reporting; workers < 1 selects one worker
// per CPU.
func New(backend storage.Backend, engine checksum.Engine, formatter output.Formatter, logger logging.Logger, workers int) *Generator {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Generator{
		backend:   backend,
		engine:    engine,
		formatter: formatter,
		logger:    logger,
		workers:   workers,
	}
}

// Run walks the backend's tree, checksums every regular file, and
// writes one manifest line per file to sink as results complete.
//
// A per-file checksum failure becomes a failure-sentinel entry and is
// counted; it never aborts the run or other in-flight tasks. An
// enumeration failure aborts the run, since the task list cannot be
// established. Run returns once every task has produced a result and
// every line has been written.
func (g *Generator) Run(ctx context.Context, sink io.Writer) (*models.GenerateReport, error) {
	startTime := time.Now()

	g.logger.Info(ctx, "Enumerating files", logging.Fields{
		"root": g.backend.Root(),
	})

	files, err := g.backend.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", g.backend.Root(), err)
	}

	report := &models.GenerateReport{
		RootDir:   g.backend.Root(),
		Algorithm: g.engine.Name(),
		Workers:   g.workers,
		StartTime: startTime,
	}

	g.logger.Info(ctx, "Starting checksum workers", logging.Fields{
		"files":     len(files),
		"workers":   g.workers,
		"algorithm": g.engine.Name(),
	})

	if g.formatter != nil {
		g.formatter.Start(len(files))
	}

	tasks := make(chan *Task)
	results := make(chan *Task)

	var workersWg sync.WaitGroup
	for i := 0; i < g.workers; i++ {
		workersWg.Add(1)
		go g.runWorker(ctx, i, tasks, results, &workersWg)
	}

	// Feed the queue. The task list is fixed, so this producer only
	// stops early on cancellation.
	go func() {
		defer close(tasks)
		for i := range files {
			task := NewTask(platform.ToKey(files[i].RelativePath), files[i].Path, files[i].Size)
			select {
			case <-ctx.Done():
				return
			case tasks <- task:
			}
		}
	}()

	go func() {
		workersWg.Wait()
		close(results)
	}()

	// Single collector: the sink is the only shared mutable resource,
	// and lines are only ever written whole, from here.
	var sinkErr error
	for task := range results {
		if sinkErr != nil {
			continue // drain remaining results
		}

		entry := manifest.Entry{Key: task.Key, Digest: task.Digest}
		if err := manifest.Write(sink, entry); err != nil {
			sinkErr = err
			continue
		}

		report.FileCount++
		if task.Err != nil {
			report.ErrorCount++
			report.Failures = append(report.Failures, models.FileFailure{
				Key:       task.Key,
				Error:     task.Err.Error(),
				Timestamp: time.Now(),
			})
			if g.formatter != nil {
				g.formatter.FileError(task.Key, task.Err)
			}
		} else {
			if g.formatter != nil {
				g.formatter.FileDone(task.Key)
			}
		}
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	if sinkErr != nil {
		return report, fmt.Errorf("failed to write manifest: %w", sinkErr)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if g.formatter != nil {
		g.formatter.Complete(report)
	}

	g.logger.Info(ctx, "Manifest generation completed", logging.Fields{
		"files":    report.FileCount,
		"errors":   report.ErrorCount,
		"duration": report.Duration.String(),
	})

	return report, nil
}

// runWorker consumes tasks until the queue closes or the context is
// cancelled
func (g *Generator) runWorker(ctx context.Context, workerID int, tasks <-chan *Task, results chan<- *Task, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-tasks:
			if !ok {
				return
			}
			g.processTask(ctx, workerID, task)

			select {
			case <-ctx.Done():
				return
			case results <- task:
			}
		}
	}
}

// processTask checksums one file, converting any failure into a task
// result instead of propagating it
func (g *Generator) processTask(ctx context.Context, workerID int, task *Task) {
	startTime := time.Now()
	task.MarkProcessing(workerID)

	digest, err := g.engine.Sum(ctx, task.Path)
	if err != nil {
		task.MarkFailed(err, time.Since(startTime))
		g.logger.Error(ctx, "Checksum failed", err, logging.Fields{
			"key":    task.Key,
			"worker": workerID,
		})
		return
	}

	task.MarkDone(digest, time.Since(startTime))
	g.logger.Debug(ctx, "Checksum computed", logging.Fields{
		"key":    task.Key,
		"digest": digest,
		"worker": workerID,
	})
}
