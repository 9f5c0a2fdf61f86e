package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hpc-toolchain/license-manager/pkg/agent/server"
	"github.com/hpc-toolchain/license-manager/pkg/agent/slurm"
	"github.com/hpc-toolchain/license-manager/pkg/backend"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// maxFanOut bounds concurrent ledger fetches and license server queries
// within one cycle.
const maxFanOut = 16

// noGraceTime marks a job whose bookings touch no known configuration.
// Such bookings are preserved rather than expired.
const noGraceTime = -1

// ErrEmptyReport is returned when no license data could be collected in a
// cycle. The trigger surface maps it to a 400.
var ErrEmptyReport = errors.New("no license data could be collected")

// QueueReader reads the workload scheduler queue.
type QueueReader interface {
	Queue(ctx context.Context) ([]slurm.Job, error)
}

// Reconciler runs the agent's reconciliation cycle.
type Reconciler struct {
	settings *Settings
	backend  *backend.Client
	queue    QueueReader
}

// NewReconciler wires the cycle's collaborators.
func NewReconciler(settings *Settings, client *backend.Client, queue QueueReader) *Reconciler {
	return &Reconciler{settings: settings, backend: client, queue: queue}
}

// Cycle runs one reconciliation pass: sweep expired bookings, collect the
// usage report and PATCH it to the ledger. An unreadable or empty
// scheduler queue aborts the cycle without error.
func (r *Reconciler) Cycle(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.settings.ReconcileTimeout)
	defer cancel()

	jobs, err := r.queue.Queue(ctx)
	if err != nil {
		slog.Warn("Scheduler queue read failed, skipping cycle", "error", err)
		return nil
	}
	if len(jobs) == 0 {
		slog.Info("Scheduler queue is empty, skipping cycle")
		return nil
	}

	configs, err := r.backend.Configurations(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch configurations: %w", err)
	}

	if err := r.sweepGraceTimes(ctx, jobs, configs); err != nil {
		return err
	}
	if err := r.collectOrphanedBookings(ctx, jobs); err != nil {
		return err
	}

	report := r.buildReport(ctx, configs)
	if len(report) == 0 {
		slog.Error("No license data could be collected, " +
			"check tool paths and license server hosts/ports in settings")
		return ErrEmptyReport
	}

	updated, err := r.backend.Reconcile(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to deliver report: %w", err)
	}

	slog.Info("Reconciliation cycle complete",
		"report_items", len(report), "inventories_updated", updated)
	return nil
}

// sweepGraceTimes releases the bookings of running jobs that have been
// running longer than the greatest grace time across the configurations
// their bookings touch.
func (r *Reconciler) sweepGraceTimes(ctx context.Context, jobs []slurm.Job, configs []models.Configuration) error {
	graceByConfigID := make(map[int]int, len(configs))
	for _, config := range configs {
		graceByConfigID[config.ID] = config.GraceTime
	}

	var running []slurm.Job
	for _, job := range jobs {
		if job.State == slurm.StateRunning {
			running = append(running, job)
		}
	}

	bookingsByJob := make(map[int][]models.Booking, len(running))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut)
	for _, job := range running {
		g.Go(func() error {
			bookings, err := r.backend.BookingsForJob(gctx, job.JobID)
			if err != nil {
				return fmt.Errorf("failed to fetch bookings for job %d: %w", job.JobID, err)
			}
			mu.Lock()
			bookingsByJob[job.JobID] = bookings
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, job := range running {
		grace := greatestGraceTime(bookingsByJob[job.JobID], graceByConfigID)
		if grace == noGraceTime || job.RunTimeSeconds <= grace {
			continue
		}

		deleted, err := r.backend.ReleaseJob(ctx, job.JobID)
		if err != nil {
			slog.Error("Could not release expired bookings",
				"slurm_job_id", job.JobID, "error", err)
			continue
		}
		slog.Info("Released expired bookings",
			"slurm_job_id", job.JobID,
			"run_time_seconds", job.RunTimeSeconds,
			"grace_time", grace,
			"bookings", deleted)
	}
	return nil
}

// greatestGraceTime returns the maximum grace time over the configurations
// the bookings touch, or noGraceTime when none is known.
func greatestGraceTime(bookings []models.Booking, graceByConfigID map[int]int) int {
	greatest := noGraceTime
	for _, booking := range bookings {
		if booking.Edges.Feature == nil {
			continue
		}
		grace, ok := graceByConfigID[booking.Edges.Feature.ConfigID]
		if ok && grace > greatest {
			greatest = grace
		}
	}
	return greatest
}

// collectOrphanedBookings releases bookings held by ledger jobs that are no
// longer present in the scheduler queue.
func (r *Reconciler) collectOrphanedBookings(ctx context.Context, jobs []slurm.Job) error {
	cluster, err := r.backend.Cluster(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch cluster state: %w", err)
	}

	queued := make(map[int]bool, len(jobs))
	for _, job := range jobs {
		queued[job.JobID] = true
	}

	for _, job := range cluster.Edges.Jobs {
		if queued[job.SlurmJobID] {
			continue
		}
		deleted, err := r.backend.ReleaseJob(ctx, job.SlurmJobID)
		if err != nil {
			slog.Error("Could not release bookings of vanished job",
				"slurm_job_id", job.SlurmJobID, "error", err)
			continue
		}
		if deleted > 0 {
			slog.Info("Released bookings of vanished job",
				"slurm_job_id", job.SlurmJobID, "bookings", deleted)
		}
	}
	return nil
}

// buildReport queries every configuration's license servers for every
// tracked feature. Individual failures are logged and dropped.
func (r *Reconciler) buildReport(ctx context.Context, configs []models.Configuration) []models.ReportItem {
	paths := ToolPaths(r.settings)

	var mu sync.Mutex
	var report []models.ReportItem

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut)
	for _, config := range configs {
		adapter, err := server.New(config.Type, config.Edges.LicenseServers, paths)
		if err != nil {
			slog.Error("Skipping configuration",
				"configuration", config.Name, "error", err)
			continue
		}

		for _, feature := range config.Edges.Features {
			productFeature := feature.ProductFeature()
			g.Go(func() error {
				item, err := adapter.ReportItem(gctx, productFeature)
				if err != nil {
					slog.Error("Could not collect license usage",
						"configuration", config.Name,
						"product_feature", productFeature,
						"error", err)
					return nil
				}
				mu.Lock()
				report = append(report, item)
				mu.Unlock()
				return nil
			})
		}
	}
	_ = g.Wait() // workers never return errors

	return report
}

// ToolPaths maps the settings' tool locations into the adapter layer.
func ToolPaths(s *Settings) server.ToolPaths {
	return server.ToolPaths{
		Lmutil:     s.LmutilPath,
		Lsdyna:     s.LsdynaPath,
		Rlmutil:    s.RlmutilPath,
		Lmxendutil: s.LmxendutilPath,
		Olixtool:   s.OlixtoolPath,
	}
}
