package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpc-toolchain/license-manager/pkg/agent/slurm"
	"github.com/hpc-toolchain/license-manager/pkg/backend"
	"github.com/hpc-toolchain/license-manager/pkg/identity"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// fakeQueue is a canned scheduler queue.
type fakeQueue struct {
	jobs []slurm.Job
	err  error
}

func (q *fakeQueue) Queue(ctx context.Context) ([]slurm.Job, error) {
	return q.jobs, q.err
}

// fakeLedger fakes the ledger endpoints the cycle touches and records the
// jobs it released and the report it received.
type fakeLedger struct {
	*httptest.Server

	mu            sync.Mutex
	cluster       models.Cluster
	configs       []models.Configuration
	bookingsByJob map[int][]models.Booking
	released      []int
	report        []models.ReportItem
}

func newFakeLedger(t *testing.T) *fakeLedger {
	t.Helper()
	l := &fakeLedger{bookingsByJob: map[int][]models.Booking{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /lm/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /lm/api/v1/clusters/by_client_id", func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		_ = json.NewEncoder(w).Encode(l.cluster)
	})
	mux.HandleFunc("GET /lm/api/v1/configurations/by_client_id", func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		_ = json.NewEncoder(w).Encode(l.configs)
	})
	mux.HandleFunc("GET /lm/api/v1/bookings/by_job/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/lm/api/v1/bookings/by_job/"))
		require.NoError(t, err)
		l.mu.Lock()
		defer l.mu.Unlock()
		bookings := l.bookingsByJob[id]
		if bookings == nil {
			bookings = []models.Booking{}
		}
		_ = json.NewEncoder(w).Encode(bookings)
	})
	mux.HandleFunc("DELETE /lm/api/v1/bookings/by_job/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/lm/api/v1/bookings/by_job/"))
		require.NoError(t, err)
		l.mu.Lock()
		defer l.mu.Unlock()
		l.released = append(l.released, id)
		deleted := len(l.bookingsByJob[id])
		delete(l.bookingsByJob, id)
		_ = json.NewEncoder(w).Encode(models.DeletedByJob{Deleted: deleted})
	})
	mux.HandleFunc("PATCH /lm/api/v1/reconcile", func(w http.ResponseWriter, r *http.Request) {
		var report []models.ReportItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&report))
		l.mu.Lock()
		defer l.mu.Unlock()
		l.report = report
		_ = json.NewEncoder(w).Encode(models.ReconcileResponse{Updated: len(report)})
	})

	l.Server = httptest.NewServer(mux)
	t.Cleanup(l.Close)
	return l
}

func (l *fakeLedger) releasedJobs() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]int(nil), l.released...)
}

func (l *fakeLedger) lastReport() []models.ReportItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.ReportItem(nil), l.report...)
}

func newReconcilerForTest(t *testing.T, ledger *fakeLedger, queue QueueReader, settings *Settings) *Reconciler {
	t.Helper()

	idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := identity.CreateTimedToken("agent", "idp", []byte("secret"), time.Hour, nil)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	}))
	t.Cleanup(idp.Close)

	client, err := backend.NewClient(backend.Config{
		BaseURL:      ledger.URL + "/lm",
		AuthDomain:   idp.URL,
		ClientID:     "agent-client",
		ClientSecret: "agent-secret",
		Audience:     "https://license-manager.test",
		CacheDir:     t.TempDir(),
	})
	require.NoError(t, err)

	return NewReconciler(settings, client, queue)
}

// writeTool drops an executable stub that prints output on any invocation.
func writeTool(t *testing.T, name, output string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	script := "#!/bin/sh\ncat <<'EOF'\n" + output + "\nEOF\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func testSettings() *Settings {
	return &Settings{
		StatInterval:     time.Minute,
		ReconcileTimeout: time.Minute,
		LmutilPath:       "/nonexistent/lmutil",
		LsdynaPath:       "/nonexistent/lstc_qrun",
		RlmutilPath:      "/nonexistent/rlmutil",
		LmxendutilPath:   "/nonexistent/lmxendutil",
		OlixtoolPath:     "/nonexistent/olixtool",
	}
}

func flexlmConfig(grace int) models.Configuration {
	return models.Configuration{
		ID:        7,
		Name:      "abaqus servers",
		GraceTime: grace,
		Type:      "flexlm",
		Edges: models.ConfigurationEdges{
			LicenseServers: []models.LicenseServer{{Host: "lic01", Port: 27000}},
			Features: []models.Feature{{
				ID:       5,
				Name:     "standard",
				ConfigID: 7,
				Edges: models.FeatureEdges{
					Product: &models.Product{Name: "abaqus"},
				},
			}},
		},
	}
}

func bookingOnConfig(configID int) models.Booking {
	return models.Booking{
		ID:       1,
		Quantity: 2,
		Edges: models.BookingEdges{
			Feature: &models.Feature{ID: 5, ConfigID: configID},
		},
	}
}

func TestReconciler_Cycle(t *testing.T) {
	t.Run("unreadable queue aborts quietly", func(t *testing.T) {
		ledger := newFakeLedger(t)
		r := newReconcilerForTest(t, ledger, &fakeQueue{err: assert.AnError}, testSettings())

		require.NoError(t, r.Cycle(context.Background()))
		assert.Empty(t, ledger.releasedJobs())
		assert.Empty(t, ledger.lastReport())
	})

	t.Run("empty queue aborts quietly", func(t *testing.T) {
		ledger := newFakeLedger(t)
		r := newReconcilerForTest(t, ledger, &fakeQueue{}, testSettings())

		require.NoError(t, r.Cycle(context.Background()))
		assert.Empty(t, ledger.releasedJobs())
	})

	t.Run("full cycle sweeps, collects orphans and reports", func(t *testing.T) {
		ledger := newFakeLedger(t)
		ledger.configs = []models.Configuration{flexlmConfig(60)}
		ledger.cluster = models.Cluster{
			ID:       1,
			ClientID: "agent-client",
			Edges: models.ClusterEdges{Jobs: []models.Job{
				{ID: 10, SlurmJobID: 100},
				{ID: 11, SlurmJobID: 101},
				{ID: 12, SlurmJobID: 999}, // gone from the queue
			}},
		}
		ledger.bookingsByJob = map[int][]models.Booking{
			100: {bookingOnConfig(7)},
			101: {bookingOnConfig(7)},
			999: {bookingOnConfig(7)},
		}

		settings := testSettings()
		settings.LmutilPath = writeTool(t, "lmutil",
			"Users of standard:  (Total of 50 licenses issued;  Total of 7 licenses in use)")

		queue := &fakeQueue{jobs: []slurm.Job{
			{JobID: 100, State: slurm.StateRunning, RunTimeSeconds: 61},
			{JobID: 101, State: slurm.StateRunning, RunTimeSeconds: 59},
		}}

		r := newReconcilerForTest(t, ledger, queue, settings)
		require.NoError(t, r.Cycle(context.Background()))

		// Job 100 outran the 60s grace time; job 999 vanished from the
		// queue. Job 101 is inside the grace window and keeps its booking.
		released := ledger.releasedJobs()
		assert.ElementsMatch(t, []int{100, 999}, released)

		report := ledger.lastReport()
		require.Len(t, report, 1)
		assert.Equal(t, models.ReportItem{ProductFeature: "abaqus.standard", Used: 7, Total: 50}, report[0])
	})

	t.Run("bookings on unknown configurations are preserved", func(t *testing.T) {
		ledger := newFakeLedger(t)
		ledger.configs = []models.Configuration{flexlmConfig(0)}
		ledger.cluster = models.Cluster{
			Edges: models.ClusterEdges{Jobs: []models.Job{{ID: 10, SlurmJobID: 100}}},
		}
		// The booking's feature points at a configuration the ledger no
		// longer serves, so no grace time applies.
		ledger.bookingsByJob = map[int][]models.Booking{
			100: {bookingOnConfig(12345)},
		}

		settings := testSettings()
		settings.LmutilPath = writeTool(t, "lmutil",
			"Users of standard:  (Total of 50 licenses issued;  Total of 7 licenses in use)")

		queue := &fakeQueue{jobs: []slurm.Job{
			{JobID: 100, State: slurm.StateRunning, RunTimeSeconds: 999999},
		}}

		r := newReconcilerForTest(t, ledger, queue, settings)
		require.NoError(t, r.Cycle(context.Background()))
		assert.Empty(t, ledger.releasedJobs())
	})

	t.Run("zero grace time releases running jobs immediately", func(t *testing.T) {
		ledger := newFakeLedger(t)
		ledger.configs = []models.Configuration{flexlmConfig(0)}
		ledger.cluster = models.Cluster{
			Edges: models.ClusterEdges{Jobs: []models.Job{{ID: 10, SlurmJobID: 100}}},
		}
		ledger.bookingsByJob = map[int][]models.Booking{
			100: {bookingOnConfig(7)},
		}

		settings := testSettings()
		settings.LmutilPath = writeTool(t, "lmutil",
			"Users of standard:  (Total of 50 licenses issued;  Total of 7 licenses in use)")

		queue := &fakeQueue{jobs: []slurm.Job{
			{JobID: 100, State: slurm.StateRunning, RunTimeSeconds: 1},
		}}

		r := newReconcilerForTest(t, ledger, queue, settings)
		require.NoError(t, r.Cycle(context.Background()))
		assert.Equal(t, []int{100}, ledger.releasedJobs())
	})

	t.Run("no collectable license data", func(t *testing.T) {
		ledger := newFakeLedger(t)
		ledger.configs = []models.Configuration{flexlmConfig(60)}
		ledger.cluster = models.Cluster{}

		queue := &fakeQueue{jobs: []slurm.Job{
			{JobID: 100, State: "PENDING", RunTimeSeconds: 0},
		}}

		// Tool paths point nowhere, so every query fails.
		r := newReconcilerForTest(t, ledger, queue, testSettings())
		assert.ErrorIs(t, r.Cycle(context.Background()), ErrEmptyReport)
	})
}

func TestGreatestGraceTime(t *testing.T) {
	graceByConfigID := map[int]int{7: 60, 8: 120}

	t.Run("maximum across touched configurations", func(t *testing.T) {
		grace := greatestGraceTime([]models.Booking{
			bookingOnConfig(7),
			bookingOnConfig(8),
		}, graceByConfigID)
		assert.Equal(t, 120, grace)
	})

	t.Run("no bookings", func(t *testing.T) {
		assert.Equal(t, noGraceTime, greatestGraceTime(nil, graceByConfigID))
	})

	t.Run("unknown configuration", func(t *testing.T) {
		grace := greatestGraceTime([]models.Booking{bookingOnConfig(99)}, graceByConfigID)
		assert.Equal(t, noGraceTime, grace)
	})

	t.Run("booking without a feature edge", func(t *testing.T) {
		grace := greatestGraceTime([]models.Booking{{ID: 1}}, graceByConfigID)
		assert.Equal(t, noGraceTime, grace)
	})
}
