package dashboard

import (
	"context"
	"sync"

	"github.com/formtrack/formtrack/internal/api"
	"github.com/formtrack/formtrack/internal/domain/entity"
	"go.uber.org/zap"
)

// recentLimit caps the recent-forms slice; the backend defines the
// recency order
const recentLimit = 5

// Backend is the slice of the API client the dashboard needs
type Backend interface {
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)
	ListForms(ctx context.Context, filter api.FormFilter) ([]entity.Form, int, error)
}

// Snapshot is one dashboard load. The two branches are independent:
// either may fail without suppressing the other, and the view never
// reconciles disagreements between them.
type Snapshot struct {
	Stats     *entity.DashboardStats
	StatsErr  error
	Recent    []entity.Form
	RecentErr error
}

// Loader fetches the dashboard read projection for one identity
type Loader struct {
	backend  Backend
	identity entity.Identity
	logger   *zap.Logger
}

// NewLoader creates a dashboard loader
func NewLoader(backend Backend, identity entity.Identity, logger *zap.Logger) *Loader {
	return &Loader{backend: backend, identity: identity, logger: logger}
}

// Load fetches stats and the user's recent forms concurrently
func (l *Loader) Load(ctx context.Context) Snapshot {
	var (
		wg   sync.WaitGroup
		snap Snapshot
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap.Stats, snap.StatsErr = l.backend.DashboardStats(ctx)
	}()
	go func() {
		defer wg.Done()
		forms, _, err := l.backend.ListForms(ctx, api.FormFilter{SubmittedByID: l.identity.UserID})
		if err != nil {
			snap.RecentErr = err
			return
		}
		if len(forms) > recentLimit {
			forms = forms[:recentLimit]
		}
		snap.Recent = forms
	}()
	wg.Wait()

	if snap.StatsErr != nil {
		l.logger.Error("Failed to load dashboard stats", zap.Error(snap.StatsErr))
	}
	if snap.RecentErr != nil {
		l.logger.Error("Failed to load recent forms", zap.Error(snap.RecentErr))
	}

	return snap
}
