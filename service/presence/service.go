package presence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/presenza-app/presence-client-go/domain/holiday"
	"github.com/presenza-app/presence-client-go/domain/presence"
)

// ViewKind selects which of the two reconciled views an operation targets.
type ViewKind int

const (
	// ViewSelf is the employee's own submissions.
	ViewSelf ViewKind = iota
	// ViewAdmin is the admin-corrected version of the same month.
	ViewAdmin
)

type monthKey struct {
	employeeID string
	year       int
	month      time.Month
}

// Service holds the client-side month state for one selected employee and
// period: both reconciled views, the default hours template and the fetch
// bookkeeping that discards responses arriving after the selection moved on.
type Service struct {
	presence presence.Repository
	defaults presence.DefaultHoursRepository
	holidays holiday.Repository
	log      *slog.Logger
	now      func() time.Time

	mu           sync.Mutex
	generation   uint64
	active       monthKey
	self         *presence.MonthView
	admin        *presence.MonthView
	defaultHours presence.DefaultHours
}

type ServiceOption func(*Service)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

func NewService(presenceRepo presence.Repository, defaultsRepo presence.DefaultHoursRepository, holidayRepo holiday.Repository, opts ...ServiceOption) *Service {
	s := &Service{
		presence: presenceRepo,
		defaults: defaultsRepo,
		holidays: holidayRepo,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select switches the service to a new (employee, year, month) and loads
// both views plus the holiday set and default hours in one shot. If the
// selection changes again before the fetch completes, the late result is
// discarded and ErrStaleLoad is returned; the newer selection's data wins
// regardless of response order. On a fetch failure the previously loaded
// views are kept.
func (s *Service) Select(ctx context.Context, employeeID string, year int, month time.Month) error {
	return s.load(ctx, employeeID, year, month, false)
}

// Refresh re-fetches the active selection. Days carrying unsaved local edits
// keep their edited state; everything else is rebuilt from the fresh fetch.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	key := s.active
	s.mu.Unlock()

	if key == (monthKey{}) {
		return presence.ErrNoMonthLoaded
	}
	return s.load(ctx, key.employeeID, key.year, key.month, true)
}

func (s *Service) load(ctx context.Context, employeeID string, year int, month time.Month, keepLocal bool) error {
	if year == 0 || month == 0 {
		return presence.ErrMonthNotSelected
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.active = monthKey{employeeID: employeeID, year: year, month: month}
	var prevSelf, prevAdmin *presence.MonthView
	if keepLocal {
		prevSelf = s.self.Clone()
		prevAdmin = s.admin.Clone()
	}
	s.mu.Unlock()

	var (
		selfRecords  []presence.DayRecord
		adminRecords []presence.DayRecord
		holidays     []holiday.Holiday
		defaults     presence.DefaultHours
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		selfRecords, err = s.presence.Monthly(gctx, employeeID, year, month)
		if err != nil {
			return fmt.Errorf("failed to fetch presence records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		adminRecords, err = s.presence.AdminMonthly(gctx, employeeID, year, month)
		if err != nil {
			return fmt.Errorf("failed to fetch admin presence records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.holidays.ByYear(gctx, year)
		if err != nil {
			return fmt.Errorf("failed to fetch national holidays: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		defaults, err = s.defaults.Get(gctx, employeeID, employeeID)
		if errors.Is(err, presence.ErrDefaultsNotFound) {
			// No template yet is a normal state; the user just cannot
			// bulk-fill until one is saved.
			defaults = presence.DefaultHours{}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch default hours: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("month load failed",
			"employee_id", employeeID, "year", year, "month", int(month), "error", err)
		return err
	}

	set := holiday.NewSet(holidays)

	selfView, err := ReconcileMonth(ReconcileInput{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		Records:       selfRecords,
		Holidays:      set,
		PreviousLocal: prevSelf,
	})
	if err != nil {
		return err
	}
	adminView, err := ReconcileMonth(ReconcileInput{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		Records:       adminRecords,
		Holidays:      set,
		PreviousLocal: prevAdmin,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.log.Debug("discarding stale month load",
			"employee_id", employeeID, "year", year, "month", int(month))
		return presence.ErrStaleLoad
	}

	s.self = selfView
	s.admin = adminView
	s.defaultHours = defaults
	return nil
}

// View returns the loaded view of the requested kind.
func (s *Service) View(kind ViewKind) (*presence.MonthView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(kind)
}

func (s *Service) view(kind ViewKind) (*presence.MonthView, error) {
	var v *presence.MonthView
	if kind == ViewAdmin {
		v = s.admin
	} else {
		v = s.self
	}
	if v == nil {
		return nil, presence.ErrNoMonthLoaded
	}
	return v, nil
}

// DefaultHours returns the template loaded for the active selection.
func (s *Service) DefaultHours() presence.DefaultHours {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultHours
}

// SaveDefaultHours persists the template and keeps the loaded copy in sync.
// An existing template is updated in place; a first save creates it.
func (s *Service) SaveDefaultHours(ctx context.Context, hours presence.DefaultHours) error {
	err := s.defaults.Update(ctx, hours)
	if errors.Is(err, presence.ErrDefaultsNotFound) {
		err = s.defaults.Save(ctx, hours)
	}
	if err != nil {
		return fmt.Errorf("failed to save default hours: %w", err)
	}

	s.mu.Lock()
	s.defaultHours = hours
	s.mu.Unlock()
	return nil
}

// ApplyDefaults bulk-fills the view of the given kind from the loaded
// template. The whole view is either filled or untouched.
func (s *Service) ApplyDefaults(kind ViewKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, err := s.view(kind)
	if err != nil {
		return err
	}
	if s.defaultHours.IsZero() {
		return presence.ErrDefaultsNotFound
	}
	return ApplyDefaultHours(view, s.defaultHours)
}

// Editor opens an editor over one day of the given view. onWarn may be nil.
func (s *Service) Editor(kind ViewKind, dateKey string, onWarn WarnFunc) (*Editor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, err := s.view(kind)
	if err != nil {
		return nil, err
	}
	day := view.Day(dateKey)
	if day == nil {
		return nil, presence.ErrDayNotFound
	}
	return NewEditor(day, onWarn), nil
}

// Submit persists the view of the given kind for the active selection. Self
// submissions are gated by the submission window and require every working
// day satisfied; admin submissions skip the window and accept day_off marks
// as satisfying. After a successful submit the month is reloaded so the
// backend's persisted state becomes the new baseline. On failure the local
// view is left untouched.
func (s *Service) Submit(ctx context.Context, kind ViewKind) error {
	s.mu.Lock()
	view, err := s.view(kind)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	key := s.active
	snapshot := view.Clone()
	s.mu.Unlock()

	policy := CompletionPolicy{AllowDayOff: kind == ViewAdmin}
	if kind == ViewSelf && !CanEditMonth(key.year, key.month, s.now()) {
		return presence.ErrWindowClosed
	}
	if missing := MissingDates(snapshot, policy); len(missing) > 0 {
		return &presence.IncompleteMonthError{Missing: missing}
	}

	payloads := BuildSubmission(snapshot, key.employeeID)
	if kind == ViewAdmin {
		err = s.presence.SubmitAdmin(ctx, key.employeeID, payloads)
	} else {
		err = s.presence.Submit(ctx, key.employeeID, payloads)
	}
	if err != nil {
		s.log.Error("month submit failed",
			"employee_id", key.employeeID, "year", key.year, "month", int(key.month), "error", err)
		return fmt.Errorf("failed to submit month: %w", err)
	}

	s.log.Info("month submitted",
		"employee_id", key.employeeID, "year", key.year, "month", int(key.month),
		"admin", kind == ViewAdmin)

	// The backend copy is now authoritative; reload without preserving
	// local edits.
	return s.load(ctx, key.employeeID, key.year, key.month, false)
}

// Overview fetches the backend-computed totals for the active selection.
func (s *Service) Overview(ctx context.Context) (presence.Overview, error) {
	s.mu.Lock()
	key := s.active
	s.mu.Unlock()

	if key == (monthKey{}) {
		return presence.Overview{}, presence.ErrNoMonthLoaded
	}
	return s.presence.Overview(ctx, key.employeeID, key.year, key.month)
}
