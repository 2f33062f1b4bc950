package presence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presenza-app/presence-client-go/domain/holiday"
	"github.com/presenza-app/presence-client-go/domain/presence"
)

type fakePresenceRepo struct {
	monthly      func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error)
	adminMonthly func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error)
	submit       func(ctx context.Context, employeeID string, days []presence.Payload) error
	submitAdmin  func(ctx context.Context, employeeID string, days []presence.Payload) error
	overview     func(ctx context.Context, employeeID string, year int, month time.Month) (presence.Overview, error)
}

func (f *fakePresenceRepo) Monthly(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
	if f.monthly == nil {
		return nil, nil
	}
	return f.monthly(ctx, employeeID, year, month)
}

func (f *fakePresenceRepo) AdminMonthly(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
	if f.adminMonthly == nil {
		return nil, nil
	}
	return f.adminMonthly(ctx, employeeID, year, month)
}

func (f *fakePresenceRepo) Submit(ctx context.Context, employeeID string, days []presence.Payload) error {
	if f.submit == nil {
		return nil
	}
	return f.submit(ctx, employeeID, days)
}

func (f *fakePresenceRepo) SubmitAdmin(ctx context.Context, employeeID string, days []presence.Payload) error {
	if f.submitAdmin == nil {
		return nil
	}
	return f.submitAdmin(ctx, employeeID, days)
}

func (f *fakePresenceRepo) Overview(ctx context.Context, employeeID string, year int, month time.Month) (presence.Overview, error) {
	if f.overview == nil {
		return presence.Overview{}, nil
	}
	return f.overview(ctx, employeeID, year, month)
}

type fakeDefaultsRepo struct {
	get    func(ctx context.Context, userID, submittedByID string) (presence.DefaultHours, error)
	save   func(ctx context.Context, hours presence.DefaultHours) error
	update func(ctx context.Context, hours presence.DefaultHours) error
}

func (f *fakeDefaultsRepo) Get(ctx context.Context, userID, submittedByID string) (presence.DefaultHours, error) {
	if f.get == nil {
		return presence.DefaultHours{}, presence.ErrDefaultsNotFound
	}
	return f.get(ctx, userID, submittedByID)
}

func (f *fakeDefaultsRepo) Save(ctx context.Context, hours presence.DefaultHours) error {
	if f.save == nil {
		return nil
	}
	return f.save(ctx, hours)
}

func (f *fakeDefaultsRepo) Update(ctx context.Context, hours presence.DefaultHours) error {
	if f.update == nil {
		return nil
	}
	return f.update(ctx, hours)
}

type fakeHolidayRepo struct {
	byYear func(ctx context.Context, year int) ([]holiday.Holiday, error)
}

func (f *fakeHolidayRepo) ByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	if f.byYear == nil {
		return nil, nil
	}
	return f.byYear(ctx, year)
}

func (f *fakeHolidayRepo) Add(ctx context.Context, dateKey string) error    { return nil }
func (f *fakeHolidayRepo) Remove(ctx context.Context, dateKey string) error { return nil }

func newTestService(p *fakePresenceRepo, d *fakeDefaultsRepo, h *fakeHolidayRepo, opts ...ServiceOption) *Service {
	if p == nil {
		p = &fakePresenceRepo{}
	}
	if d == nil {
		d = &fakeDefaultsRepo{}
	}
	if h == nil {
		h = &fakeHolidayRepo{}
	}
	return NewService(p, d, h, opts...)
}

func TestService_Select_LoadsBothViews(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakePresenceRepo{
		monthly: func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
			return []presence.DayRecord{{Date: "2025-03-03", EntryTimeMorning: "09:00"}}, nil
		},
		adminMonthly: func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
			return []presence.DayRecord{{Date: "2025-03-03", EntryTimeMorning: "09:30"}}, nil
		},
	}
	holidays := &fakeHolidayRepo{
		byYear: func(ctx context.Context, year int) ([]holiday.Holiday, error) {
			return []holiday.Holiday{{Date: "2025-03-17"}}, nil
		},
	}
	defaults := &fakeDefaultsRepo{
		get: func(ctx context.Context, userID, submittedByID string) (presence.DefaultHours, error) {
			return presence.DefaultHours{UserID: userID, EntryTimeMorning: "09:00"}, nil
		},
	}

	svc := newTestService(repo, defaults, holidays)
	require.NoError(t, svc.Select(ctx, "42", 2025, time.March))

	self, err := svc.View(ViewSelf)
	require.NoError(t, err)
	assert.Len(t, self.Days, 31)
	assert.Equal(t, "09:00", self.Day("2025-03-03").EntryTimeMorning)
	assert.True(t, self.Day("2025-03-17").NationalHoliday)

	admin, err := svc.View(ViewAdmin)
	require.NoError(t, err)
	assert.Equal(t, "09:30", admin.Day("2025-03-03").EntryTimeMorning)

	assert.Equal(t, "09:00", svc.DefaultHours().EntryTimeMorning)
}

func TestService_Select_MissingDefaultsIsTolerated(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, &fakeDefaultsRepo{
		get: func(ctx context.Context, userID, submittedByID string) (presence.DefaultHours, error) {
			return presence.DefaultHours{}, presence.ErrDefaultsNotFound
		},
	}, nil)

	require.NoError(t, svc.Select(context.Background(), "42", 2025, time.March))
	assert.True(t, svc.DefaultHours().IsZero())

	assert.ErrorIs(t, svc.ApplyDefaults(ViewSelf), presence.ErrDefaultsNotFound)
}

func TestService_Select_FetchFailureKeepsPriorView(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fetchErr := errors.New("backend unavailable")
	failing := false
	repo := &fakePresenceRepo{
		monthly: func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
			if failing {
				return nil, fetchErr
			}
			return nil, nil
		},
	}

	svc := newTestService(repo, nil, nil)
	require.NoError(t, svc.Select(ctx, "42", 2025, time.March))

	failing = true
	err := svc.Select(ctx, "42", 2025, time.April)
	require.ErrorIs(t, err, fetchErr)

	view, err := svc.View(ViewSelf)
	require.NoError(t, err)
	assert.Equal(t, time.March, view.Month)
}

func TestService_Select_DiscardsStaleResponse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	release := make(chan struct{})
	marchStarted := make(chan struct{})
	repo := &fakePresenceRepo{
		monthly: func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
			if month == time.March {
				close(marchStarted)
				<-release
			}
			return nil, nil
		},
	}

	svc := newTestService(repo, nil, nil)

	marchDone := make(chan error, 1)
	go func() {
		marchDone <- svc.Select(ctx, "42", 2025, time.March)
	}()
	<-marchStarted

	// April is selected while March is still in flight and completes first.
	require.NoError(t, svc.Select(ctx, "42", 2025, time.April))

	close(release)
	require.ErrorIs(t, <-marchDone, presence.ErrStaleLoad)

	view, err := svc.View(ViewSelf)
	require.NoError(t, err)
	assert.Equal(t, time.April, view.Month)
}

func TestService_View_BeforeSelect(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)

	_, err := svc.View(ViewSelf)
	assert.ErrorIs(t, err, presence.ErrNoMonthLoaded)

	assert.ErrorIs(t, svc.Refresh(context.Background()), presence.ErrNoMonthLoaded)

	_, err = svc.Overview(context.Background())
	assert.ErrorIs(t, err, presence.ErrNoMonthLoaded)
}

func TestService_Refresh_KeepsLocalEdits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakePresenceRepo{
		monthly: func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
			return []presence.DayRecord{{Date: "2025-03-03", EntryTimeMorning: "08:00"}}, nil
		},
	}

	svc := newTestService(repo, nil, nil)
	require.NoError(t, svc.Select(ctx, "42", 2025, time.March))

	editor, err := svc.Editor(ViewSelf, "2025-03-03", nil)
	require.NoError(t, err)
	editor.SetTime(FieldEntryMorning, "1000")
	editor.Close()

	require.NoError(t, svc.Refresh(ctx))

	view, err := svc.View(ViewSelf)
	require.NoError(t, err)
	assert.Equal(t, "10:00", view.Day("2025-03-03").EntryTimeMorning)
	assert.True(t, view.Day("2025-03-03").Modified)
}

func TestService_Editor_UnknownDate(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)
	require.NoError(t, svc.Select(context.Background(), "42", 2025, time.March))

	_, err := svc.Editor(ViewSelf, "2025-04-01", nil)
	assert.ErrorIs(t, err, presence.ErrDayNotFound)
}

func TestService_Submit_IncompleteMonth(t *testing.T) {
	t.Parallel()

	clock := func() time.Time {
		return time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC)
	}
	svc := newTestService(nil, nil, nil, WithClock(clock))
	require.NoError(t, svc.Select(context.Background(), "42", 2025, time.March))

	err := svc.Submit(context.Background(), ViewSelf)

	var incomplete *presence.IncompleteMonthError
	require.ErrorAs(t, err, &incomplete)
	assert.Len(t, incomplete.Missing, 21)
}

func TestService_Submit_WindowClosed(t *testing.T) {
	t.Parallel()

	clock := func() time.Time {
		return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	}
	svc := newTestService(nil, nil, nil, WithClock(clock))
	require.NoError(t, svc.Select(context.Background(), "42", 2025, time.March))

	assert.ErrorIs(t, svc.Submit(context.Background(), ViewSelf), presence.ErrWindowClosed)
}

func TestService_Submit_SuccessReloadsFromBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var submitted []presence.Payload
	persisted := []presence.DayRecord{}
	repo := &fakePresenceRepo{
		monthly: func(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
			return persisted, nil
		},
		submit: func(ctx context.Context, employeeID string, days []presence.Payload) error {
			submitted = days
			persisted = []presence.DayRecord{{Date: "2025-03-03", EntryTimeMorning: "09:00"}}
			return nil
		},
	}
	defaults := &fakeDefaultsRepo{
		get: func(ctx context.Context, userID, submittedByID string) (presence.DefaultHours, error) {
			return presence.DefaultHours{
				UserID:             userID,
				EntryTimeMorning:   "09:00",
				ExitTimeMorning:    "13:00",
				EntryTimeAfternoon: "14:00",
				ExitTimeAfternoon:  "18:00",
			}, nil
		},
	}

	clock := func() time.Time {
		return time.Date(2025, time.March, 18, 12, 0, 0, 0, time.UTC)
	}
	svc := newTestService(repo, defaults, nil, WithClock(clock))
	require.NoError(t, svc.Select(ctx, "42", 2025, time.March))
	require.NoError(t, svc.ApplyDefaults(ViewSelf))

	require.NoError(t, svc.Submit(ctx, ViewSelf))

	require.Len(t, submitted, 31)
	assert.Equal(t, "42", submitted[0].EmployeeID)
	assert.Equal(t, "00:00", submitted[0].TimeOff)

	// The reloaded view reflects the backend state, with local flags reset.
	view, err := svc.View(ViewSelf)
	require.NoError(t, err)
	assert.False(t, view.Day("2025-03-03").Modified)
	assert.True(t, view.Day("2025-03-03").HasData)
	assert.False(t, view.Day("2025-03-04").HasData)
}

func TestService_Submit_FailureLeavesViewUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	submitErr := errors.New("persist failed")
	repo := &fakePresenceRepo{
		submitAdmin: func(ctx context.Context, employeeID string, days []presence.Payload) error {
			return submitErr
		},
	}

	svc := newTestService(repo, nil, nil)
	require.NoError(t, svc.Select(ctx, "42", 2025, time.March))

	view, err := svc.View(ViewAdmin)
	require.NoError(t, err)
	for i := range view.Days {
		view.Days[i].DayOff = true
	}

	err = svc.Submit(ctx, ViewAdmin)
	require.ErrorIs(t, err, submitErr)

	after, err := svc.View(ViewAdmin)
	require.NoError(t, err)
	assert.True(t, after.Day("2025-03-03").DayOff)
}

func TestService_SaveDefaultHours_CreatesWhenMissing(t *testing.T) {
	t.Parallel()

	var saved bool
	defaults := &fakeDefaultsRepo{
		update: func(ctx context.Context, hours presence.DefaultHours) error {
			return presence.ErrDefaultsNotFound
		},
		save: func(ctx context.Context, hours presence.DefaultHours) error {
			saved = true
			return nil
		},
	}

	svc := newTestService(nil, defaults, nil)
	hours := presence.DefaultHours{UserID: "42", EntryTimeMorning: "09:00"}

	require.NoError(t, svc.SaveDefaultHours(context.Background(), hours))
	assert.True(t, saved)
	assert.Equal(t, "09:00", svc.DefaultHours().EntryTimeMorning)
}
