package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/presenza-app/presence-client-go/domain/presence"
	"github.com/presenza-app/presence-client-go/pkg/datekey"
	"github.com/presenza-app/presence-client-go/pkg/timefmt"
)

type PresenceRepository struct {
	client *Client
}

func NewPresenceRepository(client *Client) *PresenceRepository {
	return &PresenceRepository{client: client}
}

func (r *PresenceRepository) Monthly(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
	path := fmt.Sprintf("/employee-presence/%s/%d/%02d", url.PathEscape(employeeID), year, int(month))
	return r.fetch(ctx, path)
}

func (r *PresenceRepository) AdminMonthly(ctx context.Context, employeeID string, year int, month time.Month) ([]presence.DayRecord, error) {
	path := fmt.Sprintf("/admin-modified-presence/%s/%d/%02d", url.PathEscape(employeeID), year, int(month))
	return r.fetch(ctx, path)
}

func (r *PresenceRepository) fetch(ctx context.Context, path string) ([]presence.DayRecord, error) {
	var records []presence.DayRecord
	if err := r.client.getJSON(ctx, path, nil, &records); err != nil {
		return nil, err
	}
	for i := range records {
		normalizeRecord(&records[i])
	}
	return records, nil
}

// normalizeRecord canonicalizes the backend's loose encodings: dates may
// arrive as full timestamps and times may carry a seconds component.
func normalizeRecord(rec *presence.DayRecord) {
	rec.Date = datekey.Clean(rec.Date)
	rec.EntryTimeMorning = timefmt.Clip(rec.EntryTimeMorning)
	rec.ExitTimeMorning = timefmt.Clip(rec.ExitTimeMorning)
	rec.EntryTimeAfternoon = timefmt.Clip(rec.EntryTimeAfternoon)
	rec.ExitTimeAfternoon = timefmt.Clip(rec.ExitTimeAfternoon)
}

func (r *PresenceRepository) Submit(ctx context.Context, employeeID string, payloads []presence.Payload) error {
	query := url.Values{"user_id": {employeeID}}
	return r.client.doJSON(ctx, http.MethodPost, "/employee-dashboard", query, payloads, nil)
}

func (r *PresenceRepository) SubmitAdmin(ctx context.Context, employeeID string, payloads []presence.Payload) error {
	query := url.Values{"user_id": {employeeID}}
	return r.client.doJSON(ctx, http.MethodPost, "/submit-admin-presence", query, payloads, nil)
}

func (r *PresenceRepository) Overview(ctx context.Context, employeeID string, year int, month time.Month) (presence.Overview, error) {
	path := fmt.Sprintf("/employee-total_presence/%s/%d/%02d", url.PathEscape(employeeID), year, int(month))
	var overview presence.Overview
	if err := r.client.getJSON(ctx, path, nil, &overview); err != nil {
		return presence.Overview{}, err
	}
	return overview, nil
}

type DefaultHoursRepository struct {
	client *Client
}

func NewDefaultHoursRepository(client *Client) *DefaultHoursRepository {
	return &DefaultHoursRepository{client: client}
}

func (r *DefaultHoursRepository) Get(ctx context.Context, userID, submittedByID string) (presence.DefaultHours, error) {
	query := url.Values{
		"user_id":         {userID},
		"submitted_by_id": {submittedByID},
	}
	var hours presence.DefaultHours
	if err := r.client.getJSON(ctx, "/get-default-hours", query, &hours); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return presence.DefaultHours{}, presence.ErrDefaultsNotFound
		}
		return presence.DefaultHours{}, err
	}
	return hours, nil
}

func (r *DefaultHoursRepository) Save(ctx context.Context, hours presence.DefaultHours) error {
	return r.client.doJSON(ctx, http.MethodPost, "/default-hours", nil, hours, nil)
}

func (r *DefaultHoursRepository) Update(ctx context.Context, hours presence.DefaultHours) error {
	err := r.client.doJSON(ctx, http.MethodPut, "/default-hours", nil, hours, nil)
	if err != nil && IsStatus(err, http.StatusNotFound) {
		return presence.ErrDefaultsNotFound
	}
	return err
}

// Ensure persists hours whether or not a template already exists for the
// user: it tries an update first and falls back to a create when the backend
// has no row yet.
func (r *DefaultHoursRepository) Ensure(ctx context.Context, hours presence.DefaultHours) error {
	err := r.Update(ctx, hours)
	if errors.Is(err, presence.ErrDefaultsNotFound) {
		return r.Save(ctx, hours)
	}
	return err
}
