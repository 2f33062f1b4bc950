package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/presenza-app/presence-client-go/domain/holiday"
	"github.com/presenza-app/presence-client-go/pkg/datekey"
)

type HolidayRepository struct {
	client *Client
}

func NewHolidayRepository(client *Client) *HolidayRepository {
	return &HolidayRepository{client: client}
}

func (r *HolidayRepository) ByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	path := fmt.Sprintf("/get_national_holidays/%d", year)
	if err := r.client.getJSON(ctx, path, nil, &holidays); err != nil {
		return nil, err
	}
	for i := range holidays {
		holidays[i].Date = datekey.Clean(holidays[i].Date)
	}
	return holidays, nil
}

func (r *HolidayRepository) Add(ctx context.Context, dateKey string) error {
	body := struct {
		Date string `json:"nationalHolidayDate"`
	}{Date: dateKey}
	return r.client.doJSON(ctx, http.MethodPost, "/add_national_holiday", nil, body, nil)
}

func (r *HolidayRepository) Remove(ctx context.Context, dateKey string) error {
	path := "/remove_national_holiday/" + url.PathEscape(dateKey)
	return r.client.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
