package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/presenza-app/presence-client-go/domain/notification"
)

type NotificationRepository struct {
	client *Client
}

func NewNotificationRepository(client *Client) *NotificationRepository {
	return &NotificationRepository{client: client}
}

func (r *NotificationRepository) SendToEmployee(ctx context.Context, userID int, email notification.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	body := struct {
		UserID  int    `json:"user_id"`
		Body    string `json:"textBody"`
		Subject string `json:"textSubject"`
	}{UserID: userID, Body: email.Body, Subject: email.Subject}
	return r.client.doJSON(ctx, http.MethodPost, "/send_email_to_employee", nil, body, nil)
}

func (r *NotificationRepository) SendToMissing(ctx context.Context, year int, month time.Month, email notification.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	body := struct {
		YearMonth string `json:"yearMonth"`
		Body      string `json:"textBody"`
		Subject   string `json:"textSubject"`
	}{
		YearMonth: fmt.Sprintf("%d-%02d", year, int(month)),
		Body:      email.Body,
		Subject:   email.Subject,
	}
	return r.client.doJSON(ctx, http.MethodPost, "/send_email_to_missing", nil, body, nil)
}

func (r *NotificationRepository) SendToAll(ctx context.Context, email notification.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	return r.client.doJSON(ctx, http.MethodPost, "/send_email_to_all", nil, email, nil)
}
