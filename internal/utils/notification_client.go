package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BookingNotification is the payload the notification service expects for a
// booking confirmation. Delivery (mail/SMS) is the notification service's job.
type BookingNotification struct {
	Email        string            `json:"email"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Type         string            `json:"type"`
	DeliveryType string            `json:"delivery_type"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNotificationClient(baseURL string) *NotificationClient {
	return &NotificationClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// SendBookingConfirmation posts a booking confirmation to the notification
// service. Callers treat failures as non-fatal.
func (c *NotificationClient) SendBookingConfirmation(ctx context.Context, notification BookingNotification) error {
	jsonData, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/notifications/send",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
