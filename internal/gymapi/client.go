package gymapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Babismam/gym-frontend/internal/member"
	"github.com/Babismam/gym-frontend/internal/schedule"
)

// Client talks to the remote gym API. All reads return fresh server state;
// nothing is cached here.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Authenticated returns a copy of the client that sends the given bearer
// token. The token comes from the caller's session, never from a global.
func (c *Client) Authenticated(token string) *Client {
	copied := *c
	copied.token = token
	return &copied
}

func (c *Client) FullSchedule(ctx context.Context) ([]schedule.ClassSession, error) {
	var sessions []schedule.ClassSession
	if err := c.get(ctx, "/schedule", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) MemberAttendance(ctx context.Context, memberID int) ([]member.AttendanceRecord, error) {
	var records []member.AttendanceRecord
	if err := c.get(ctx, fmt.Sprintf("/members/%d/attendance", memberID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) OpeningHours(ctx context.Context) ([]schedule.OpeningHourInterval, error) {
	var records []schedule.OpeningHourInterval
	if err := c.get(ctx, "/opening-hours", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) MemberDetails(ctx context.Context, memberID int) (*member.Membership, error) {
	var m member.Membership
	if err := c.get(ctx, fmt.Sprintf("/members/%d", memberID), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) TrainerSchedule(ctx context.Context, trainerID int) ([]schedule.ClassSession, error) {
	var sessions []schedule.ClassSession
	if err := c.get(ctx, fmt.Sprintf("/trainers/%d/schedule", trainerID), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

type attendanceRequest struct {
	MemberID   int `json:"memberId"`
	ScheduleID int `json:"scheduleId"`
}

func (c *Client) BookClass(ctx context.Context, memberID, scheduleID int) error {
	return c.send(ctx, http.MethodPost, "/attendance", attendanceRequest{
		MemberID:   memberID,
		ScheduleID: scheduleID,
	})
}

func (c *Client) CancelClass(ctx context.Context, memberID, scheduleID int) error {
	return c.send(ctx, http.MethodDelete, "/attendance", attendanceRequest{
		MemberID:   memberID,
		ScheduleID: scheduleID,
	})
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("gym api request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gym api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gym api response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("gym api request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gym api request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gym api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseError(resp)
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// parseError builds an APIError from the server's error body. The server
// reports either {"message": ...} or {"error": ...}; an unreadable body
// still yields an APIError with an empty message so callers can apply their
// own fallback text.
func parseError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Message
	if message == "" {
		message = body.Error
	}

	return &APIError{Status: resp.StatusCode, Message: message}
}
