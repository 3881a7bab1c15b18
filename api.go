package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the server. Message carries the
// server-provided text when there was one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// UserMessage maps a client error to the text shown to the user: server
// text for rejected requests, a generic line for transport failures.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("Request failed (%d)", apiErr.Status)
	}
	return "Could not reach the server. Please try again."
}

// APIClient talks to the calendar backend. Requests carry the bearer token
// when one is set. There is no timeout and no retry; a slow server means a
// slow request.
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *APIClient) SetToken(token string) {
	c.token = token
}

func (c *APIClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *APIClient) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// serverMessage extracts the error text from a response body. The backend
// sends {"message": "..."}; anything else is used verbatim.
func serverMessage(data []byte) string {
	var wrapper struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Message != "" {
		return wrapper.Message
	}
	return string(bytes.TrimSpace(data))
}

// --- auth and profile ---

type LoginResult struct {
	Token    string `json:"accessToken"`
	Nickname string `json:"nickname"`
}

func (c *APIClient) Login(loginID, password string) (LoginResult, error) {
	body := map[string]string{"id": loginID, "password": password}
	var result LoginResult
	err := c.do(http.MethodPost, "/api/auth/login", body, &result)
	return result, err
}

func (c *APIClient) Register(loginID, password, nickname string) error {
	body := map[string]string{"id": loginID, "password": password, "nickname": nickname}
	return c.do(http.MethodPost, "/api/auth/register", body, nil)
}

func (c *APIClient) UpdateNickname(nickname string) error {
	body := map[string]string{"nickname": nickname}
	return c.do(http.MethodPatch, "/api/users/me", body, nil)
}

// --- schedules ---

// SchedulePayload is the create/update body for a schedule. Span fields and
// recurrence fields are mutually exclusive; the category picks which set
// the backend reads.
type SchedulePayload struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	AllDay      *bool  `json:"allDay,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	StartRecur  string `json:"startRecur,omitempty"`
	EndRecur    string `json:"endRecur,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
	DaysOfWeek  []int  `json:"daysOfWeek,omitempty"`
	GroupID     int64  `json:"groupId,omitempty"`
}

func (c *APIClient) ListSchedules() ([]Event, error) {
	var rows []scheduleJSON
	if err := c.do(http.MethodGet, "/api/schedules", nil, &rows); err != nil {
		return nil, err
	}
	events := make([]Event, len(rows))
	for i, row := range rows {
		events[i] = decodeEvent(row)
	}
	return events, nil
}

func (c *APIClient) GetSchedule(id int64) (Event, error) {
	var row scheduleJSON
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/schedules/%d", id), nil, &row); err != nil {
		return Event{}, err
	}
	return decodeEvent(row), nil
}

func (c *APIClient) CreateSchedule(payload SchedulePayload) error {
	return c.do(http.MethodPost, "/api/schedules", payload, nil)
}

func (c *APIClient) UpdateSchedule(id int64, payload SchedulePayload) error {
	return c.do(http.MethodPut, fmt.Sprintf("/api/schedules/%d", id), payload, nil)
}

func (c *APIClient) DeleteSchedule(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/schedules/%d", id), nil, nil)
}

// --- groups ---

type Group struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	InviteCode  string `json:"inviteCode"`
	Role        string `json:"role"`
	MemberCount int    `json:"memberCount"`
}

func (g Group) IsLeader() bool {
	return g.Role == "LEADER"
}

type Member struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

func (m Member) IsLeader() bool {
	return m.Role == "LEADER"
}

func (c *APIClient) ListGroups() ([]Group, error) {
	var groups []Group
	err := c.do(http.MethodGet, "/api/groups", nil, &groups)
	return groups, err
}

func (c *APIClient) GetGroup(id int64) (Group, error) {
	var group Group
	err := c.do(http.MethodGet, fmt.Sprintf("/api/groups/%d", id), nil, &group)
	return group, err
}

func (c *APIClient) CreateGroup(name, description string) error {
	body := map[string]string{"name": name, "description": description}
	return c.do(http.MethodPost, "/api/groups", body, nil)
}

func (c *APIClient) UpdateGroup(id int64, name, description string) error {
	body := map[string]string{"name": name, "description": description}
	return c.do(http.MethodPut, fmt.Sprintf("/api/groups/%d", id), body, nil)
}

func (c *APIClient) DeleteGroup(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/groups/%d", id), nil, nil)
}

func (c *APIClient) JoinGroup(inviteCode string) error {
	body := map[string]string{"inviteCode": inviteCode}
	return c.do(http.MethodPost, "/api/groups/join", body, nil)
}

func (c *APIClient) LeaveGroup(id int64) error {
	return c.do(http.MethodPost, fmt.Sprintf("/api/groups/%d/leave", id), nil, nil)
}

func (c *APIClient) SetGroupColor(id int64, color string) error {
	body := map[string]string{"color": color}
	return c.do(http.MethodPatch, fmt.Sprintf("/api/groups/%d/color", id), body, nil)
}

func (c *APIClient) ListMembers(groupID int64) ([]Member, error) {
	var members []Member
	err := c.do(http.MethodGet, fmt.Sprintf("/api/groups/%d/members", groupID), nil, &members)
	return members, err
}

func (c *APIClient) KickMember(groupID, memberID int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/groups/%d/members/%d", groupID, memberID), nil, nil)
}
