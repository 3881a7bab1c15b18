package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL)
	client.SetToken("tok123")

	if _, err := client.ListSchedules(); err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestLoginDecodesTokenAndNickname(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["id"] != "alice" || body["password"] != "pw" {
			t.Errorf("unexpected login body: %v", body)
		}

		w.Write([]byte(`{"accessToken":"tok","nickname":"Alice"}`))
	}))
	defer server.Close()

	result, err := NewAPIClient(server.URL).Login("alice", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token != "tok" || result.Nickname != "Alice" {
		t.Errorf("result = %+v", result)
	}
}

func TestCreateScheduleLecturePayload(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	payload := SchedulePayload{
		Category:   "lecture",
		Title:      "Algorithms",
		StartRecur: "2025-03-01",
		EndRecur:   "2025-06-20",
		StartTime:  "09:00:00",
		EndTime:    "10:00:00",
		DaysOfWeek: []int{1, 3},
	}
	if err := NewAPIClient(server.URL).CreateSchedule(payload); err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}

	if got["startTime"] != "09:00:00" {
		t.Errorf("startTime = %v, want 09:00:00", got["startTime"])
	}
	if _, present := got["start"]; present {
		t.Error("lecture payload should omit the span start field")
	}
	if _, present := got["allDay"]; present {
		t.Error("lecture payload should omit allDay")
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"group name already taken"}`))
	}))
	defer server.Close()

	err := NewAPIClient(server.URL).CreateGroup("Team", "")
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("status = %d", apiErr.Status)
	}
	if UserMessage(err) != "group name already taken" {
		t.Errorf("UserMessage = %q", UserMessage(err))
	}
}

func TestUserMessageForTransportFailure(t *testing.T) {
	// Point at a server that is already gone
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewAPIClient(server.URL).ListGroups()
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatal("transport failure should not be an APIError")
	}
	if UserMessage(err) != "Could not reach the server. Please try again." {
		t.Errorf("UserMessage = %q", UserMessage(err))
	}
}

func TestListSchedulesDecodesRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"category":"personal","title":"Dentist","start":"2025-11-26T14:00:00","end":"2025-11-26T15:00:00"},
			{"id":2,"category":"lecture","title":"OS","startRecur":"2025-09-01","endRecur":"2025-12-21","startTime":"10:30:00","endTime":"12:00:00","daysOfWeek":[2,4]}
		]`))
	}))
	defer server.Close()

	events, err := NewAPIClient(server.URL).ListSchedules()
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Span == nil || events[1].Weekly == nil {
		t.Error("variants not decoded per category")
	}
}

func TestKickMemberPath(t *testing.T) {
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
	}))
	defer server.Close()

	if err := NewAPIClient(server.URL).KickMember(5, 9); err != nil {
		t.Fatalf("KickMember: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/groups/5/members/9" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}
