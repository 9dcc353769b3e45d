package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient starts a test server with the given handler and returns
// a client pointed at it. The server is closed with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestTeamsSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id_team":1,"name_team":"Eng"}]`))
	})
	client.SetToken("secret")

	teams, err := client.Teams(context.Background())
	if err != nil {
		t.Fatalf("Teams failed: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer secret")
	}
	if len(teams) != 1 || teams[0].Name != "Eng" {
		t.Errorf("Teams = %+v, want one team named Eng", teams)
	}
}

func TestTeamTasksMaps404ToErrNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no tasks", http.StatusNotFound)
	})

	_, err := client.TeamTasks(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("TeamTasks error = %v, want ErrNotFound", err)
	}
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode login body: %v", err)
		}
		if body["email"] != "a@x.com" || body["password"] != "pw" {
			t.Errorf("login body = %v, want email/password fields", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok","user":{"id_user":10,"name_user":"Ann","permission_user":"Admin"}}`))
	})

	resp, err := client.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "tok" {
		t.Errorf("Token = %q, want %q", resp.Token, "tok")
	}
	if resp.User.ID != 10 || !resp.User.Permission.CanCreate() {
		t.Errorf("User = %+v, want admin user 10", resp.User)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Login error = %v, want ErrUnauthorized", err)
	}
}

func TestUnexpectedStatusReturnsStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Users(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Users error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", statusErr.Code)
	}
}

func TestAssignEndpointsUsePutWithEmptyBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotLength int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotLength = r.ContentLength
		w.WriteHeader(http.StatusOK)
	})

	if err := client.AssignUserToTeam(context.Background(), 3, 12); err != nil {
		t.Fatalf("AssignUserToTeam failed: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/team/3/user/12" {
		t.Errorf("request = %s %s, want PUT /team/3/user/12", gotMethod, gotPath)
	}
	if gotLength > 0 {
		t.Errorf("assignment request carried a body of %d bytes, want none", gotLength)
	}

	if err := client.AssignTaskToTeam(context.Background(), 3, 44); err != nil {
		t.Fatalf("AssignTaskToTeam failed: %v", err)
	}
	if gotPath != "/team/3/task/44" {
		t.Errorf("path = %s, want /team/3/task/44", gotPath)
	}
}

func TestCreateTaskPostsWireBody(t *testing.T) {
	var body map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateTask(context.Background(), CreateTaskRequest{
		Name:        "Ship",
		Description: "d",
		Status:      "Ongoing",
		Start:       "2024-05-01",
		Deadline:    "2024-06-01",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	want := map[string]string{
		"name":        "Ship",
		"description": "d",
		"status":      "Ongoing",
		"start":       "2024-05-01",
		"deadline":    "2024-06-01",
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %q, want %q", k, body[k], v)
		}
	}
}

func TestRequestHonorsContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Teams(ctx); err == nil {
		t.Error("Teams with cancelled context returned nil error")
	}
}
