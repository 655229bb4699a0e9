package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Belphemur/tvfinder/internal/apperrors"
	"github.com/Belphemur/tvfinder/internal/client"
	"github.com/Belphemur/tvfinder/internal/config"
	"github.com/Belphemur/tvfinder/internal/models"
	"github.com/Belphemur/tvfinder/internal/parser"
	"github.com/Belphemur/tvfinder/internal/testutil"
)

func newTVMazeServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/shows":
			if r.URL.Query().Get("q") == "nothing here" {
				_, _ = w.Write([]byte("[]"))
				return
			}
			_, _ = w.Write([]byte(testutil.BatmanSearchJSON()))
		case "/shows/139/episodes":
			_, _ = w.Write([]byte(testutil.PilotEpisodesJSON()))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommand_Table(t *testing.T) {
	server := newTVMazeServer(t)

	out, err := runCLI(t, "--base-url", server.URL, "search", "batman")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	for _, want := range []string{"ID", "Summary", "Batman: The Animated Series", parser.DefaultImageURL, "The Caped Crusader."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<b>") {
		t.Errorf("summary markup should be stripped:\n%s", out)
	}
}

func TestSearchCommand_JSON(t *testing.T) {
	server := newTVMazeServer(t)

	out, err := runCLI(t, "--base-url", server.URL, "search", "--json", "bat", "man")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	var shows []models.Show
	if err := json.Unmarshal([]byte(out), &shows); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(shows) != 2 || shows[0].ID != 1 || shows[1].Image != parser.DefaultImageURL {
		t.Errorf("shows = %+v", shows)
	}
}

func TestSearchCommand_NoResults(t *testing.T) {
	server := newTVMazeServer(t)

	out, err := runCLI(t, "--base-url", server.URL, "search", "nothing", "here")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if strings.TrimSpace(out) != "No shows found" {
		t.Errorf("output = %q", out)
	}
}

func TestSearchCommand_RequiresTerm(t *testing.T) {
	if _, err := runCLI(t, "search"); err == nil {
		t.Fatal("expected an error without a term")
	}
}

func TestEpisodesCommand(t *testing.T) {
	server := newTVMazeServer(t)

	out, err := runCLI(t, "--base-url", server.URL, "episodes", "139")
	if err != nil {
		t.Fatalf("episodes failed: %v", err)
	}
	for _, want := range []string{"Season", "Number", "Pilot"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "--base-url", server.URL, "episodes", "--json", "139")
	if err != nil {
		t.Fatalf("episodes --json failed: %v", err)
	}
	var episodes []models.Episode
	if err := json.Unmarshal([]byte(out), &episodes); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(episodes) != 1 || episodes[0] != (models.Episode{ID: 1, Name: "Pilot", Season: 1, Number: 1}) {
		t.Errorf("episodes = %+v", episodes)
	}
}

func TestEpisodesCommand_Errors(t *testing.T) {
	server := newTVMazeServer(t)

	if _, err := runCLI(t, "--base-url", server.URL, "episodes", "abc"); err == nil {
		t.Error("expected an error for a non-numeric id")
	}

	_, err := runCLI(t, "--base-url", server.URL, "episodes", "5")
	if !errors.Is(err, &apperrors.ErrNotFound{}) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 5, "trun…"},
		{"héllo wörld", 6, "héllo…"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestRenderTable_PadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, nil)
	if !strings.Contains(out, "only") || !strings.Contains(out, "B") {
		t.Errorf("unexpected table:\n%s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Error("expected no output without headers")
	}
}

type stubClient struct{ closed bool }

func (s *stubClient) SearchShows(context.Context, string) ([]models.Show, error) {
	return []models.Show{}, nil
}

func (s *stubClient) GetEpisodesOfShow(context.Context, int) ([]models.Episode, error) {
	return []models.Episode{}, nil
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRunServe_ServesUntilCancelled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.Port = freePort(t)

	stub := &stubClient{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- runServe(ctx, cfg, func(*config.Config) client.Client { return stub })
	}()

	healthURL := fmt.Sprintf("http://127.0.0.1:%d/healthz", cfg.Server.Port)
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(healthURL)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("healthz status = %d", resp.StatusCode)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not come up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServe() = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("runServe did not return after cancellation")
	}
	if !stub.closed {
		t.Error("expected the client to be closed on shutdown")
	}
}
