package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// assertOrder checks that each string first appears after the previous one.
func assertOrder(t *testing.T, out string, titles ...string) {
	t.Helper()
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, title)
		require.NotEqual(t, -1, idx, "missing %q", title)
		assert.Greater(t, idx, last, "%q is out of order", title)
		last = idx
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "etugon dev\n", out)
}

func TestReportsList(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		order   []string
		missing []string
	}{
		{
			name:  "default is newest first",
			args:  nil,
			order: []string{"Damaged Pavement", "Flooded Road", "Broken Street Light", "Overflowing Garbage"},
		},
		{
			name:    "mine",
			args:    []string{"--mine"},
			order:   []string{"Flooded Road", "Broken Street Light"},
			missing: []string{"Overflowing Garbage", "Damaged Pavement"},
		},
		{
			name:    "public by upvotes",
			args:    []string{"--public", "--sort", "upvotes"},
			order:   []string{"Overflowing Garbage", "Damaged Pavement"},
			missing: []string{"Flooded Road"},
		},
		{
			name:    "in progress z to a",
			args:    []string{"--status", "In Progress", "--sort", "name", "--order", "z-a"},
			order:   []string{"Damaged Pavement", "Broken Street Light"},
			missing: []string{"Flooded Road", "Overflowing Garbage"},
		},
		{
			name:  "oldest first",
			args:  []string{"--order", "oldest"},
			order: []string{"Overflowing Garbage", "Broken Street Light", "Flooded Road", "Damaged Pavement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"reports", "list", "--sample"}, tt.args...)
			out, err := execute(t, "", args...)
			require.NoError(t, err)

			assert.Contains(t, out, "TITLE")
			assertOrder(t, out, tt.order...)
			for _, title := range tt.missing {
				assert.NotContains(t, out, title)
			}
		})
	}
}

func TestReportsList_NoMatches(t *testing.T) {
	out, err := execute(t, "", "reports", "list", "--sample", "--mine", "--status", "Pending")
	require.NoError(t, err)
	assert.Contains(t, out, "No reports found.")
}

func TestReportsList_BadFlags(t *testing.T) {
	_, err := execute(t, "", "reports", "list", "--sample", "--sort", "colour")
	require.Error(t, err)
	assert.Contains(t, common.UserMessage(err), "unknown sort key")

	_, err = execute(t, "", "reports", "list", "--sample", "--status", "Done")
	require.Error(t, err)
	assert.Equal(t, `Unknown status "Done"`, common.UserMessage(err))

	_, err = execute(t, "", "reports", "list", "--sample", "--sort", "name", "--order", "newest")
	require.Error(t, err)
}

func TestListSelection(t *testing.T) {
	sel, err := listSelection("Completed", "upvotes", "least")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, sel.StatusFilter)
	assert.Equal(t, listing.KeyUpvotes, sel.ActiveKey)
	assert.Equal(t, listing.LeastUpvotes, sel.Upvotes)

	sel, err = listSelection("", "progress", "")
	require.NoError(t, err)
	assert.Equal(t, listing.KeyProgress, sel.ActiveKey)
	assert.False(t, sel.HasStatusFilter())
}

func TestReportsShow(t *testing.T) {
	out, err := execute(t, "", "reports", "show", "3", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Overflowing Garbage")
	assert.Contains(t, out, "Carlos Reyes")
	assert.Contains(t, out, "Awaiting assignment")

	_, err = execute(t, "", "reports", "show", "99", "--sample")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, "Report #99 not found", common.UserMessage(err))

	_, err = execute(t, "", "reports", "show", "abc", "--sample")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestReportsComplete(t *testing.T) {
	out, err := execute(t, "", "reports", "complete", "1", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress Timeline")
	assert.Contains(t, out, "Report #1 has been marked as completed.")

	_, err = execute(t, "", "reports", "complete", "2", "--sample")
	assert.ErrorIs(t, err, progress.ErrAlreadyCompleted)
	assert.Equal(t, "This report is already completed.", common.UserMessage(err))

	_, err = execute(t, "", "reports", "complete", "3", "--sample")
	assert.ErrorIs(t, err, progress.ErrNotInProgress)

	_, err = execute(t, "", "reports", "complete", "4", "--sample", "--policy", "some")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestParsePolicy(t *testing.T) {
	p, err := parsePolicy("current-and-final")
	require.NoError(t, err)
	assert.Equal(t, progress.PolicyCurrentAndFinal, p)

	p, err = parsePolicy("all")
	require.NoError(t, err)
	assert.Equal(t, progress.PolicyCompleteAll, p)
}

func TestReportsSubmit(t *testing.T) {
	out, err := execute(t, "",
		"reports", "submit", "--sample",
		"--title", "Clogged Drain",
		"--description", "Water backs up after light rain.",
		"--category", "Health & Sanitation",
		"--location", "Purok 3, Bacsil",
		"--photo", "https://cdn.example/reports/drain.jpg",
		"--anonymous",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Report #5 submitted!")
	assert.Contains(t, out, "Clogged Drain")
	assert.Contains(t, out, "Anonymous")
	assert.Contains(t, out, "https://cdn.example/reports/drain.jpg")
}

func TestReportsSubmit_Validation(t *testing.T) {
	_, err := execute(t, "", "reports", "submit", "--sample", "--description", "No title")
	require.Error(t, err)
	assert.Equal(t, "Please enter a title for your report", common.UserMessage(err))

	_, err = execute(t, "",
		"reports", "submit", "--sample",
		"--title", "Clogged Drain",
		"--description", "Water backs up.",
		"--category", "Health & Sanitation",
		"--location", "Bacsil",
	)
	require.Error(t, err)
	assert.Equal(t, "Please add at least one image", common.UserMessage(err))
}

func TestLogin_PromptsAndSavesUserID(t *testing.T) {
	var got model.LoginRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","user":{"id":7,"username":"Juan"}}`))
	}))
	defer server.Close()

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	out, err := execute(t, "juan@example.com\nsecret\n", "login", "--config", cfg, "--api-url", server.URL)
	require.NoError(t, err)

	assert.Equal(t, model.LoginRequest{Email: "juan@example.com", Password: "secret"}, got)
	assert.Contains(t, out, "Login successful! Welcome, Juan.")
	assert.Contains(t, out, "Saved user id 7")

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id: 7")
}

func TestLogin_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid email or password"}`))
	}))
	defer server.Close()

	_, err := execute(t, "", "login", "--api-url", server.URL, "--email", "juan@example.com", "--password", "nope", "--save=false")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBackend)
	assert.Equal(t, "Invalid email or password", common.UserMessage(err))

	_, err = execute(t, "\n\n", "login", "--api-url", server.URL)
	require.Error(t, err)
	assert.Equal(t, "Please enter both email and password", common.UserMessage(err))
}

func TestSignup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":12,"username":"Juan","email":"juan@example.com"}}`))
	}))
	defer server.Close()

	args := []string{
		"signup", "--api-url", server.URL,
		"--username", "Juan", "--email", "juan@example.com",
		"--password", "secret1", "--confirm-password", "secret1",
		"--house-number", "12", "--barangay", "Bacsil",
	}
	out, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Account created successfully! Your user id is 12.")

	_, err = execute(t, "", append(args[:len(args)-2], "--barangay", "Atlantis")...)
	require.Error(t, err)
	assert.Contains(t, common.UserMessage(err), "is not a barangay of San Fernando")
}
