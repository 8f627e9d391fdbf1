package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/roams-app/roams-server/internal/proto"
)

func fetchComments(t *testing.T, url string) []proto.CommentPayload {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var comments []proto.CommentPayload
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return comments
}

func TestListCommentsOrderedNewestFirst(t *testing.T) {
	ts, st := startTestServer(t)
	ctx := t.Context()

	if _, err := st.AppendComment(ctx, "tokyo", "u", "A"); err != nil {
		t.Fatalf("append A: %v", err)
	}
	if _, err := st.AppendComment(ctx, "tokyo", "u", "B"); err != nil {
		t.Fatalf("append B: %v", err)
	}

	comments := fetchComments(t, ts.URL+"/api/comments/tokyo")
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Message != "B" || comments[1].Message != "A" {
		t.Fatalf("expected B before A, got %q then %q", comments[0].Message, comments[1].Message)
	}

	for _, c := range comments {
		if _, err := time.Parse(time.RFC3339, c.Timestamp); err != nil {
			t.Fatalf("timestamp not ISO-8601: %q", c.Timestamp)
		}
	}
}

func TestListCommentsEmptyPlace(t *testing.T) {
	ts, _ := startTestServer(t)

	comments := fetchComments(t, ts.URL+"/api/comments/nowhere")
	if len(comments) != 0 {
		t.Fatalf("expected empty list, got %+v", comments)
	}
}

func TestListCommentsIsRepeatable(t *testing.T) {
	ts, st := startTestServer(t)

	if _, err := st.AppendComment(t.Context(), "paris", "u", "m"); err != nil {
		t.Fatalf("append: %v", err)
	}

	first := fetchComments(t, ts.URL+"/api/comments/paris")
	second := fetchComments(t, ts.URL+"/api/comments/paris")
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatalf("fetch not idempotent: %+v vs %+v", first, second)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
