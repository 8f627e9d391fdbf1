package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/roams-app/roams-server/internal/store"
	"github.com/rs/zerolog"
)

// fakeStore is an in-memory CommentStore with a switchable fault.
type fakeStore struct {
	mu       sync.Mutex
	nextID   int64
	comments []*store.Comment
	failNext bool
}

var errStorageFault = errors.New("storage fault")

func (f *fakeStore) AppendComment(_ context.Context, place, user, message string) (*store.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNext {
		f.failNext = false
		return nil, errStorageFault
	}

	f.nextID++
	c := &store.Comment{
		ID:        f.nextID,
		Place:     place,
		User:      user,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	f.comments = append(f.comments, c)
	return c, nil
}

func (f *fakeStore) ListCommentsByPlace(_ context.Context, place string) ([]*store.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*store.Comment, 0)
	for i := len(f.comments) - 1; i >= 0; i-- {
		if f.comments[i].Place == place {
			out = append(out, f.comments[i])
		}
	}
	return out, nil
}

func (f *fakeStore) Close() error { return nil }

func startTestHub(t *testing.T) (*Hub, *fakeStore) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	st := &fakeStore{}
	logger := zerolog.Nop()
	hub := NewHub(st, &logger)
	go hub.Run(ctx)

	return hub, st
}

func TestPostCommentBroadcastsToRoom(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	ben := NewClient("b")
	hub.RegisterClient(ana)
	hub.RegisterClient(ben)

	hub.Join(ana, "paris")
	hub.Join(ben, "paris")

	comment, err := hub.PostComment(context.Background(), "paris", "Ana", "Eiffel at night!")
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if comment.ID == 0 {
		t.Fatal("expected a generated id")
	}

	// Both room members receive the broadcast, the sender included.
	for _, c := range []*Client{ana, ben} {
		ev := mustEvent(t, c.Events)
		if ev.Comment.ID != comment.ID || ev.Comment.Message != "Eiffel at night!" {
			t.Fatalf("unexpected event for %s: %+v", c.ID, ev.Comment)
		}
	}
}

func TestDoubleJoinDeliversOnce(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)

	hub.Join(ana, "paris")
	hub.Join(ana, "paris")

	if _, err := hub.PostComment(context.Background(), "paris", "Ana", "hi"); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	mustEvent(t, ana.Events)
	mustNoEvent(t, ana.Events)
}

func TestNoDeliveryOutsideRoom(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	ben := NewClient("b")
	hub.RegisterClient(ana)
	hub.RegisterClient(ben)

	hub.Join(ana, "paris")
	hub.Join(ben, "tokyo")

	if _, err := hub.PostComment(context.Background(), "paris", "Ana", "hi"); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	mustEvent(t, ana.Events)
	mustNoEvent(t, ben.Events)
}

func TestMultiRoomMembership(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)

	hub.Join(ana, "paris")
	hub.Join(ana, "tokyo")

	ctx := context.Background()
	if _, err := hub.PostComment(ctx, "paris", "u", "p"); err != nil {
		t.Fatalf("post paris: %v", err)
	}
	if _, err := hub.PostComment(ctx, "tokyo", "u", "t"); err != nil {
		t.Fatalf("post tokyo: %v", err)
	}
	if _, err := hub.PostComment(ctx, "berlin", "u", "b"); err != nil {
		t.Fatalf("post berlin: %v", err)
	}

	first := mustEvent(t, ana.Events)
	second := mustEvent(t, ana.Events)
	if first.Comment.Place != "paris" || second.Comment.Place != "tokyo" {
		t.Fatalf("unexpected delivery: %q then %q", first.Comment.Place, second.Comment.Place)
	}
	// Nothing from berlin: the client never joined it.
	mustNoEvent(t, ana.Events)
}

func TestSequentialPostsDeliverInOrder(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)
	hub.Join(ana, "tokyo")

	ctx := context.Background()
	for _, msg := range []string{"A", "B", "C"} {
		if _, err := hub.PostComment(ctx, "tokyo", "u", msg); err != nil {
			t.Fatalf("post %s: %v", msg, err)
		}
	}

	var lastID int64
	for _, want := range []string{"A", "B", "C"} {
		ev := mustEvent(t, ana.Events)
		if ev.Comment.Message != want {
			t.Fatalf("expected %q, got %q", want, ev.Comment.Message)
		}
		if ev.Comment.ID <= lastID {
			t.Fatalf("ids not monotonic: %d after %d", ev.Comment.ID, lastID)
		}
		lastID = ev.Comment.ID
	}
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)
	hub.Join(ana, "paris")
	hub.Leave(ana, "paris")

	if _, err := hub.PostComment(context.Background(), "paris", "u", "m"); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	mustNoEvent(t, ana.Events)
}

func TestLeaveUnknownPlaceIsNoOp(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)
	hub.Leave(ana, "ghost")

	hub.Join(ana, "paris")
	if _, err := hub.PostComment(context.Background(), "paris", "u", "m"); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	mustEvent(t, ana.Events)
}

func TestUnregisterRemovesFromAllRooms(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	ben := NewClient("b")
	hub.RegisterClient(ana)
	hub.RegisterClient(ben)

	hub.Join(ana, "paris")
	hub.Join(ana, "paris") // duplicate join must not confuse cleanup
	hub.Join(ana, "tokyo")
	hub.Join(ben, "paris")

	hub.UnregisterClient(ana)

	ctx := context.Background()
	if _, err := hub.PostComment(ctx, "paris", "u", "p"); err != nil {
		t.Fatalf("post paris: %v", err)
	}
	if _, err := hub.PostComment(ctx, "tokyo", "u", "t"); err != nil {
		t.Fatalf("post tokyo: %v", err)
	}

	// Ben still gets paris traffic; Ana's channel was closed on unregister.
	ev := mustEvent(t, ben.Events)
	if ev.Comment.Place != "paris" {
		t.Fatalf("unexpected place: %q", ev.Comment.Place)
	}

	select {
	case _, ok := <-ana.Events:
		if ok {
			t.Fatal("expected closed channel for unregistered client")
		}
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestFailedAppendIsNotBroadcast(t *testing.T) {
	hub, st := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)
	hub.Join(ana, "paris")

	st.mu.Lock()
	st.failNext = true
	st.mu.Unlock()

	ctx := context.Background()
	if _, err := hub.PostComment(ctx, "paris", "u", "lost"); !errors.Is(err, errStorageFault) {
		t.Fatalf("expected storage fault, got %v", err)
	}

	mustNoEvent(t, ana.Events)

	comments, err := st.ListCommentsByPlace(ctx, "paris")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no persisted rows, got %d", len(comments))
	}
}

func TestPostCommentRejectsMissingFields(t *testing.T) {
	hub, st := startTestHub(t)

	ctx := context.Background()
	cases := []struct {
		name                 string
		place, user, message string
	}{
		{"missing place", "", "u", "m"},
		{"missing user", "paris", "", "m"},
		{"missing message", "paris", "u", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := hub.PostComment(ctx, tt.place, tt.user, tt.message); !errors.Is(err, ErrBadRequest) {
				t.Fatalf("expected bad request, got %v", err)
			}
		})
	}

	st.mu.Lock()
	persisted := len(st.comments)
	st.mu.Unlock()
	if persisted != 0 {
		t.Fatalf("expected nothing persisted, got %d rows", persisted)
	}
}

func TestCaseSensitivePlacesAreDifferentRooms(t *testing.T) {
	hub, _ := startTestHub(t)

	ana := NewClient("a")
	hub.RegisterClient(ana)
	hub.Join(ana, "paris")

	// The hub does no normalization; lower-casing is the client's job.
	if _, err := hub.PostComment(context.Background(), "Paris", "u", "m"); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	mustNoEvent(t, ana.Events)
}
