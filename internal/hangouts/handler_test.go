package hangouts

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu    sync.Mutex
	posts map[string]Hangout
}

func newMemStore() *memStore {
	return &memStore{posts: make(map[string]Hangout)}
}

func (m *memStore) List(ctx context.Context, limit int) ([]Hangout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Hangout, 0, len(m.posts))
	for _, h := range m.posts {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, id string) (Hangout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.posts[id]
	if !ok {
		return Hangout{}, ErrNotFound
	}
	return h, nil
}

func (m *memStore) Create(ctx context.Context, h Hangout) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[h.ID] = h
	return nil
}

func (m *memStore) Like(ctx context.Context, id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.posts[id]
	if !ok {
		return 0, ErrNotFound
	}
	h.Likes++
	m.posts[id] = h
	return h.Likes, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func newTestServer(t *testing.T, store Store) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewHandler(store, 20, logger).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func TestHandler_CreateAndGet(t *testing.T) {
	srv := newTestServer(t, newMemStore())

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/hangouts",
		`{"username":"anon","imageUrl":"https://img.example/1.png","description":"first post","tags":["fun"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", resp.StatusCode, body)
	}

	var created Hangout
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Error("created post has no id")
	}
	if created.Likes != 0 || created.Comments != 0 {
		t.Errorf("new post counters = %d/%d, want 0/0", created.Likes, created.Comments)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/hangouts/"+created.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var got Hangout
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	if got.Description != "first post" {
		t.Errorf("Description = %q, want %q", got.Description, "first post")
	}
}

func TestHandler_CreateValidation(t *testing.T) {
	srv := newTestServer(t, newMemStore())

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/hangouts", `{"username":"anon"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing fields status = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/hangouts", `not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad json status = %d, want 400", resp.StatusCode)
	}
}

func TestHandler_ListNewestFirst(t *testing.T) {
	store := newMemStore()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		store.posts[id] = Hangout{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	srv := newTestServer(t, store)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/hangouts", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var posts []Hangout
	if err := json.Unmarshal(body, &posts); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3", len(posts))
	}
	if posts[0].ID != "new" || posts[2].ID != "old" {
		t.Errorf("order = %s,%s,%s, want new,mid,old", posts[0].ID, posts[1].ID, posts[2].ID)
	}
}

func TestHandler_ListEmptyIsArray(t *testing.T) {
	srv := newTestServer(t, newMemStore())

	_, body := doJSON(t, http.MethodGet, srv.URL+"/api/hangouts", "")
	if got := strings.TrimSpace(string(body)); got != "[]" {
		t.Errorf("empty list body = %q, want []", got)
	}
}

func TestHandler_LikeIncrements(t *testing.T) {
	store := newMemStore()
	store.posts["p1"] = Hangout{ID: "p1"}
	srv := newTestServer(t, store)

	for want := 1; want <= 2; want++ {
		resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/hangouts/like/p1", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("like status = %d", resp.StatusCode)
		}
		var out map[string]int
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("decode likes: %v", err)
		}
		if out["likes"] != want {
			t.Errorf("likes = %d, want %d", out["likes"], want)
		}
	}
}

func TestHandler_NotFound(t *testing.T) {
	srv := newTestServer(t, newMemStore())

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/hangouts/missing"},
		{http.MethodPut, "/api/hangouts/like/missing"},
		{http.MethodDelete, "/api/hangouts/missing"},
	}
	for _, c := range cases {
		resp, body := doJSON(t, c.method, srv.URL+c.path, "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", c.method, c.path, resp.StatusCode)
		}
		if !bytes.Contains(body, []byte("Hangout not found")) {
			t.Errorf("%s %s body = %s", c.method, c.path, body)
		}
	}
}

func TestHandler_Delete(t *testing.T) {
	store := newMemStore()
	store.posts["p1"] = Hangout{ID: "p1"}
	srv := newTestServer(t, store)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/hangouts/p1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/hangouts/p1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", resp.StatusCode)
	}
}
