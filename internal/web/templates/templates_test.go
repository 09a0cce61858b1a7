package templates

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewParsesEveryPage(t *testing.T) {
	r, err := New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, page := range []string{"landing", "sign_in", "forbidden", "not_found", "error"} {
		if _, ok := r.cache[page]; !ok {
			t.Errorf("page %q missing from cache", page)
		}
	}
}

func TestRenderLanding(t *testing.T) {
	r, err := New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "landing", BaseData{Title: "Welcome", LoginPath: "/login"})

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Devil2Devil Economy") {
		t.Errorf("body missing site name:\n%s", body)
	}
	if !strings.Contains(body, "Sign in with Discord") {
		t.Errorf("guest render missing sign-in control")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := New(false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := httptest.NewRecorder()
	r.Render(rec, 200, "no-such-page", BaseData{})
	if rec.Code != 500 {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
