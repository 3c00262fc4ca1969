package loader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestLoadMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Last-Modified", "Sun, 06 Nov 1994 08:49:37 GMT")
		io.WriteString(w, "<html></html>")
	}))
	defer srv.Close()

	h := NewHTTP()
	resp, err := h.Load(context.Background(), mustParse(t, srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.Metadata.ContentType != "text/html" {
		t.Errorf("content type = %q, want text/html", resp.Metadata.ContentType)
	}
	if got := resp.Metadata.Header.Get("Last-Modified"); got != "Sun, 06 Nov 1994 08:49:37 GMT" {
		t.Errorf("last-modified header = %q", got)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "<html></html>" {
		t.Errorf("body = %q", body)
	}
}

func TestLoadFollowsRedirects(t *testing.T) {
	var final string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			http.Redirect(w, r, "/moved", http.StatusMovedPermanently)
		case "/moved":
			io.WriteString(w, "done")
		}
	}))
	defer srv.Close()
	final = srv.URL + "/moved"

	h := NewHTTP()
	resp, err := h.Load(context.Background(), mustParse(t, srv.URL+"/"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.Metadata.FinalURL.String() != final {
		t.Errorf("final URL = %q, want %q", resp.Metadata.FinalURL, final)
	}
}

func TestLoadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	h := NewHTTP()
	if _, err := h.Load(context.Background(), mustParse(t, srv.URL)); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestLoadWhole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		io.WriteString(w, "var x = 1;")
	}))
	defer srv.Close()

	h := NewHTTP()
	md, body, err := h.LoadWhole(context.Background(), mustParse(t, srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	if md.ContentType != "application/javascript" {
		t.Errorf("content type = %q", md.ContentType)
	}
	if string(body) != "var x = 1;" {
		t.Errorf("body = %q", body)
	}
}

func TestMaxBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, strings.Repeat("a", 1000))
	}))
	defer srv.Close()

	h := NewHTTP(WithMaxBodySize(100))
	_, body, err := h.LoadWhole(context.Background(), mustParse(t, srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	if len(body) != 100 {
		t.Errorf("read %d bytes, want cap of 100", len(body))
	}
}
