package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := []byte("hello world\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	rc, hint, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open(%q) returned error: %v", path, err)
	}
	defer rc.Close()

	if hint != int64(len(content)) {
		t.Errorf("size hint = %d, want %d", hint, len(content))
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading opened file: %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("read %q, want %q", data, content)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("Open on a missing file should return an error")
	}
}

func TestOpenStdin(t *testing.T) {
	rc, hint, err := Open(context.Background(), "-")
	if err != nil {
		t.Fatalf("Open(\"-\") returned error: %v", err)
	}
	defer rc.Close()

	if hint != SizeUnknown {
		t.Errorf("stdin size hint = %d, want SizeUnknown", hint)
	}
}

func TestOpenURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote content\n"))
	}))
	defer srv.Close()

	rc, hint, err := Open(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Open(%q) returned error: %v", srv.URL, err)
	}
	defer rc.Close()

	if hint != SizeUnknown {
		t.Errorf("URL size hint = %d, want SizeUnknown", hint)
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if string(data) != "remote content\n" {
		t.Errorf("read %q, want %q", data, "remote content\n")
	}
}

func TestOpenURLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, _, err := Open(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Open on a 404 URL should return an error")
	}
}
