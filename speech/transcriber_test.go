package speech

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func audioServer(t *testing.T, status int, body []byte) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func recognitionServer(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server.URL
}

func leftoverFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestTranscribe(t *testing.T) {
	dir := t.TempDir()
	audioURL := audioServer(t, http.StatusOK, buildMP3(20))
	api := recognitionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"FIREBALL sandwich"}`)
	})

	transcriber := New("test-key").SetTempDir(dir).SetBaseURL(api)

	text, err := transcriber.Transcribe(context.Background(), audioURL)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "FIREBALL sandwich" {
		t.Errorf("text = %q", text)
	}
	if left := leftoverFiles(t, dir); len(left) != 0 {
		t.Errorf("temp files left behind: %v", left)
	}
}

func TestTranscribeRemoteFailure(t *testing.T) {
	dir := t.TempDir()
	audioURL := audioServer(t, http.StatusOK, buildMP3(20))
	api := recognitionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"audio too short"}}`)
	})

	transcriber := New("test-key").SetTempDir(dir).SetBaseURL(api)

	if _, err := transcriber.Transcribe(context.Background(), audioURL); err == nil {
		t.Fatal("expected a remote failure")
	}
	if left := leftoverFiles(t, dir); len(left) != 0 {
		t.Errorf("temp files left behind after a failed call: %v", left)
	}
}

func TestTranscribeDownloadFailure(t *testing.T) {
	dir := t.TempDir()
	audioURL := audioServer(t, http.StatusNotFound, []byte("gone"))

	transcriber := New("test-key").SetTempDir(dir)

	if _, err := transcriber.Transcribe(context.Background(), audioURL); err == nil {
		t.Fatal("expected a download failure")
	}
	if left := leftoverFiles(t, dir); len(left) != 0 {
		t.Errorf("temp files left behind after a failed download: %v", left)
	}
}

func TestTranscribeCorruptAudio(t *testing.T) {
	dir := t.TempDir()
	audioURL := audioServer(t, http.StatusOK, []byte("definitely not audio"))

	transcriber := New("test-key").SetTempDir(dir)

	if _, err := transcriber.Transcribe(context.Background(), audioURL); err == nil {
		t.Fatal("expected a conversion failure")
	}
	if left := leftoverFiles(t, dir); len(left) != 0 {
		t.Errorf("temp files left behind after a failed conversion: %v", left)
	}
}

func TestTranscribeEmptyResult(t *testing.T) {
	dir := t.TempDir()
	audioURL := audioServer(t, http.StatusOK, buildMP3(20))
	api := recognitionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"text":"   "}`)
	})

	transcriber := New("test-key").SetTempDir(dir).SetBaseURL(api)

	_, err := transcriber.Transcribe(context.Background(), audioURL)
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Fatalf("Transcribe = %v, want ErrEmptyTranscript", err)
	}
	if left := leftoverFiles(t, dir); len(left) != 0 {
		t.Errorf("temp files left behind: %v", left)
	}
}
