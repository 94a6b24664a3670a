package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RecordsStatusAndPath(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	Logger(zap.New(core))(next).ServeHTTP(rec, req)

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["path"] != "/api/cart" {
		t.Fatalf("path = %v, want /api/cart", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("status = %v, want %d", fields["status"], http.StatusTeapot)
	}
	if fields["size"] != int64(len("short and stout")) {
		t.Fatalf("size = %v, want %d", fields["size"], len("short and stout"))
	}
}

func TestLogger_DefaultsToOK(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	Logger(zap.New(core))(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	if len(entries) != 1 || entries[0].ContextMap()["status"] != int64(http.StatusOK) {
		t.Fatalf("unexpected log entries: %+v", entries)
	}
}
