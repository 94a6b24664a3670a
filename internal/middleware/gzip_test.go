package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/service"
	"github.com/mmeshcher/shopstate/internal/theme"
)

func respondJSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

func addToCartEcho(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	respondJSON(http.StatusCreated, model.LineItem{ID: req.ProductID, Name: "Summer Dress", Price: 45, Quantity: 1})(w, r)
}

func gzipBody(t *testing.T, s string) io.Reader {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(s)); err != nil {
		t.Fatalf("write gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return &buf
}

func TestGzipMiddleware(t *testing.T) {
	cart := service.CartView{
		Items:     []model.LineItem{{ID: "9", Name: "Summer Dress", Price: 45, Quantity: 2}},
		ItemCount: 2,
		Subtotal:  90,
	}

	type want struct {
		statusCode      int
		contentEncoding string
		bodyContains    string
	}

	tests := []struct {
		name           string
		handler        http.HandlerFunc
		acceptEncoding string
		want           want
	}{
		{
			name:           "cart view compressed",
			handler:        respondJSON(http.StatusOK, cart),
			acceptEncoding: "gzip",
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "gzip",
				bodyContains:    `"subtotal":90`,
			},
		},
		{
			name:           "theme compressed",
			handler:        respondJSON(http.StatusOK, theme.Resolve(model.ThemeModeDark, model.ColorSchemeLight)),
			acceptEncoding: "gzip, deflate",
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "gzip",
				bodyContains:    `"isDark":true`,
			},
		},
		{
			name:           "client without gzip gets plain json",
			handler:        respondJSON(http.StatusOK, cart),
			acceptEncoding: "",
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "",
				bodyContains:    `"itemCount":2`,
			},
		},
		{
			name: "no content is not compressed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			acceptEncoding: "gzip",
			want: want{
				statusCode:      http.StatusNoContent,
				contentEncoding: "",
			},
		},
		{
			name: "error text is not compressed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			},
			acceptEncoding: "gzip",
			want: want{
				statusCode:      http.StatusNotFound,
				contentEncoding: "",
				bodyContains:    "Not Found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			w := httptest.NewRecorder()

			GzipMiddleware(tt.handler).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.want.statusCode {
				t.Fatalf("status: got %d want %d", res.StatusCode, tt.want.statusCode)
			}
			if ce := res.Header.Get("Content-Encoding"); ce != tt.want.contentEncoding {
				t.Fatalf("content-encoding: got %q want %q", ce, tt.want.contentEncoding)
			}

			body := readBody(t, res)
			if !strings.Contains(body, tt.want.bodyContains) {
				t.Fatalf("body %q does not contain %q", body, tt.want.bodyContains)
			}
		})
	}
}

func TestGzipMiddleware_CompressedRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", gzipBody(t, `{"productId":"9"}`))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	GzipMiddleware(http.HandlerFunc(addToCartEcho)).ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status: got %d want %d", res.StatusCode, http.StatusCreated)
	}

	var item model.LineItem
	if err := json.Unmarshal([]byte(readBody(t, res)), &item); err != nil {
		t.Fatalf("decode line item: %v", err)
	}
	if item.ID != "9" || item.Quantity != 1 {
		t.Fatalf("unexpected line item: %+v", item)
	}
}

func TestGzipMiddleware_BrokenRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"productId":"9"}`))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	GzipMiddleware(http.HandlerFunc(addToCartEcho)).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusBadRequest)
	}
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	var r io.Reader = res.Body
	if res.Header.Get("Content-Encoding") == "gzip" {
		gr, err := gzip.NewReader(res.Body)
		if err != nil {
			t.Fatalf("new gzip reader: %v", err)
		}
		defer gr.Close()
		r = gr
	}

	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}
