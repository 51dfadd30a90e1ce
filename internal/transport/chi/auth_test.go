package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	for name, keys := range map[string][]string{"nil": nil, "blank": {"", ""}} {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			BearerAuthMiddleware(keys)(okHandler()).ServeHTTP(rr, httptest.NewRequest("POST", "/ask", http.NoBody))
			if rr.Code != http.StatusOK {
				t.Errorf("got %d, want %d", rr.Code, http.StatusOK)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	handler := BearerAuthMiddleware([]string{"key1", "key2"})(okHandler())

	tests := []struct {
		name    string
		headers map[string]string
		want    int
		wantMsg string
	}{
		{"missing", nil, http.StatusUnauthorized, "missing authorization header"},
		{"basic scheme", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			http.StatusUnauthorized, "authorization header must use Bearer scheme"},
		{"no scheme", map[string]string{"Authorization": "key1"},
			http.StatusUnauthorized, "authorization header must use Bearer scheme"},
		{"wrong bearer", map[string]string{"Authorization": "Bearer wrong"}, http.StatusUnauthorized, "invalid api key"},
		{"prefix of key", map[string]string{"Authorization": "Bearer key"}, http.StatusUnauthorized, "invalid api key"},
		{"first key", map[string]string{"Authorization": "Bearer key1"}, http.StatusOK, ""},
		{"second key", map[string]string{"Authorization": "Bearer key2"}, http.StatusOK, ""},
		{"lowercase scheme", map[string]string{"Authorization": "bearer key1"}, http.StatusOK, ""},
		{"api key header", map[string]string{"X-API-Key": "key2"}, http.StatusOK, ""},
		{"wrong api key header", map[string]string{"X-API-Key": "nope"}, http.StatusUnauthorized, "invalid api key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/ask", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("got %d, want %d", rr.Code, tt.want)
			}
			if tt.want == http.StatusOK {
				return
			}
			var errResp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Code != CodeUnauthorized || errResp.Message != tt.wantMsg {
				t.Errorf("got %+v, want code %s message %q", errResp, CodeUnauthorized, tt.wantMsg)
			}
		})
	}
}
