package tests

import (
	"net/http"
	"testing"
)

func Test_home(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
}

func Test_health(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/health")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusOK)
	}
}

func Test_login(t *testing.T) {
	tests := []httpTest{
		{
			name:     "valid credentials",
			body:     []byte(`{"username": "admin", "password": "admin123"}`),
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			body:     []byte(`{"username": "admin", "password": "nope"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name:     "unknown username",
			body:     []byte(`{"username": "root", "password": "admin123"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "authentication failed"}),
		},
		{
			name:     "missing fields",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"username": "this field is required",
				"password": "this field is required",
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/auth/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var res struct {
					Token string `json:"token"`
				}
				decodeBody(t, rec, &res)
				if res.Token == "" {
					t.Error("failed! empty token")
				}
			}
		})
	}
}

func Test_protectedRoutesRequireToken(t *testing.T) {
	paths := []string{
		"/v1/students",
		"/v1/batches",
		"/v1/categories",
		"/v1/fees/pending",
		"/v1/templates",
		"/v1/dashboard",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			tt := httpTest{
				path:     path,
				wantCode: http.StatusUnauthorized,
				wantData: marchallObj(t, errMissingToken),
			}
			req, rec := newRequest(http.MethodGet, path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_invalidTokenRejected(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/students", "not.a.token")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusUnauthorized)
	}
}
