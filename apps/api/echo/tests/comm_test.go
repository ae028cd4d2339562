package tests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/vedsagar/educrm/core/comm"
)

func Test_queryTemplates(t *testing.T) {
	token := getToken(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/templates", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	var templates []comm.Template
	decodeBody(t, rec, &templates)
	if len(templates) == 0 {
		t.Fatal("failed! no stock templates")
	}

	req, rec = newAuthRequest(http.MethodGet, "/v1/templates?category=Fee+Reminder", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	decodeBody(t, rec, &templates)
	for _, tpl := range templates {
		if tpl.Category != comm.CategoryFeeReminder {
			t.Errorf("failed! category = %q; want %q", tpl.Category, comm.CategoryFeeReminder)
		}
	}
}

func Test_templateCRUD(t *testing.T) {
	token := getToken(t)

	req, rec := newAuthRequest(http.MethodPost, "/v1/templates", token,
		[]byte(`{"name": "Holiday Greeting", "category": "Holiday Notice", "content": "Dear {student_name}, happy holidays!"}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	var created comm.Template
	decodeBody(t, rec, &created)

	req, rec = newAuthRequest(http.MethodPatch, "/v1/templates/"+itoa(created.ID), token,
		[]byte(`{"content": "Dear {student_name}, enjoy the break!"}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}

	req, rec = newAuthRequest(http.MethodDelete, "/v1/templates/"+itoa(created.ID), token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}

	req, rec = newAuthRequest(http.MethodGet, "/v1/templates/"+itoa(created.ID), token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
	}

	// unknown category is rejected
	req, rec = newAuthRequest(http.MethodPost, "/v1/templates", token,
		[]byte(`{"name": "Oops", "category": "Gossip", "content": "hello there"}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
	}
}

func Test_buildReminders(t *testing.T) {
	token := getToken(t)

	req, rec := newAuthRequest(http.MethodPost, "/v1/communication/reminders", token,
		[]byte(`{"student_ids": [1, 3], "message": "Dear {student_name}, {pending_amount} is pending."}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Summary   string          `json:"summary"`
		Prepared  int             `json:"prepared"`
		Failed    int             `json:"failed"`
		Reminders []comm.Reminder `json:"reminders"`
	}
	decodeBody(t, rec, &res)
	if res.Prepared != 2 || res.Failed != 0 {
		t.Fatalf("failed! prepared = %d, failed = %d; body %s", res.Prepared, res.Failed, rec.Body.String())
	}
	if res.Summary != "2 of 2 reminders prepared" {
		t.Errorf("failed! summary = %q", res.Summary)
	}
	for _, r := range res.Reminders {
		if !strings.HasPrefix(r.Link, "https://wa.me/91") {
			t.Errorf("failed! link = %q", r.Link)
		}
		if strings.Contains(r.Message, "{student_name}") || strings.Contains(r.Message, "{pending_amount}") {
			t.Errorf("failed! message not personalized: %q", r.Message)
		}
	}
}

func Test_buildRemindersValidation(t *testing.T) {
	token := getToken(t)

	tests := []httpTest{
		{
			name:     "no students",
			body:     []byte(`{"student_ids": [], "message": "hello"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no template or message",
			body:     []byte(`{"student_ids": [1]}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown template",
			body:     []byte(`{"student_ids": [1], "template_id": 999}`),
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/communication/reminders", token, tt.body)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func Test_communicationLogs(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/communication/logs", getToken(t))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	var logs []comm.Log
	decodeBody(t, rec, &logs)
	if len(logs) == 0 {
		t.Error("failed! no logs after reminder batches")
	}
}
