package tests

import (
	"net/http"
	"testing"

	"github.com/vedsagar/educrm/core/fees"
)

func Test_feesPending(t *testing.T) {
	token := getToken(t)

	tests := []struct {
		name      string
		path      string
		wantCode  int
		wantNames []string
	}{
		{
			name:      "all pending",
			path:      "/v1/fees/pending",
			wantCode:  http.StatusOK,
			wantNames: []string{"Priya Sharma", "Anita Singh"},
		},
		{
			name:      "amount above 25k",
			path:      "/v1/fees/pending?amount=above_25k",
			wantCode:  http.StatusOK,
			wantNames: []string{"Anita Singh"},
		},
		{
			name:      "amount band 10k to 25k",
			path:      "/v1/fees/pending?amount=10k_to_25k",
			wantCode:  http.StatusOK,
			wantNames: []string{"Priya Sharma"},
		},
		{
			name:      "due within 7 days",
			path:      "/v1/fees/pending?due=due_7_days",
			wantCode:  http.StatusOK,
			wantNames: []string{"Anita Singh"},
		},
		{
			name:      "overdue only",
			path:      "/v1/fees/pending?due=overdue",
			wantCode:  http.StatusOK,
			wantNames: []string{},
		},
		{
			name:      "combined filters",
			path:      "/v1/fees/pending?amount=above_25k&due=due_30_days",
			wantCode:  http.StatusOK,
			wantNames: []string{"Anita Singh"},
		},
		{
			name:     "unknown amount filter",
			path:     "/v1/fees/pending?amount=cheap",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown due filter",
			path:     "/v1/fees/pending?due=someday",
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, token)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var records []fees.PendingFee
			decodeBody(t, rec, &records)
			if len(records) != len(tt.wantNames) {
				t.Fatalf("failed! got %d records; want %d", len(records), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if records[i].StudentName != name {
					t.Errorf("failed! records[%d] = %q; want %q", i, records[i].StudentName, name)
				}
			}
		})
	}
}

func Test_feesStatistics(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/fees/statistics", getToken(t))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}

	var stats fees.Statistics
	decodeBody(t, rec, &stats)
	if stats.TotalStudents != 3 {
		t.Errorf("failed! TotalStudents = %d; want 3", stats.TotalStudents)
	}
	if stats.StudentsPaid != 1 {
		t.Errorf("failed! StudentsPaid = %d; want 1", stats.StudentsPaid)
	}
}

func Test_recordPayment(t *testing.T) {
	token := getToken(t)

	tests := []httpTest{
		{
			name:     "valid payment",
			body:     []byte(`{"student_id": 3, "amount": "5000", "mode": "UPI"}`),
			wantCode: http.StatusCreated,
		},
		{
			name:     "overpayment rejected",
			body:     []byte(`{"student_id": 3, "amount": "999999", "mode": "Cash"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown payment mode",
			body:     []byte(`{"student_id": 3, "amount": "100", "mode": "Barter"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown student",
			body:     []byte(`{"student_id": 999, "amount": "100", "mode": "Cash"}`),
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/payments", token, tt.body)
			app.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}

			if tt.wantCode == http.StatusCreated {
				var p fees.Payment
				decodeBody(t, rec, &p)
				if p.ID == 0 {
					t.Error("failed! payment has no id")
				}
				if p.TransactionRef == "" {
					t.Error("failed! payment has no transaction reference")
				}
			}
		})
	}
}

func Test_paymentReceipt(t *testing.T) {
	token := getToken(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/payments/1/receipt", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	var r fees.Receipt
	decodeBody(t, rec, &r)
	if r.StudentName != "Priya Sharma" {
		t.Errorf("failed! StudentName = %q; want %q", r.StudentName, "Priya Sharma")
	}

	req, rec = newAuthRequest(http.MethodGet, "/v1/payments/999/receipt", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNotFound)
	}
}

func Test_recentPayments(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/payments/recent?limit=2", getToken(t))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	var payments []fees.Payment
	decodeBody(t, rec, &payments)
	if len(payments) != 2 {
		t.Errorf("failed! got %d payments; want 2", len(payments))
	}
}
