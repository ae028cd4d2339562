package tests

import (
	"net/http"
	"testing"

	"github.com/vedsagar/educrm/core/activity"
	"github.com/vedsagar/educrm/core/fees"
)

func Test_dashboard(t *testing.T) {
	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard", getToken(t))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		FeeStatistics    fees.Statistics     `json:"fee_statistics"`
		TotalBatches     int                 `json:"total_batches"`
		ActiveBatches    int                 `json:"active_batches"`
		RecentActivities []activity.Activity `json:"recent_activities"`
	}
	decodeBody(t, rec, &body)

	if body.FeeStatistics.TotalStudents != 3 {
		t.Errorf("failed! TotalStudents = %d; want 3", body.FeeStatistics.TotalStudents)
	}
	if body.TotalBatches != 3 {
		t.Errorf("failed! TotalBatches = %d; want 3", body.TotalBatches)
	}
	if body.ActiveBatches == 0 {
		t.Errorf("failed! ActiveBatches = 0; want > 0")
	}
	if len(body.RecentActivities) == 0 {
		t.Fatalf("failed! RecentActivities is empty")
	}
	for _, a := range body.RecentActivities {
		if a.Age == "" {
			t.Errorf("failed! activity %d (%q) has no time_ago", a.ID, a.Description)
		}
	}
}
