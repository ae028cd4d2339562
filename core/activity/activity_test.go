package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/vedsagar/educrm/core/activity"
	demodb "github.com/vedsagar/educrm/storage/demo"
)

func TestActivityTimeAgo(t *testing.T) {
	now := time.Date(2021, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"just recorded", now.Add(-10 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-48 * time.Hour), "2 days ago"},
		{"zero time", time.Time{}, "just now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := activity.Activity{CreatedAt: tt.createdAt}
			if got := a.TimeAgo(now); got != tt.want {
				t.Errorf("TimeAgo() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestRecentAnnotatesAge(t *testing.T) {
	ctx := context.Background()
	db, err := demodb.Open()
	if err != nil {
		t.Fatalf("demodb.Open(): %v", err)
	}
	repo := demodb.NewActivityRepository(db)
	svc := activity.NewService(repo, nil)

	now := time.Now().UTC()
	older := activity.Activity{
		Description: "Student Priya Sharma enrolled",
		Type:        activity.TypeEnrollment,
		CreatedAt:   now.Add(-25 * time.Hour),
	}
	newer := activity.Activity{
		Description: "Payment of ₹5,000 recorded",
		Type:        activity.TypePayment,
		CreatedAt:   now.Add(-2 * time.Hour),
	}
	for _, a := range []activity.Activity{older, newer} {
		if _, err = repo.CreateActivity(ctx, a); err != nil {
			t.Fatalf("CreateActivity(): %v", err)
		}
	}

	acts, err := svc.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent(): %v", err)
	}
	if len(acts) != 2 {
		t.Fatalf("Recent() returned %d entries; want 2", len(acts))
	}
	if acts[0].Description != newer.Description {
		t.Errorf("Recent()[0] = %q; want newest first (%q)", acts[0].Description, newer.Description)
	}
	if acts[0].Age != "2 hours ago" {
		t.Errorf("Recent()[0].Age = %q; want %q", acts[0].Age, "2 hours ago")
	}
	if acts[1].Age != "1 day ago" {
		t.Errorf("Recent()[1].Age = %q; want %q", acts[1].Age, "1 day ago")
	}
}

func TestLogRecordsEntry(t *testing.T) {
	ctx := context.Background()
	db, err := demodb.Open()
	if err != nil {
		t.Fatalf("demodb.Open(): %v", err)
	}
	svc := activity.NewService(demodb.NewActivityRepository(db), nil)

	svc.Log(ctx, "WhatsApp reminders sent to 2 students", activity.TypeCommunication)

	acts, err := svc.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent(): %v", err)
	}
	if len(acts) != 1 {
		t.Fatalf("Recent() returned %d entries; want 1", len(acts))
	}
	if acts[0].Type != activity.TypeCommunication {
		t.Errorf("Type = %q; want %q", acts[0].Type, activity.TypeCommunication)
	}
	if acts[0].Age != "just now" {
		t.Errorf("Age = %q; want %q", acts[0].Age, "just now")
	}
}
