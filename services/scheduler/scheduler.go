// Package scheduler runs the recurring jobs: for now, the daily
// pending-fee digest.
package scheduler

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/fees"
)

type Scheduler struct {
	conf   *core.Config
	fees   *fees.Service
	mailer core.EmailService
	logger core.Logger
	cron   *cron.Cron
}

func New(conf *core.Config, feeSvc *fees.Service, mailer core.EmailService, logger core.Logger) *Scheduler {
	return &Scheduler{
		conf:   conf,
		fees:   feeSvc,
		mailer: mailer,
		logger: logger,
		cron:   cron.New(),
	}
}

// Start registers the digest job and kicks off the cron loop.
func (s *Scheduler) Start() error {
	spec := s.conf.Fees.DigestSchedule
	if spec == "" {
		spec = "0 9 * * *" // 09:00 every day
	}
	if _, err := s.cron.AddFunc(spec, s.runDigest); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info(fmt.Sprintf("fee digest scheduled (%s)", spec))
	return nil
}

func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	window := 7
	if ivs := s.conf.Fees.ReminderIntervals; len(ivs) > 0 {
		window = ivs[len(ivs)-1]
	}

	digest, err := s.fees.DueDigest(ctx, time.Now().UTC(), window)
	if err != nil {
		s.logger.Error("building fee digest", err)
		return
	}
	if digest.IsEmpty() {
		s.logger.Info("fee digest: nothing due")
		return
	}

	s.logger.Info(fmt.Sprintf("fee digest: %d overdue, %d due today, %d due within %d days",
		len(digest.Overdue), len(digest.DueToday), len(digest.DueUpcoming), window))

	if s.conf.Features.EmailNotifications && s.mailer != nil {
		s.mailer.SendMessages(&core.EmailMessage{
			To:      []mail.Address{s.conf.DefaultFromEmail},
			Subject: "Daily fee digest - " + core.FormatDate(digest.Date),
			Body:    renderDigest(digest),
		})
	}
}

func renderDigest(d fees.Digest) string {
	b := new(strings.Builder)
	section := func(title string, recs []fees.PendingFee) {
		if len(recs) == 0 {
			return
		}
		fmt.Fprintf(b, "%s (%d)\n", title, len(recs))
		for _, r := range recs {
			fmt.Fprintf(b, "  - %s (%s): %s pending", r.StudentName, r.Batch, core.FormatCurrency(r.PendingAmount))
			if r.Status.DaysOverdue > 0 {
				fmt.Fprintf(b, ", %d day(s) overdue", r.Status.DaysOverdue)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	section("Overdue", d.Overdue)
	section("Due today", d.DueToday)
	section("Coming up", d.DueUpcoming)
	return b.String()
}
