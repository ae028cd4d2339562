package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core/activity"
	"github.com/vedsagar/educrm/core/batch"
	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/student"
)

func registerDashboardAPI(g *echo.Group, jwt echo.MiddlewareFunc, feesSvc *fees.Service, studentSvc *student.Service, batchSvc *batch.Service, activitySvc *activity.Service) {
	api := dashboardAPI{fees: feesSvc, students: studentSvc, batches: batchSvc, activities: activitySvc}
	g.GET("/dashboard", api.dashboard, jwt)
}

type dashboardAPI struct {
	fees       *fees.Service
	students   *student.Service
	batches    *batch.Service
	activities *activity.Service
}

// dashboard aggregates the landing page in one call: fee statistics, batch
// count, recent payments and the activity trail.
func (api dashboardAPI) dashboard(ctx echo.Context) error {
	rctx := ctx.Request().Context()

	stats, err := api.fees.Statistics(rctx, time.Now().UTC())
	if err != nil {
		return err
	}
	batches, err := api.batches.QueryAll(rctx)
	if err != nil {
		return err
	}
	payments, err := api.fees.RecentPayments(rctx, 5)
	if err != nil {
		return err
	}
	activities, err := api.activities.Recent(rctx, 10)
	if err != nil {
		return err
	}

	active := 0
	for _, b := range batches {
		if b.Active {
			active++
		}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"fee_statistics":    stats,
		"total_batches":     len(batches),
		"active_batches":    active,
		"recent_payments":   payments,
		"recent_activities": activities,
	})
}
