package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core/fees"
)

func registerFeesAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *fees.Service) {
	api := feesAPI{svc: svc}

	fg := g.Group("/fees", jwt)
	fg.GET("/pending", api.pending)
	fg.GET("/statistics", api.statistics)
	fg.GET("/monthly", api.monthly)

	pg := g.Group("/payments", jwt)
	pg.POST("", api.recordPayment)
	pg.GET("/recent", api.recentPayments)
	pg.GET("/:id/receipt", api.receipt)
}

type feesAPI struct {
	svc *fees.Service
}

func criteriaFromQuery(ctx echo.Context) (fees.Criteria, error) {
	amount, err := fees.ParseAmountBucket(ctx.QueryParam("amount"))
	if err != nil {
		return fees.Criteria{}, err
	}
	due, err := fees.ParseDueBucket(ctx.QueryParam("due"))
	if err != nil {
		return fees.Criteria{}, err
	}
	return fees.Criteria{
		Amount:   amount,
		Due:      due,
		Category: ctx.QueryParam("category"),
		Batch:    ctx.QueryParam("batch"),
	}, nil
}

func (api feesAPI) pending(ctx echo.Context) error {
	criteria, err := criteriaFromQuery(ctx)
	if err != nil {
		return err
	}
	records, err := api.svc.PendingFees(ctx.Request().Context(), criteria, time.Now().UTC())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api feesAPI) statistics(ctx echo.Context) error {
	stats, err := api.svc.Statistics(ctx.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api feesAPI) monthly(ctx echo.Context) error {
	totals, err := api.svc.MonthlyCollection(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, totals)
}

func (api feesAPI) recordPayment(ctx echo.Context) error {
	var np fees.NewPayment
	if err := ctx.Bind(&np); err != nil {
		return err
	}
	p, err := api.svc.RecordPayment(ctx.Request().Context(), np)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, p)
}

func (api feesAPI) recentPayments(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	payments, err := api.svc.RecentPayments(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api feesAPI) receipt(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	receipt, err := api.svc.Receipt(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, receipt)
}
