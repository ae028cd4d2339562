package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core/performance"
)

func registerPerformanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *performance.Service) {
	api := performanceAPI{svc: svc}

	tg := g.Group("/tests", jwt)
	tg.GET("", api.recentTests)
	tg.POST("", api.createTest)
	tg.GET("/:id", api.retrieveTest)
	tg.GET("/:id/scores", api.testScores)

	g.POST("/scores", api.saveScore, jwt)
}

type performanceAPI struct {
	svc *performance.Service
}

func (api performanceAPI) recentTests(ctx echo.Context) error {
	if batch := ctx.QueryParam("batch"); batch != "" {
		tests, err := api.svc.TestsByBatch(ctx.Request().Context(), batch)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, tests)
	}
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	tests, err := api.svc.RecentTests(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tests)
}

func (api performanceAPI) createTest(ctx echo.Context) error {
	var nt performance.NewTest
	if err := ctx.Bind(&nt); err != nil {
		return err
	}
	t, err := api.svc.CreateTest(ctx.Request().Context(), nt)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api performanceAPI) retrieveTest(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	t, err := api.svc.GetTest(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api performanceAPI) testScores(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	scores, err := api.svc.ScoresForTest(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, scores)
}

func (api performanceAPI) saveScore(ctx echo.Context) error {
	var ns performance.NewScore
	if err := ctx.Bind(&ns); err != nil {
		return err
	}
	s, err := api.svc.SaveScore(ctx.Request().Context(), ns)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s)
}
