package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core/batch"
)

func registerBatchAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *batch.Service) {
	api := batchAPI{svc: svc}

	bg := g.Group("/batches", jwt)
	bg.GET("", api.query)
	bg.POST("", api.create)
	bg.GET("/upcoming", api.upcoming)
	bg.GET("/:id", api.retrieve)
	bg.PATCH("/:id", api.update)
	bg.DELETE("/:id", api.delete)
	bg.GET("/:id/enrollment", api.enrollment)
}

type batchAPI struct {
	svc *batch.Service
}

func (api batchAPI) query(ctx echo.Context) error {
	batches, err := api.svc.QueryByCategory(ctx.Request().Context(), ctx.QueryParam("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, batches)
}

func (api batchAPI) create(ctx echo.Context) error {
	var nb batch.NewBatch
	if err := ctx.Bind(&nb); err != nil {
		return err
	}
	b, err := api.svc.Create(ctx.Request().Context(), nb)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, b)
}

func (api batchAPI) upcoming(ctx echo.Context) error {
	days, _ := strconv.Atoi(ctx.QueryParam("days"))
	batches, err := api.svc.Upcoming(ctx.Request().Context(), days)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, batches)
}

func (api batchAPI) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	b, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b)
}

func (api batchAPI) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var ub batch.UpdateBatch
	if err = ctx.Bind(&ub); err != nil {
		return err
	}
	b, err := api.svc.Update(ctx.Request().Context(), id, ub)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, b)
}

func (api batchAPI) delete(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if _, err = api.svc.GetByID(ctx.Request().Context(), id); err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api batchAPI) enrollment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	b, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	count, err := api.svc.StudentCount(ctx.Request().Context(), b.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"batch": b.Name, "enrolled": count, "capacity": b.Capacity})
}
