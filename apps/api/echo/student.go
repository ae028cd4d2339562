package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/performance"
	"github.com/vedsagar/educrm/core/student"
)

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *student.Service, feesSvc *fees.Service, perfSvc *performance.Service) {
	api := studentAPI{svc: svc, fees: feesSvc, perf: perfSvc}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/:id", api.retrieve)
	sg.PATCH("/:id", api.update)
	sg.DELETE("/:id", api.delete)
	sg.GET("/:id/payments", api.payments)
	sg.GET("/:id/performance", api.performance)
}

type studentAPI struct {
	svc  *student.Service
	fees *fees.Service
	perf *performance.Service
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

func (api studentAPI) query(ctx echo.Context) error {
	var qf student.QueryFilter
	if err := ctx.Bind(&qf); err != nil {
		return err
	}
	students, err := api.svc.Filter(ctx.Request().Context(), qf)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api studentAPI) create(ctx echo.Context) error {
	var ns student.NewStudent
	if err := ctx.Bind(&ns); err != nil {
		return err
	}
	s, err := api.svc.Create(ctx.Request().Context(), ns)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api studentAPI) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	s, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api studentAPI) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var us student.UpdateStudent
	if err = ctx.Bind(&us); err != nil {
		return err
	}
	s, err := api.svc.Update(ctx.Request().Context(), id, us)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api studentAPI) delete(ctx echo.Context) error {
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

func (api studentAPI) payments(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	payments, err := api.fees.PaymentsByStudent(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api studentAPI) performance(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if _, err = api.svc.GetByID(ctx.Request().Context(), id); err != nil {
		return err
	}
	history, err := api.perf.StudentHistory(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, history)
}
