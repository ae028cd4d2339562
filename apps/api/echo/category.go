package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core/category"
)

func registerCategoryAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *category.Service) {
	api := categoryAPI{svc: svc}

	cg := g.Group("/categories", jwt)
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PATCH("/:id", api.update)
	cg.DELETE("/:id", api.delete)
}

type categoryAPI struct {
	svc *category.Service
}

func (api categoryAPI) query(ctx echo.Context) error {
	categories, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, categories)
}

func (api categoryAPI) create(ctx echo.Context) error {
	var nc category.NewCategory
	if err := ctx.Bind(&nc); err != nil {
		return err
	}
	c, err := api.svc.Create(ctx.Request().Context(), nc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api categoryAPI) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	c, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api categoryAPI) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var uc category.UpdateCategory
	if err = ctx.Bind(&uc); err != nil {
		return err
	}
	c, err := api.svc.Update(ctx.Request().Context(), id, uc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api categoryAPI) delete(ctx echo.Context) error {
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
