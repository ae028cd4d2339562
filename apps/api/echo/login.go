package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func registerAuthAPI(g *echo.Group, conf *core.Config) {
	api := authAPI{conf: conf}
	g.POST("/auth/login", api.login)
}

type authAPI struct {
	conf *core.Config
}

func (api authAPI) login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := core.Validate.Struct(&req); err != nil {
		return err
	}

	claims, err := authenticate(req.Username, req.Password, api.conf)
	if err != nil {
		return err
	}
	token, err := GenerateToken(claims)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loginResponse{Token: token})
}
