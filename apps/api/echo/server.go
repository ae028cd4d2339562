package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/activity"
	"github.com/vedsagar/educrm/core/batch"
	"github.com/vedsagar/educrm/core/category"
	"github.com/vedsagar/educrm/core/comm"
	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/performance"
	"github.com/vedsagar/educrm/core/student"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Conf           *core.Config
		Logger         core.Logger
		StudentSvc     *student.Service
		BatchSvc       *batch.Service
		CategorySvc    *category.Service
		FeesSvc        *fees.Service
		PerformanceSvc *performance.Service
		CommSvc        *comm.Service
		ActivitySvc    *activity.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	appJWTConfig.SigningKey = opts.Conf.SecretKey
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	shutdown := func() { s.Stop(context.Background()) } //nolint:errcheck
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, shutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)
	s.app.GET("/health", health)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAuthAPI(v1, conf)
	registerStudentAPI(v1, jwt, s.opts.StudentSvc, s.opts.FeesSvc, s.opts.PerformanceSvc)
	registerBatchAPI(v1, jwt, s.opts.BatchSvc)
	registerCategoryAPI(v1, jwt, s.opts.CategorySvc)
	registerFeesAPI(v1, jwt, s.opts.FeesSvc)
	registerPerformanceAPI(v1, jwt, s.opts.PerformanceSvc)
	registerCommAPI(v1, jwt, s.opts.CommSvc, s.opts.StudentSvc, s.opts.FeesSvc)
	registerDashboardAPI(v1, jwt, s.opts.FeesSvc, s.opts.StudentSvc, s.opts.BatchSvc, s.opts.ActivitySvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to EduCRM API!")
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
