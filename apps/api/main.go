package main

import (
	"fmt"
	"log"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vedsagar/educrm/apps/api/di"
	echoapi "github.com/vedsagar/educrm/apps/api/echo"
	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/services/scheduler"
)

func main() {
	c := di.New()

	must(c.Invoke(func(
		conf *core.Config,
		logger core.Logger,
		validate *validator.Validate,
		translator ut.Translator,
		sched *scheduler.Scheduler,
		server echoapi.Server,
	) {
		// =========================================================================
		// Initialize App

		logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
		defer logger.Info("Application stopped")

		core.InitValidators(validate, translator)

		// =========================================================================
		// Start recurring jobs

		if err := sched.Start(); err != nil {
			logger.Fatal("starting scheduler", err)
		}
		defer func() { <-sched.Stop().Done() }()

		// =========================================================================
		// Start API Service

		logger.Info(fmt.Sprintf("serving on %s", conf.Server.Addr))
		server.Start()
	}))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
