// Package di wires the application graph: config, logger, store, domain
// services and the HTTP server.
package di

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/vedsagar/educrm/apps/api/echo"
	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/activity"
	"github.com/vedsagar/educrm/core/batch"
	"github.com/vedsagar/educrm/core/category"
	"github.com/vedsagar/educrm/core/comm"
	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/performance"
	"github.com/vedsagar/educrm/core/student"
	emailsvc "github.com/vedsagar/educrm/services/email"
	logsvc "github.com/vedsagar/educrm/services/logger"
	"github.com/vedsagar/educrm/services/scheduler"
	"github.com/vedsagar/educrm/services/whatsapp"
	demodb "github.com/vedsagar/educrm/storage/demo"
	"github.com/vedsagar/educrm/storage/nocodb"
)

// Repos bundles the repository set for whichever store is active.
type Repos struct {
	Students    student.Repository
	Enrollment  batch.EnrollmentCounter
	Batches     batch.Repository
	Categories  category.Repository
	Payments    fees.PaymentRepository
	Performance performance.Repository
	Templates   comm.TemplateRepository
	CommLogs    comm.LogRepository
	Activities  activity.Repository
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	if conf.RollbarToken == "" {
		return logsvc.NewStdLogger(stdLogger)
	}
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, ok := uni.GetTranslator(enLocale.Locale())
	if !ok {
		return nil, nil, errors.Errorf("translator not found for %s", enLocale.Locale())
	}
	return validator.New(), translator, nil
}

// newRepos opens the demo store when NocoDB credentials are absent,
// otherwise the NocoDB-backed repositories.
func newRepos(conf *core.Config, logger core.Logger) (*Repos, error) {
	if conf.DemoMode() {
		logger.Info("no table store configured; running in demo mode")
		db, err := demodb.Open()
		if err != nil {
			return nil, err
		}
		if err = demodb.Seed(context.Background(), db); err != nil {
			return nil, errors.Wrap(err, "seeding demo data")
		}
		students := demodb.NewStudentRepository(db)
		return &Repos{
			Students:    students,
			Enrollment:  students,
			Batches:     demodb.NewBatchRepository(db),
			Categories:  demodb.NewCategoryRepository(db),
			Payments:    demodb.NewPaymentRepository(db),
			Performance: demodb.NewPerformanceRepository(db),
			Templates:   demodb.NewTemplateRepository(db),
			CommLogs:    demodb.NewCommLogRepository(db),
			Activities:  demodb.NewActivityRepository(db),
		}, nil
	}

	client := nocodb.NewClient(conf, logger)
	students := nocodb.NewStudentRepository(client)
	return &Repos{
		Students:    students,
		Enrollment:  students,
		Batches:     nocodb.NewBatchRepository(client),
		Categories:  nocodb.NewCategoryRepository(client),
		Payments:    nocodb.NewPaymentRepository(client),
		Performance: nocodb.NewPerformanceRepository(client),
		Templates:   nocodb.NewTemplateRepository(client),
		CommLogs:    nocodb.NewCommLogRepository(client),
		Activities:  nocodb.NewActivityRepository(client),
	}, nil
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.SendgridApiKey == "" || conf.Debug || conf.TestMode {
		return emailsvc.NewConsoleService(conf)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

func newActivityService(repos *Repos, logger core.Logger) *activity.Service {
	return activity.NewService(repos.Activities, logger)
}

func newStudentService(repos *Repos, activitySvc *activity.Service) *student.Service {
	return student.NewService(repos.Students, activitySvc)
}

func newBatchService(repos *Repos) *batch.Service {
	return batch.NewService(repos.Batches, repos.Enrollment)
}

func newCategoryService(repos *Repos) *category.Service {
	return category.NewService(repos.Categories)
}

func newFeesService(repos *Repos, activitySvc *activity.Service) *fees.Service {
	return fees.NewService(repos.Payments, repos.Students, activitySvc)
}

func newPerformanceService(repos *Repos, activitySvc *activity.Service) *performance.Service {
	return performance.NewService(repos.Performance, activitySvc)
}

func newCommService(conf *core.Config, repos *Repos, activitySvc *activity.Service) *comm.Service {
	return comm.NewService(repos.Templates, repos.CommLogs, whatsapp.NewService(conf), activitySvc)
}

func newScheduler(conf *core.Config, feesSvc *fees.Service, mailer core.EmailService, logger core.Logger) *scheduler.Scheduler {
	return scheduler.New(conf, feesSvc, mailer, logger)
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	studentSvc *student.Service,
	batchSvc *batch.Service,
	categorySvc *category.Service,
	feesSvc *fees.Service,
	performanceSvc *performance.Service,
	commSvc *comm.Service,
	activitySvc *activity.Service,
) echoapi.Server {
	return echoapi.NewServer(&echoapi.Options{
		Address:        conf.Server.Addr,
		Conf:           conf,
		Logger:         logger,
		StudentSvc:     studentSvc,
		BatchSvc:       batchSvc,
		CategorySvc:    categorySvc,
		FeesSvc:        feesSvc,
		PerformanceSvc: performanceSvc,
		CommSvc:        commSvc,
		ActivitySvc:    activitySvc,
	})
}

func New() *dig.Container {
	c := dig.New()
	for _, provide := range []interface{}{
		core.NewConfig,
		newLogger,
		newValidator,
		newRepos,
		newEmailService,
		newActivityService,
		newStudentService,
		newBatchService,
		newCategoryService,
		newFeesService,
		newPerformanceService,
		newCommService,
		newScheduler,
		newServer,
	} {
		if err := c.Provide(provide); err != nil {
			log.Fatalf("building container: %+v", err)
		}
	}
	return c
}
