package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vedsagar/educrm/core"
	"github.com/vedsagar/educrm/core/comm"
	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/student"
)

func registerCommAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *comm.Service, studentSvc *student.Service, feesSvc *fees.Service) {
	api := commAPI{svc: svc, students: studentSvc, fees: feesSvc}

	tg := g.Group("/templates", jwt)
	tg.GET("", api.queryTemplates)
	tg.POST("", api.createTemplate)
	tg.GET("/:id", api.retrieveTemplate)
	tg.PATCH("/:id", api.updateTemplate)
	tg.DELETE("/:id", api.deleteTemplate)

	cg := g.Group("/communication", jwt)
	cg.POST("/reminders", api.buildReminders)
	cg.GET("/logs", api.logs)
}

type commAPI struct {
	svc      *comm.Service
	students *student.Service
	fees     *fees.Service
}

func (api commAPI) queryTemplates(ctx echo.Context) error {
	templates, err := api.svc.QueryTemplates(ctx.Request().Context(), ctx.QueryParam("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, templates)
}

func (api commAPI) createTemplate(ctx echo.Context) error {
	var nt comm.NewTemplate
	if err := ctx.Bind(&nt); err != nil {
		return err
	}
	t, err := api.svc.CreateTemplate(ctx.Request().Context(), nt)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t)
}

func (api commAPI) retrieveTemplate(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	t, err := api.svc.GetTemplate(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api commAPI) updateTemplate(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var ut comm.UpdateTemplate
	if err = ctx.Bind(&ut); err != nil {
		return err
	}
	t, err := api.svc.UpdateTemplate(ctx.Request().Context(), id, ut)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t)
}

func (api commAPI) deleteTemplate(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if _, err = api.svc.GetTemplate(ctx.Request().Context(), id); err != nil {
		return err
	}
	if err = api.svc.DeleteTemplates(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

type remindersRequest struct {
	StudentIDs []int  `json:"student_ids" validate:"required,min=1"`
	TemplateID int    `json:"template_id"`
	Message    string `json:"message"` // free-form alternative to a template
}

// buildReminders prepares personalized WhatsApp links for the selected
// students. Rows fail independently; the response always covers every
// requested student.
func (api commAPI) buildReminders(ctx echo.Context) error {
	var req remindersRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := core.Validate.Struct(&req); err != nil {
		return err
	}

	rctx := ctx.Request().Context()
	template := comm.Template{Content: req.Message}
	if req.TemplateID != 0 {
		var err error
		if template, err = api.svc.GetTemplate(rctx, req.TemplateID); err != nil {
			return err
		}
	}
	if template.Content == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "template_id", Error: "a template or message is required"})
	}

	today := time.Now().UTC()
	recipients := make([]comm.Recipient, 0, len(req.StudentIDs))
	for _, id := range req.StudentIDs {
		s, err := api.students.GetByID(rctx, id)
		if err != nil {
			recipients = append(recipients, comm.Recipient{StudentID: id, Phone: ""})
			continue
		}
		pf, err := fees.FromStudent(s, today)
		if err != nil {
			recipients = append(recipients, comm.Recipient{StudentID: id, Name: s.FullName, Phone: ""})
			continue
		}
		pending := pf.PendingAmount
		recipients = append(recipients, comm.Recipient{
			StudentID: s.ID,
			Name:      s.FullName,
			Phone:     s.ParentPhone,
			Fields: comm.Fields{
				StudentName:   s.FullName,
				BatchName:     s.Batch,
				PendingAmount: &pending,
				DueDate:       s.FeeDueDate,
				DaysOverdue:   pf.Status.DaysOverdue,
			},
		})
	}

	res, err := api.svc.BuildReminders(rctx, recipients, template)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"summary":   res.Summary(),
		"prepared":  res.Prepared,
		"failed":    res.Failed,
		"reminders": res.Reminders,
	})
}

func (api commAPI) logs(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	logs, err := api.svc.RecentLogs(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, logs)
}
