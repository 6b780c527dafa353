package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/core/staff"
)

type journalApi struct {
	service  *journal.Service
	staffSvc *staff.Service
}

func registerJournalAPI(g *echo.Group, jwt echo.MiddlewareFunc, service *journal.Service, staffSvc *staff.Service) {
	a := journalApi{service: service, staffSvc: staffSvc}

	jg := g.Group("/journals", jwt)

	ag := jg.Group("/academic")
	ag.GET("", a.academicQuery)
	ag.POST("", a.academicCreate)
	ag.DELETE("", a.academicDestroy)
	ag.POST("/notes", a.academicAddNote)

	sg := jg.Group("/stimulation")
	sg.GET("", a.stimulationQuery)
	sg.POST("", a.stimulationCreate)
	sg.DELETE("", a.stimulationDestroy)
	sg.POST("/notes", a.stimulationAddNote)
}

// Academic journal

func (api *journalApi) academicQuery(ctx echo.Context) error {
	res, err := api.service.QueryAllAcademic(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *journalApi) academicCreate(ctx echo.Context) error {
	data := new(journal.NewAcademicEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	// the entry is authored by whoever holds the token
	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	data.FacilitatorID = fac.ID

	if err := data.Validate(); err != nil {
		return err
	}
	entry, err := api.service.CreateAcademic(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *journalApi) academicDestroy(ctx echo.Context) error {
	data := new(idRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	if err := api.service.DeleteAcademic(ctx.Request().Context(), data.ID, fac.ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "journal entry deleted"})
}

func (api *journalApi) academicAddNote(ctx echo.Context) error {
	data := new(journal.NewPersonalNote)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	data.FacilitatorID = fac.ID

	if err := data.Validate(); err != nil {
		return err
	}
	entry, err := api.service.AddAcademicNote(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

// Stimulation journal

func (api *journalApi) stimulationQuery(ctx echo.Context) error {
	res, err := api.service.QueryAllStimulation(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *journalApi) stimulationCreate(ctx echo.Context) error {
	data := new(journal.NewStimulationEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	data.FacilitatorName = fac.Nickname

	if err := data.Validate(); err != nil {
		return err
	}
	entry, err := api.service.CreateStimulation(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *journalApi) stimulationDestroy(ctx echo.Context) error {
	data := new(idRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	if err := api.service.DeleteStimulation(ctx.Request().Context(), data.ID, fac.Nickname); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "journal entry deleted"})
}

func (api *journalApi) stimulationAddNote(ctx echo.Context) error {
	data := new(journal.NewStimulationNote)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	data.FacilitatorName = fac.Nickname

	if err := data.Validate(); err != nil {
		return err
	}
	entry, err := api.service.AddStimulationNote(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}
