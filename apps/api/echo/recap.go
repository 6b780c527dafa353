package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartsyakila/backend/core/attendance"
	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/core/savings"
)

// recapApi serves the read-only derived views of one student.
type recapApi struct {
	journalSvc    *journal.Service
	savingsSvc    *savings.Service
	attendanceSvc *attendance.Service
}

func registerRecapAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	journalSvc *journal.Service,
	savingsSvc *savings.Service,
	attendanceSvc *attendance.Service,
) {
	a := recapApi{
		journalSvc:    journalSvc,
		savingsSvc:    savingsSvc,
		attendanceSvc: attendanceSvc,
	}

	rg := g.Group("/students/:id/recap", jwt)
	rg.GET("/attendance", a.attendanceRecap)
	rg.GET("/savings", a.savingsRecap)
	rg.GET("/academic", a.academicRecap)
}

func (api *recapApi) attendanceRecap(ctx echo.Context) error {
	sum, err := api.attendanceSvc.Summarize(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *recapApi) savingsRecap(ctx echo.Context) error {
	sum, err := api.savingsSvc.Summarize(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *recapApi) academicRecap(ctx echo.Context) error {
	rollups, err := api.journalSvc.AcademicRollup(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rollups)
}
