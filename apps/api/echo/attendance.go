package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/attendance"
)

type attendanceApi struct {
	service *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, service *attendance.Service) {
	a := attendanceApi{service: service}

	ag := g.Group("/attendance", jwt)
	ag.GET("", a.attendanceQuery)
	ag.POST("", a.attendanceCreate)
}

func (api *attendanceApi) attendanceQuery(ctx echo.Context) error {
	studentID := ctx.QueryParam("studentId")
	if studentID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "studentId", Error: "this field is required"})
	}
	res, err := api.service.ByStudent(ctx.Request().Context(), studentID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *attendanceApi) attendanceCreate(ctx echo.Context) error {
	data := new(attendance.NewRecord)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rec)
}
