package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
)

type schoolApi struct {
	service  *school.Service
	staffSvc *staff.Service
}

func registerSchoolAPI(g *echo.Group, jwt echo.MiddlewareFunc, service *school.Service, staffSvc *staff.Service) {
	a := schoolApi{service: service, staffSvc: staffSvc}

	cg := g.Group("/classes", jwt)
	cg.GET("", a.classQuery)
	cg.POST("", a.classCreate, adminMiddleware())
	cg.PUT("", a.classUpdate, adminMiddleware())
	cg.DELETE("", a.classDestroy, adminMiddleware())

	sg := g.Group("/subjects", jwt)
	sg.GET("", a.subjectQuery)
	sg.POST("", a.subjectCreate, adminMiddleware())
	sg.PUT("", a.subjectUpdate, adminMiddleware())
	sg.DELETE("", a.subjectDestroy, adminMiddleware())

	stg := g.Group("/students", jwt)
	stg.GET("", a.studentQuery)
	stg.POST("", a.studentCreate, adminMiddleware())
	stg.PUT("", a.studentUpdate, adminMiddleware())
	stg.DELETE("", a.studentDestroy, adminMiddleware())

	// roster a facilitator may journal against for a subject
	g.GET("/journals/eligible-students", a.eligibleStudents, jwt)
}

// Classes

func (api *schoolApi) classQuery(ctx echo.Context) error {
	res, err := api.service.Classes(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *schoolApi) classCreate(ctx echo.Context) error {
	data := new(school.NewClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	cls, err := api.service.CreateClass(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, cls)
}

func (api *schoolApi) classUpdate(ctx echo.Context) error {
	data := new(school.UpdateClass)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	cls, err := api.service.UpdateClass(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *schoolApi) classDestroy(ctx echo.Context) error {
	data := new(idRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := api.service.DeleteClass(ctx.Request().Context(), data.ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "class deleted"})
}

// Subjects

func (api *schoolApi) subjectQuery(ctx echo.Context) error {
	res, err := api.service.Subjects(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *schoolApi) subjectCreate(ctx echo.Context) error {
	data := new(school.NewSubject)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	sub, err := api.service.CreateSubject(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *schoolApi) subjectUpdate(ctx echo.Context) error {
	data := new(school.Subject)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if data.ID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "id", Error: "this field is required"})
	}
	sub, err := api.service.UpdateSubject(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *schoolApi) subjectDestroy(ctx echo.Context) error {
	data := new(idRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := api.service.DeleteSubject(ctx.Request().Context(), data.ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "subject deleted"})
}

// Students

func (api *schoolApi) studentQuery(ctx echo.Context) error {
	if classID := ctx.QueryParam("classId"); classID != "" {
		res, err := api.service.StudentsInClass(ctx.Request().Context(), classID)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, res)
	}
	res, err := api.service.Students(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *schoolApi) studentCreate(ctx echo.Context) error {
	data := new(school.NewStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	std, err := api.service.CreateStudent(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, std)
}

func (api *schoolApi) studentUpdate(ctx echo.Context) error {
	data := new(school.UpdateStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	std, err := api.service.UpdateStudent(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, std)
}

func (api *schoolApi) studentDestroy(ctx echo.Context) error {
	data := new(idRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	if err := api.service.DeleteStudent(ctx.Request().Context(), data.ID); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "student deleted"})
}

// eligibleStudents filters the roster by the acting facilitator's
// gender for the restricted subject.
func (api *schoolApi) eligibleStudents(ctx echo.Context) error {
	subjectName := ctx.QueryParam("subject")

	fac, err := getContextFacilitator(ctx, api.staffSvc)
	if err != nil {
		return err
	}
	res, err := api.service.EligibleStudents(ctx.Request().Context(), subjectName, fac.Gender)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}
