package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/staff"
)

type staffApi struct {
	service *staff.Service
}

func registerStaffAPI(g *echo.Group, jwt echo.MiddlewareFunc, service *staff.Service) {
	a := staffApi{service: service}

	fg := g.Group("/facilitators", jwt)
	fg.GET("", a.facilitatorQuery)
	fg.POST("", a.facilitatorCreate, adminMiddleware())
	fg.PUT("", a.facilitatorUpdate, adminMiddleware())
	fg.DELETE("", a.facilitatorDestroy, adminMiddleware())

	ag := g.Group("/assignments", jwt)
	ag.GET("", a.assignmentQuery)
	ag.PUT("", a.assignmentSave, adminMiddleware())
}

// Handlers

func (api *staffApi) facilitatorQuery(ctx echo.Context) error {
	res, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *staffApi) facilitatorCreate(ctx echo.Context) error {
	data := new(staff.NewFacilitator)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.service); err != nil {
		return err
	}

	fac, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fac)
}

func (api *staffApi) facilitatorUpdate(ctx echo.Context) error {
	data := new(staff.UpdateFacilitator)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if data.ID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "id", Error: "this field is required"})
	}

	orig, err := api.service.GetByID(ctx.Request().Context(), data.ID)
	if err != nil {
		return err
	}
	if err := data.Validate(orig, api.service); err != nil {
		return err
	}

	fac, err := api.service.Update(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, fac)
}

func (api *staffApi) facilitatorDestroy(ctx echo.Context) error {
	data := new(idRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	// always fails with ErrDeleteUnsupported; kept as an endpoint so the
	// client gets an explicit answer instead of a 404
	return api.service.Delete(ctx.Request().Context(), data.ID)
}

func (api *staffApi) assignmentQuery(ctx echo.Context) error {
	facilitatorID := ctx.QueryParam("facilitatorId")
	classID := ctx.QueryParam("classId")

	if facilitatorID != "" && classID != "" {
		subjects, err := api.service.AssignedSubjects(ctx.Request().Context(), facilitatorID, classID)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, echo.Map{"subjectIds": subjects})
	}

	asg, err := api.service.Assignments(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, asg)
}

func (api *staffApi) assignmentSave(ctx echo.Context) error {
	data := make(staff.Assignments)
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := api.service.SaveAssignments(ctx.Request().Context(), data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "assignments saved"})
}
