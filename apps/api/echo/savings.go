package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/savings"
)

type savingsApi struct {
	service *savings.Service
}

func registerSavingsAPI(g *echo.Group, jwt echo.MiddlewareFunc, service *savings.Service) {
	a := savingsApi{service: service}

	sg := g.Group("/savings", jwt)
	sg.GET("", a.savingsQuery)
	sg.POST("", a.savingsCreate)
}

func (api *savingsApi) savingsQuery(ctx echo.Context) error {
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

func (api *savingsApi) savingsCreate(ctx echo.Context) error {
	data := new(savings.NewTransaction)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	trx, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, trx)
}
