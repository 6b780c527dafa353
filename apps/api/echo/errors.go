package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/attendance"
	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/core/savings"
	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	errHttpForbidden        = echo.NewHTTPError(http.StatusForbidden, "permission denied")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		cause := errors.Cause(err)
		switch {
		case cause == staff.ErrEmailExists:
			code = http.StatusConflict
			message = cause.Error()
		case cause == staff.ErrDeleteUnsupported:
			code = http.StatusBadRequest
			message = cause.Error()
		case cause == journal.ErrNotAuthor:
			code = http.StatusForbidden
			message = cause.Error()
		case cause == staff.ErrNotFound, cause == school.ErrNotFound,
			cause == journal.ErrNotFound, cause == savings.ErrNotFound,
			cause == attendance.ErrNotFound:
			code = http.StatusNotFound
			message = cause.Error()
		default:
			code, message = httpCodeAndMessage(cause, ctx, logger, err, signalShutdown)
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func httpCodeAndMessage(cause error, ctx echo.Context, logger core.Logger, err error, signalShutdown func()) (int, interface{}) {
	switch origErr := cause.(type) {
	case *echo.HTTPError:
		if origErr == middleware.ErrJWTMissing {
			return http.StatusUnauthorized, origErr.Message
		}
		if origErr.Internal != nil {
			if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
				origErr = herr
			}
		}
		return origErr.Code, origErr.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
		}
		return http.StatusBadRequest, fldErrs
	case *core.ValidationError:
		if origErr.Fields != nil {
			fldErrs := make(map[string]string, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			return http.StatusBadRequest, fldErrs
		}
		return http.StatusBadRequest, origErr.Error()
	default: // any other error is a server error
		msg := http.StatusText(http.StatusInternalServerError)

		var fac staff.Facilitator
		if claims, cErr := getContextClaims(ctx); cErr == nil {
			fac.ID = claims.Subject
			fac.Nickname = claims.Name
			fac.Email = claims.Email
		}
		logger.Error(msg, errors.Wrap(err, msg), fac)

		// shutting down...
		if core.IsShutdown(err) {
			signalShutdown()
		}
		return http.StatusInternalServerError, msg
	}
}
