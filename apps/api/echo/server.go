package echoapi

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/attendance"
	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/core/savings"
	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		Logger        core.Logger
		StaffSvc      *staff.Service
		SchoolSvc     *school.Service
		JournalSvc    *journal.Service
		SavingsSvc    *savings.Service
		AttendanceSvc *attendance.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAuthAPI(v1, s.opts.StaffSvc)
	registerStaffAPI(v1, jwt, s.opts.StaffSvc)
	registerSchoolAPI(v1, jwt, s.opts.SchoolSvc, s.opts.StaffSvc)
	registerJournalAPI(v1, jwt, s.opts.JournalSvc, s.opts.StaffSvc)
	registerSavingsAPI(v1, jwt, s.opts.SavingsSvc)
	registerAttendanceAPI(v1, jwt, s.opts.AttendanceSvc)
	registerRecapAPI(v1, jwt, s.opts.JournalSvc, s.opts.SavingsSvc, s.opts.AttendanceSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) signalShutdown() {
	// integrity compromised; stop taking requests
	if err := s.Stop(context.Background()); err != nil {
		s.app.Logger.Error(err)
		os.Exit(1)
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+core.Conf.GetString("appName")+" API!")
}
