package main

import (
	"log"
	"os"

	"github.com/smartsyakila/backend/apps/api/echo"
	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/attendance"
	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/core/savings"
	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
	logsvc "github.com/smartsyakila/backend/services/logger"
	"github.com/smartsyakila/backend/storage/blob"
	"github.com/smartsyakila/backend/storage/document"
)

func main() {
	std := log.New(os.Stdout, core.Conf.GetString("appName")+" : ", log.LstdFlags|log.Lshortfile)

	// set up the document store
	store, closeStore, err := openStore()
	if err != nil {
		std.Fatal(err)
	}
	defer closeStore()

	// set up logging
	var logger core.Logger
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// set up services
	staffSvc := staff.NewService(document.NewFacilitatorRepository(store))
	schoolSvc := school.NewService(document.NewSchoolRepository(store))
	journalSvc := journal.NewService(document.NewJournalRepository(store))
	savingsSvc := savings.NewService(document.NewSavingsRepository(store))
	attendanceSvc := attendance.NewService(document.NewAttendanceRepository(store))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:          core.Conf.GetString("serverAddr"),
			Logger:        logger,
			StaffSvc:      staffSvc,
			SchoolSvc:     schoolSvc,
			JournalSvc:    journalSvc,
			SavingsSvc:    savingsSvc,
			AttendanceSvc: attendanceSvc,
		},
	)
	app.Start()
}

func openStore() (blob.Store, func(), error) {
	switch backend := core.Conf.GetString("storage.backend"); backend {
	case "postgres":
		pg, err := blob.OpenPG()
		if err != nil {
			return nil, nil, err
		}
		return pg, func() { _ = pg.Close() }, nil
	default: // fs
		fs, err := blob.NewFileStore(core.Conf.GetString("storage.dataDir"))
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
