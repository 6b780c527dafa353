package main

import (
	"log"
	"os"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
	"github.com/smartsyakila/backend/storage/blob"
	"github.com/smartsyakila/backend/storage/document"
)

func main() {
	store, cleanup, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	cli := commandLine{
		staffSvc:  staff.NewService(document.NewFacilitatorRepository(store)),
		schoolSvc: school.NewService(document.NewSchoolRepository(store)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Fatal(err)
		}
		os.Exit(2)
	}
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
