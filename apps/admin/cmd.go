package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	staffSvc  *staff.Service
	schoolSvc *school.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addfacilitator -fullname NAME -nickname NICK -email EMAIL -gender GENDER - register a facilitator")
	fmt.Println("  seedmaster - seed the class and subject reference lists")
	fmt.Println("  migrate - apply pending database migrations (postgres backend only)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addFacCmd := flag.NewFlagSet("addfacilitator", flag.ExitOnError)
	addFacFullName := addFacCmd.String("fullname", "", "The facilitator's full name.")
	addFacNickname := addFacCmd.String("nickname", "", "The facilitator's nickname.")
	addFacEmail := addFacCmd.String("email", "", "The facilitator's email; must be unique.")
	addFacGender := addFacCmd.String("gender", "", "Laki-laki or Perempuan.")

	switch args[1] {
	case "addfacilitator":
		if err := addFacCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addFacFullName == "" || *addFacNickname == "" || *addFacEmail == "" || *addFacGender == "" {
			addFacCmd.Usage()
			return errHelp
		}
		return cli.addFacilitator(*addFacFullName, *addFacNickname, *addFacEmail, *addFacGender)
	case "seedmaster":
		return cli.seedMaster()
	case "migrate":
		return cli.migrate()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) addFacilitator(fullName, nickname, email, gender string) error {
	nf := staff.NewFacilitator{
		FullName: fullName,
		Nickname: nickname,
		Email:    email,
		Gender:   gender,
	}
	if err := nf.Validate(cli.staffSvc); err != nil {
		return err
	}
	fac, err := cli.staffSvc.Create(context.Background(), nf)
	if err != nil {
		return err
	}
	fmt.Printf("facilitator %s created (id: %s)\n", fac.Nickname, fac.ID)
	return nil
}
