package main

import (
	"context"
	"fmt"

	"github.com/smartsyakila/backend/core/school"
)

var (
	defaultClasses = []school.NewClass{
		{Name: "Kelas 1", Ordering: 1},
		{Name: "Kelas 2", Ordering: 2},
		{Name: "Kelas 3", Ordering: 3},
		{Name: "Kelas 4", Ordering: 4},
		{Name: "Kelas 5", Ordering: 5},
		{Name: "Kelas 6", Ordering: 6},
	}
	defaultSubjects = []school.NewSubject{
		{Name: "Tahfidz"},
		{Name: "Tahsin"},
		{Name: "Bahasa Arab"},
		{Name: "Bahasa Indonesia"},
		{Name: "Matematika"},
		{Name: "Keputrian"},
	}
)

// seedMaster fills the class and subject reference lists; collections
// that already hold data are left alone.
func (cli *commandLine) seedMaster() error {
	ctx := context.Background()

	classes, err := cli.schoolSvc.Classes(ctx)
	if err != nil {
		return err
	}
	if len(classes) == 0 {
		for _, nc := range defaultClasses {
			if _, err := cli.schoolSvc.CreateClass(ctx, nc); err != nil {
				return err
			}
		}
		fmt.Printf("seeded %d classes\n", len(defaultClasses))
	}

	subjects, err := cli.schoolSvc.Subjects(ctx)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		for _, ns := range defaultSubjects {
			if _, err := cli.schoolSvc.CreateSubject(ctx, ns); err != nil {
				return err
			}
		}
		fmt.Printf("seeded %d subjects\n", len(defaultSubjects))
	}
	return nil
}
