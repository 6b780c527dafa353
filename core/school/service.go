package school

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/smartsyakila/backend/core"
)

var ErrNotFound = errors.New("record not found")

type (
	Repository interface {
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id string) (Class, error)
		CreateClass(ctx context.Context, cls Class) (Class, error)
		// UpdateClass merges set fields into the stored record.
		UpdateClass(ctx context.Context, uc UpdateClass) (Class, error)
		DeleteClass(ctx context.Context, id string) error

		QueryAllSubjects(ctx context.Context) ([]Subject, error)
		GetSubjectByID(ctx context.Context, id string) (Subject, error)
		CreateSubject(ctx context.Context, sub Subject) (Subject, error)
		UpdateSubject(ctx context.Context, sub Subject) (Subject, error)
		DeleteSubject(ctx context.Context, id string) error

		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		CreateStudent(ctx context.Context, std Student) (Student, error)
		// UpdateStudent merges set fields into the stored record.
		UpdateStudent(ctx context.Context, std Student) (Student, error)
		DeleteStudent(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Classes returns the class reference list sorted by its ordering field.
func (svc *Service) Classes(ctx context.Context) ([]Class, error) {
	classes, err := svc.repo.QueryAllClasses(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].Ordering < classes[j].Ordering })
	return classes, nil
}

func (svc *Service) GetClass(ctx context.Context, id string) (Class, error) {
	return svc.repo.GetClassByID(ctx, id)
}

func (svc *Service) CreateClass(ctx context.Context, nc NewClass) (Class, error) {
	return svc.repo.CreateClass(ctx, Class{Name: nc.Name, Ordering: nc.Ordering})
}

func (svc *Service) UpdateClass(ctx context.Context, uc UpdateClass) (Class, error) {
	return svc.repo.UpdateClass(ctx, uc)
}

func (svc *Service) DeleteClass(ctx context.Context, id string) error {
	return svc.repo.DeleteClass(ctx, id)
}

func (svc *Service) Subjects(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

func (svc *Service) GetSubject(ctx context.Context, id string) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *Service) CreateSubject(ctx context.Context, ns NewSubject) (Subject, error) {
	return svc.repo.CreateSubject(ctx, Subject{Name: ns.Name})
}

func (svc *Service) UpdateSubject(ctx context.Context, sub Subject) (Subject, error) {
	return svc.repo.UpdateSubject(ctx, sub)
}

func (svc *Service) DeleteSubject(ctx context.Context, id string) error {
	return svc.repo.DeleteSubject(ctx, id)
}

func (svc *Service) Students(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetStudent(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

func (svc *Service) StudentsInClass(ctx context.Context, classID string) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	inClass := make([]Student, 0, len(students))
	for _, std := range students {
		if std.ClassID == classID {
			inClass = append(inClass, std)
		}
	}
	return inClass, nil
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (Student, error) {
	if _, err := svc.repo.GetClassByID(ctx, ns.ClassID); err != nil {
		if err == ErrNotFound {
			return Student{}, core.NewValidationError(err, core.FieldError{Field: "classId", Error: "unknown class"})
		}
		return Student{}, err
	}
	std := Student{
		FullName: ns.FullName,
		Nickname: ns.Nickname,
		NISN:     ns.NISN,
		ClassID:  ns.ClassID,
		Gender:   ns.Gender,
	}
	return svc.repo.CreateStudent(ctx, std)
}

func (svc *Service) UpdateStudent(ctx context.Context, us UpdateStudent) (Student, error) {
	if us.ClassID != "" {
		if _, err := svc.repo.GetClassByID(ctx, us.ClassID); err != nil {
			if err == ErrNotFound {
				return Student{}, core.NewValidationError(err, core.FieldError{Field: "classId", Error: "unknown class"})
			}
			return Student{}, err
		}
	}
	std := Student{
		ID:       us.ID,
		FullName: us.FullName,
		Nickname: us.Nickname,
		NISN:     us.NISN,
		ClassID:  us.ClassID,
		Gender:   us.Gender,
	}
	return svc.repo.UpdateStudent(ctx, std)
}

func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	return svc.repo.DeleteStudent(ctx, id)
}

// EligibleStudents returns the roster a facilitator may pick from when
// journaling the given subject. Sessions of the restricted subject
// (Keputrian by default) are split by gender, so only students sharing
// the facilitator's gender are offered; every other subject offers the
// full roster.
func (svc *Service) EligibleStudents(ctx context.Context, subjectName, facilitatorGender string) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}
	restricted := core.Conf.GetString("restrictedSubject")
	if !strings.EqualFold(subjectName, restricted) {
		return students, nil
	}
	eligible := make([]Student, 0, len(students))
	for _, std := range students {
		if std.Gender == facilitatorGender {
			eligible = append(eligible, std)
		}
	}
	return eligible, nil
}
