package document

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/storage/blob"
)

type schoolRepository struct {
	store blob.Store
}

var _ school.Repository = (*schoolRepository)(nil)

func NewSchoolRepository(store blob.Store) school.Repository {
	return &schoolRepository{store: store}
}

func (repo *schoolRepository) loadClasses(ctx context.Context) ([]school.Class, error) {
	var classes []school.Class
	if err := repo.loadDoc(ctx, blob.KeyClasses, &classes); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []school.Class{}
	}
	return classes, nil
}

func (repo *schoolRepository) loadSubjects(ctx context.Context) ([]school.Subject, error) {
	var subjects []school.Subject
	if err := repo.loadDoc(ctx, blob.KeySubjects, &subjects); err != nil {
		return nil, err
	}
	if subjects == nil {
		subjects = []school.Subject{}
	}
	return subjects, nil
}

func (repo *schoolRepository) loadStudents(ctx context.Context) ([]school.Student, error) {
	var students []school.Student
	if err := repo.loadDoc(ctx, blob.KeyStudents, &students); err != nil {
		return nil, err
	}
	if students == nil {
		students = []school.Student{}
	}
	return students, nil
}

func (repo *schoolRepository) loadDoc(ctx context.Context, key string, dst interface{}) error {
	raw, err := repo.store.Get(ctx, key)
	if err == blob.ErrAbsent {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "decoding %s document", key)
	}
	return nil
}

func (repo *schoolRepository) saveDoc(ctx context.Context, key string, src interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "encoding %s document", key)
	}
	return repo.store.Put(ctx, key, raw)
}

// Classes

func (repo *schoolRepository) QueryAllClasses(ctx context.Context) ([]school.Class, error) {
	return repo.loadClasses(ctx)
}

func (repo *schoolRepository) GetClassByID(ctx context.Context, id string) (school.Class, error) {
	classes, err := repo.loadClasses(ctx)
	if err != nil {
		return school.Class{}, err
	}
	for _, cls := range classes {
		if cls.ID == id {
			return cls, nil
		}
	}
	return school.Class{}, school.ErrNotFound
}

func (repo *schoolRepository) CreateClass(ctx context.Context, cls school.Class) (school.Class, error) {
	classes, err := repo.loadClasses(ctx)
	if err != nil {
		return school.Class{}, err
	}
	cls.ID = uuid.New().String()
	classes = append(classes, cls)
	if err := repo.saveDoc(ctx, blob.KeyClasses, classes); err != nil {
		return school.Class{}, err
	}
	return cls, nil
}

func (repo *schoolRepository) UpdateClass(ctx context.Context, uc school.UpdateClass) (school.Class, error) {
	classes, err := repo.loadClasses(ctx)
	if err != nil {
		return school.Class{}, err
	}
	for i := range classes {
		if classes[i].ID != uc.ID {
			continue
		}
		// only save set fields
		if uc.Name != "" {
			classes[i].Name = uc.Name
		}
		if uc.Ordering != nil {
			classes[i].Ordering = *uc.Ordering
		}
		if err := repo.saveDoc(ctx, blob.KeyClasses, classes); err != nil {
			return school.Class{}, err
		}
		return classes[i], nil
	}
	return school.Class{}, school.ErrNotFound
}

func (repo *schoolRepository) DeleteClass(ctx context.Context, id string) error {
	classes, err := repo.loadClasses(ctx)
	if err != nil {
		return err
	}
	for i := range classes {
		if classes[i].ID == id {
			classes = append(classes[:i], classes[i+1:]...)
			return repo.saveDoc(ctx, blob.KeyClasses, classes)
		}
	}
	return school.ErrNotFound
}

// Subjects

func (repo *schoolRepository) QueryAllSubjects(ctx context.Context) ([]school.Subject, error) {
	return repo.loadSubjects(ctx)
}

func (repo *schoolRepository) GetSubjectByID(ctx context.Context, id string) (school.Subject, error) {
	subjects, err := repo.loadSubjects(ctx)
	if err != nil {
		return school.Subject{}, err
	}
	for _, sub := range subjects {
		if sub.ID == id {
			return sub, nil
		}
	}
	return school.Subject{}, school.ErrNotFound
}

func (repo *schoolRepository) CreateSubject(ctx context.Context, sub school.Subject) (school.Subject, error) {
	subjects, err := repo.loadSubjects(ctx)
	if err != nil {
		return school.Subject{}, err
	}
	sub.ID = uuid.New().String()
	subjects = append(subjects, sub)
	if err := repo.saveDoc(ctx, blob.KeySubjects, subjects); err != nil {
		return school.Subject{}, err
	}
	return sub, nil
}

func (repo *schoolRepository) UpdateSubject(ctx context.Context, sub school.Subject) (school.Subject, error) {
	subjects, err := repo.loadSubjects(ctx)
	if err != nil {
		return school.Subject{}, err
	}
	for i := range subjects {
		if subjects[i].ID != sub.ID {
			continue
		}
		if sub.Name != "" {
			subjects[i].Name = sub.Name
		}
		if err := repo.saveDoc(ctx, blob.KeySubjects, subjects); err != nil {
			return school.Subject{}, err
		}
		return subjects[i], nil
	}
	return school.Subject{}, school.ErrNotFound
}

func (repo *schoolRepository) DeleteSubject(ctx context.Context, id string) error {
	subjects, err := repo.loadSubjects(ctx)
	if err != nil {
		return err
	}
	for i := range subjects {
		if subjects[i].ID == id {
			subjects = append(subjects[:i], subjects[i+1:]...)
			return repo.saveDoc(ctx, blob.KeySubjects, subjects)
		}
	}
	return school.ErrNotFound
}

// Students

func (repo *schoolRepository) QueryAllStudents(ctx context.Context) ([]school.Student, error) {
	return repo.loadStudents(ctx)
}

func (repo *schoolRepository) GetStudentByID(ctx context.Context, id string) (school.Student, error) {
	students, err := repo.loadStudents(ctx)
	if err != nil {
		return school.Student{}, err
	}
	for _, std := range students {
		if std.ID == id {
			return std, nil
		}
	}
	return school.Student{}, school.ErrNotFound
}

func (repo *schoolRepository) CreateStudent(ctx context.Context, std school.Student) (school.Student, error) {
	students, err := repo.loadStudents(ctx)
	if err != nil {
		return school.Student{}, err
	}
	std.ID = uuid.New().String()
	students = append(students, std)
	if err := repo.saveDoc(ctx, blob.KeyStudents, students); err != nil {
		return school.Student{}, err
	}
	return std, nil
}

func (repo *schoolRepository) UpdateStudent(ctx context.Context, std school.Student) (school.Student, error) {
	students, err := repo.loadStudents(ctx)
	if err != nil {
		return school.Student{}, err
	}
	for i := range students {
		if students[i].ID != std.ID {
			continue
		}
		// only save set fields
		if std.FullName != "" {
			students[i].FullName = std.FullName
		}
		if std.Nickname != "" {
			students[i].Nickname = std.Nickname
		}
		if std.NISN != "" {
			students[i].NISN = std.NISN
		}
		if std.ClassID != "" {
			students[i].ClassID = std.ClassID
		}
		if std.Gender != "" {
			students[i].Gender = std.Gender
		}
		if err := repo.saveDoc(ctx, blob.KeyStudents, students); err != nil {
			return school.Student{}, err
		}
		return students[i], nil
	}
	return school.Student{}, school.ErrNotFound
}

func (repo *schoolRepository) DeleteStudent(ctx context.Context, id string) error {
	students, err := repo.loadStudents(ctx)
	if err != nil {
		return err
	}
	for i := range students {
		if students[i].ID == id {
			students = append(students[:i], students[i+1:]...)
			return repo.saveDoc(ctx, blob.KeyStudents, students)
		}
	}
	return school.ErrNotFound
}
