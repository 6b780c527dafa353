package staff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/core"
	"github.com/smartsyakila/backend/core/staff"
	"github.com/smartsyakila/backend/storage/blob"
	"github.com/smartsyakila/backend/storage/document"
)

func setup(t *testing.T) *staff.Service {
	t.Helper()
	return staff.NewService(document.NewFacilitatorRepository(blob.NewMemStore()))
}

func createFacilitator(t *testing.T, svc *staff.Service, name, email string) staff.Facilitator {
	t.Helper()
	nf := staff.NewFacilitator{
		FullName: name,
		Nickname: name,
		Email:    email,
		Gender:   staff.GenderFemale,
	}
	require.NoError(t, nf.Validate(svc))
	fac, err := svc.Create(context.Background(), nf)
	require.NoError(t, err)
	return fac
}

func TestService_Create(t *testing.T) {
	svc := setup(t)

	fac := createFacilitator(t, svc, "Rina", "rina@syakila.sch.id")
	assert.NotEmpty(t, fac.ID)
	assert.False(t, fac.CreatedAt.IsZero())

	facs, err := svc.QueryAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, facs, 1)
}

func TestNewFacilitator_Validate_emailExists(t *testing.T) {
	svc := setup(t)
	createFacilitator(t, svc, "Rina", "rina@syakila.sch.id")

	nf := staff.NewFacilitator{
		FullName: "Rina Kedua",
		Nickname: "Rina2",
		Email:    "Rina@syakila.sch.id", // emails are case-insensitive
		Gender:   staff.GenderFemale,
	}
	err := nf.Validate(svc)
	assert.Equal(t, staff.ErrEmailExists, err)
}

func TestUpdateFacilitator_Validate(t *testing.T) {
	svc := setup(t)
	rina := createFacilitator(t, svc, "Rina", "rina@syakila.sch.id")
	createFacilitator(t, svc, "Sari", "sari@syakila.sch.id")

	// keeping your own email is fine
	uf := staff.UpdateFacilitator{ID: rina.ID, Email: rina.Email, Nickname: "Rin"}
	require.NoError(t, uf.Validate(rina, svc))

	// taking someone else's is not
	uf = staff.UpdateFacilitator{ID: rina.ID, Email: "sari@syakila.sch.id"}
	assert.Equal(t, staff.ErrEmailExists, uf.Validate(rina, svc))
}

func TestService_Update_mergesSetFields(t *testing.T) {
	svc := setup(t)
	rina := createFacilitator(t, svc, "Rina", "rina@syakila.sch.id")

	updated, err := svc.Update(context.Background(), staff.UpdateFacilitator{
		ID:       rina.ID,
		Nickname: "Rin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rin", updated.Nickname)
	assert.Equal(t, "Rina", updated.FullName)
	assert.Equal(t, "rina@syakila.sch.id", updated.Email)
	assert.True(t, updated.UpdatedAt.After(rina.UpdatedAt) || updated.UpdatedAt.Equal(rina.UpdatedAt))
}

func TestService_Delete_unsupported(t *testing.T) {
	svc := setup(t)
	rina := createFacilitator(t, svc, "Rina", "rina@syakila.sch.id")

	err := svc.Delete(context.Background(), rina.ID)
	assert.Equal(t, staff.ErrDeleteUnsupported, err)

	// nothing was removed
	facs, err := svc.QueryAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, facs, 1)
}

func TestService_Assignments(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()
	rina := createFacilitator(t, svc, "Rina", "rina@syakila.sch.id")

	// unknown facilitator keys are rejected
	err := svc.SaveAssignments(ctx, staff.Assignments{"nope": {"class1": {"subj1"}}})
	require.Error(t, err)
	_, ok := err.(*core.ValidationError)
	assert.True(t, ok)

	asg := staff.Assignments{rina.ID: {"class1": {"subj1", "subj2"}}}
	require.NoError(t, svc.SaveAssignments(ctx, asg))

	subjects, err := svc.AssignedSubjects(ctx, rina.ID, "class1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"subj1", "subj2"}, subjects)

	// unrecorded combinations come back as an empty set, not nil
	subjects, err = svc.AssignedSubjects(ctx, rina.ID, "class2")
	require.NoError(t, err)
	require.NotNil(t, subjects)
	assert.Empty(t, subjects)
}
