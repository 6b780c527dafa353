package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/core/school"
	"github.com/smartsyakila/backend/core/staff"
)

func Test_journalApi_academic(t *testing.T) {
	app, svcs := newApp(t)
	rina := createFacilitator(t, svcs.staff, "Rina", "rina@syakila.sch.id", staff.GenderFemale)
	budi := createFacilitator(t, svcs.staff, "Budi", "budi@syakila.sch.id", staff.GenderMale)

	var entry journal.AcademicEntry

	t.Run("create stamps the token holder as author", func(t *testing.T) {
		body := []byte(`{"subjectId":"subj1","topic":"Surat Al-Fatihah","studentActiveness":{"s1":4,"s2":5}}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/journals/academic", facilitatorToken(t, rina), body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		decodeBody(t, rec, &entry)
		assert.Equal(t, rina.ID, entry.FacilitatorID)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("admin cannot author a journal entry", func(t *testing.T) {
		body := []byte(`{"subjectId":"subj1","topic":"Topik","studentActiveness":{"s1":3}}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/journals/academic", adminToken(t), body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-author delete is refused and the entry survives", func(t *testing.T) {
		body := marshalObj(t, map[string]string{"id": entry.ID})
		req, rec := newAuthRequest(http.MethodDelete, "/v1/journals/academic", facilitatorToken(t, budi), body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"only the author may delete a journal entry"}`, rec.Body.String())

		got, err := svcs.journal.GetAcademic(context.Background(), entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, got.ID)
	})

	t.Run("personal note on a participant", func(t *testing.T) {
		body := marshalObj(t, map[string]string{"entryId": entry.ID, "studentId": "s1", "note": "perlu pendampingan"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/journals/academic/notes", facilitatorToken(t, budi), body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var noted journal.AcademicEntry
		decodeBody(t, rec, &noted)
		require.Len(t, noted.PersonalNotes, 1)
		// notes may come from any facilitator, not just the entry's author
		assert.Equal(t, budi.ID, noted.PersonalNotes[0].FacilitatorID)
	})

	t.Run("personal note on a non-participant is rejected", func(t *testing.T) {
		body := marshalObj(t, map[string]string{"entryId": entry.ID, "studentId": "s9", "note": "catatan"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/journals/academic/notes", facilitatorToken(t, rina), body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("author delete removes the entry", func(t *testing.T) {
		body := marshalObj(t, map[string]string{"id": entry.ID})
		req, rec := newAuthRequest(http.MethodDelete, "/v1/journals/academic", facilitatorToken(t, rina), body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		_, err := svcs.journal.GetAcademic(context.Background(), entry.ID)
		assert.Equal(t, journal.ErrNotFound, err)
	})
}

func Test_journalApi_stimulation(t *testing.T) {
	app, svcs := newApp(t)
	rina := createFacilitator(t, svcs.staff, "Rina", "rina@syakila.sch.id", staff.GenderFemale)
	budi := createFacilitator(t, svcs.staff, "Budi", "budi@syakila.sch.id", staff.GenderMale)

	body := []byte(`{"mode":"klasikal","students":["Ahmad","Aisyah"],"kegiatan":"Berkebun","lokasi":"Halaman sekolah"}`)
	req, rec := newAuthRequest(http.MethodPost, "/v1/journals/stimulation", facilitatorToken(t, rina), body)
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var entry journal.StimulationEntry
	decodeBody(t, rec, &entry)
	assert.Equal(t, "Rina", entry.FacilitatorName)

	t.Run("author-only delete", func(t *testing.T) {
		body := marshalObj(t, map[string]string{"id": entry.ID})
		req, rec := newAuthRequest(http.MethodDelete, "/v1/journals/stimulation", facilitatorToken(t, budi), body)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		req, rec = newAuthRequest(http.MethodDelete, "/v1/journals/stimulation", facilitatorToken(t, rina), body)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func Test_schoolApi_eligibleStudents(t *testing.T) {
	app, svcs := newApp(t)
	rina := createFacilitator(t, svcs.staff, "Rina", "rina@syakila.sch.id", staff.GenderFemale)
	budi := createFacilitator(t, svcs.staff, "Budi", "budi@syakila.sch.id", staff.GenderMale)

	ctx := context.Background()
	cls, err := svcs.school.CreateClass(ctx, school.NewClass{Name: "Kelas 1", Ordering: 1})
	require.NoError(t, err)
	for _, std := range []school.NewStudent{
		{FullName: "Ahmad", Nickname: "Ahmad", NISN: "0011223344", ClassID: cls.ID, Gender: staff.GenderMale},
		{FullName: "Aisyah", Nickname: "Ais", NISN: "0011223345", ClassID: cls.ID, Gender: staff.GenderFemale},
	} {
		_, err := svcs.school.CreateStudent(ctx, std)
		require.NoError(t, err)
	}

	t.Run("regular subject offers the full roster", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/journals/eligible-students?subject=Matematika", facilitatorToken(t, budi))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var students []school.Student
		decodeBody(t, rec, &students)
		assert.Len(t, students, 2)
	})

	t.Run("restricted subject filters by the facilitator's gender", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/journals/eligible-students?subject=Keputrian", facilitatorToken(t, rina))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var students []school.Student
		decodeBody(t, rec, &students)
		require.Len(t, students, 1)
		assert.Equal(t, "Aisyah", students[0].FullName)
	})
}
