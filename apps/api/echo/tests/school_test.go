package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/core/school"
)

func Test_schoolApi_classUpdate(t *testing.T) {
	app, svcs := newApp(t)
	admin := adminToken(t)

	cls, err := svcs.school.CreateClass(context.Background(), school.NewClass{Name: "Kelas 3", Ordering: 3})
	require.NoError(t, err)

	t.Run("name-only update keeps the ordering", func(t *testing.T) {
		body := marshalObj(t, map[string]string{"id": cls.ID, "name": "Kelas 3B"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes", admin, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var updated school.Class
		decodeBody(t, rec, &updated)
		assert.Equal(t, "Kelas 3B", updated.Name)
		assert.Equal(t, 3, updated.Ordering)
	})

	t.Run("ordering update sticks", func(t *testing.T) {
		body := []byte(`{"id":"` + cls.ID + `","ordering":1}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes", admin, body)
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var updated school.Class
		decodeBody(t, rec, &updated)
		assert.Equal(t, 1, updated.Ordering)
		assert.Equal(t, "Kelas 3B", updated.Name)
	})

	t.Run("missing id is a 400", func(t *testing.T) {
		body := []byte(`{"name":"Kelas 4"}`)
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes", admin, body)
		app.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
