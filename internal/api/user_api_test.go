package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/backend/internal/models"
	"github.com/fridgechef/backend/internal/testhelpers"
)

func TestUsersListIsSelfScoped(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")
	alice := ts.Register(t, "alice", "alice@example.com")
	ts.Register(t, "bob", "bob@example.com")

	w := ts.Do(t, http.MethodGet, "/users", nil, alice)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	testhelpers.DecodeJSON(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)

	// The password hash never serializes.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUserGetForeignReadsAsMissing(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")
	alice := ts.Register(t, "alice", "alice@example.com")
	bob := ts.Register(t, "bob", "bob@example.com")

	w := ts.Do(t, http.MethodGet, "/users", nil, bob)
	require.Equal(t, http.StatusOK, w.Code)
	var users []models.User
	testhelpers.DecodeJSON(t, w, &users)
	require.Len(t, users, 1)
	bobID := users[0].ID

	w = ts.Do(t, http.MethodGet, "/users/"+bobID.String(), nil, alice)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.Do(t, http.MethodGet, "/users/"+bobID.String(), nil, bob)
	assert.Equal(t, http.StatusOK, w.Code)
}
