package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Register
	resp := app.doJSON(t, http.MethodPost, "/auth/register", map[string]string{
		"name": "A", "email": "a@x.com", "password": "p",
	}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same email again
	resp = app.doJSON(t, http.MethodPost, "/auth/register", map[string]string{
		"name": "B", "email": "a@x.com", "password": "q",
	}, "")
	var dup map[string]string
	decodeBody(t, resp, &dup)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", dup["message"])

	// Wrong password
	resp = app.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "a@x.com", "password": "wrong",
	}, "")
	var badLogin map[string]string
	decodeBody(t, resp, &badLogin)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", badLogin["message"])

	// Correct password
	resp = app.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "a@x.com", "password": "p",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login map[string]string
	decodeBody(t, resp, &login)
	token := login["token"]
	require.NotEmpty(t, token)

	// Authenticated identity lookup
	resp = app.doJSON(t, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Email string `json:"email"`
	}
	decodeBody(t, resp, &me)
	assert.Equal(t, "a@x.com", me.Email)

	// Logout requires the gate but keeps the token valid
	resp = app.doJSON(t, http.MethodPost, "/auth/logout", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = app.doJSON(t, http.MethodPost, "/auth/logout", nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = app.doJSON(t, http.MethodGet, "/auth/me", nil, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "logout does not revoke the token")
}

func TestChangePasswordFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	token := app.registerUser(t, "A", "a@x.com", "old")

	// Wrong old password
	resp := app.doJSON(t, http.MethodPut, "/auth/change-password", map[string]string{
		"oldPassword": "wrong", "newPassword": "new",
	}, token)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Incorrect old password", body["message"])

	// Correct old password
	resp = app.doJSON(t, http.MethodPut, "/auth/change-password", map[string]string{
		"oldPassword": "old", "newPassword": "new",
	}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Old secret no longer verifies, the new one does
	resp = app.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "a@x.com", "password": "old",
	}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = app.doJSON(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "a@x.com", "password": "new",
	}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPasswordReset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	app.registerUser(t, "A", "a@x.com", "p")

	resp := app.doJSON(t, http.MethodPost, "/auth/reset-password", map[string]string{"email": "a@x.com"}, "")
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Password reset link sent", body["message"])

	resp = app.doJSON(t, http.MethodPost, "/auth/reset-password", map[string]string{"email": "nobody@x.com"}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidTokensRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	signToken := func(secret string, sub string, exp time.Time) string {
		claims := jwt.MapClaims{
			"sub": sub,
			"exp": exp.Unix(),
			"iat": time.Now().Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return signed
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signToken(testJWTSecret, uuid.NewString(), time.Now().Add(-time.Minute))},
		{"wrong secret", signToken("other-secret", uuid.NewString(), time.Now().Add(time.Hour))},
		{"unknown subject", signToken(testJWTSecret, uuid.NewString(), time.Now().Add(time.Hour))},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.doJSON(t, http.MethodGet, "/auth/me", nil, tt.token)
			resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

// TestConcurrentRegistration checks that the unique constraint, not a
// check-then-insert, decides duplicate registrations.
func TestConcurrentRegistration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	const attempts = 8
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := app.doJSON(t, http.MethodPost, "/auth/register", map[string]string{
				"name": "A", "email": "race@x.com", "password": "p",
			}, "")
			resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	created := 0
	for _, s := range statuses {
		if s == http.StatusCreated {
			created++
		}
	}
	assert.Equal(t, 1, created, "exactly one registration must win")

	var count int
	require.NoError(t, app.DB.QueryRow("SELECT count(*) FROM users WHERE email = $1", "race@x.com").Scan(&count))
	assert.Equal(t, 1, count)
}
