package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go-user-directory/config"
	v1 "go-user-directory/internal/delivery/http/v1"
	"go-user-directory/internal/domain"
	"go-user-directory/internal/repository/cellstore"
	"go-user-directory/internal/storage"
	"go-user-directory/internal/usecase"
	"go-user-directory/pkg/logger"
	"go-user-directory/pkg/validation"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo := cellstore.NewUserRepository(context.Background(), storage.NewCell(storage.NewMemoryBackend()), "users")

	validate := validator.New()
	validation.RegisterValidators(validate)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	directoryUC := usecase.NewDirectoryUsecase(repo, validate, node)
	return v1.NewRouter(v1.RouterDeps{
		DirectoryUC: directoryUC,
		EditorUC:    usecase.NewEditorUsecase(directoryUC, node),
		Config:      &config.Config{FrontendURL: "http://localhost:3000", MetricsEnabled: false},
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, env := do(t, r, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestCreateValidationOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/v1/users", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestDirectoryScenario(t *testing.T) {
	r := newTestRouter(t)

	// Empty store: first load produces the 3-user seed list.
	w, env := do(t, r, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []domain.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 3)
	seed2 := users[1]

	// Create appends a 4th user with a fresh id and pre-filled basic info.
	w, env = do(t, r, http.MethodPost, "/v1/users", map[string]string{
		"name": "X", "email": "x@x.com", "contact": "123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.User
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "X", created.BasicInfo.FirstName)
	assert.Equal(t, "x@x.com", created.BasicInfo.Email)
	assert.Equal(t, "123", created.BasicInfo.Phone)

	// Delete the 2nd seed user.
	w, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/v1/users/%d", seed2.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 3)
	for _, u := range users {
		assert.NotEqual(t, seed2.ID, u.ID)
	}

	// Deleting again is a no-op, not an error.
	w, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/v1/users/%d", seed2.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Edit work experience through a session: one domain, one sub-domain.
	w, env = do(t, r, http.MethodPost, fmt.Sprintf("/v1/users/%d/sessions/work-experience", created.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var session domain.EditSession
	require.NoError(t, json.Unmarshal(env.Data, &session))

	w, env = do(t, r, http.MethodPost, "/v1/sessions/"+session.ID+"/work-experience/domains", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.Len(t, session.Draft.WorkExperience, 1)

	draft := session.Draft
	draft.WorkExperience[0].Domain = "Technology"
	draft.WorkExperience[0].SubDomains[0].Name = "Backend"
	draft.WorkExperience[0].SubDomains[0].Experience = "3 years"
	w, _ = do(t, r, http.MethodPut, "/v1/sessions/"+session.ID+"/draft", draft)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodPost, "/v1/sessions/"+session.ID+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var saved domain.User
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	require.Len(t, saved.WorkExperience, 1)
	assert.Equal(t, "Backend", saved.WorkExperience[0].SubDomains[0].Name)

	// The session is gone after save.
	w, _ = do(t, r, http.MethodGet, "/v1/sessions/"+session.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// And the change is visible on a direct read.
	w, env = do(t, r, http.MethodGet, fmt.Sprintf("/v1/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched domain.User
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Technology", fetched.WorkExperience[0].Domain)
}

func TestGetUnknownUserIs404(t *testing.T) {
	r := newTestRouter(t)
	w, env := do(t, r, http.MethodGet, "/v1/users/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestExperienceOptions(t *testing.T) {
	r := newTestRouter(t)
	w, env := do(t, r, http.MethodGet, "/v1/meta/experience-options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var opts []string
	require.NoError(t, json.Unmarshal(env.Data, &opts))
	require.Len(t, opts, 11)
	assert.Equal(t, "1 year", opts[0])
	assert.Equal(t, "10+ years", opts[10])
}
