package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	fakeUserGetter
	created       []*models.User
	statusUpdates map[string]models.UserStatus

	// raceWinner, when set, lands in the store between the handler's
	// lookup and its insert, making the insert collide on email.
	raceWinner *models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	byEmail := make(map[string]*models.User)
	for _, u := range users {
		byEmail[u.Email] = u
	}
	return &fakeUserStore{
		fakeUserGetter: fakeUserGetter{users: byEmail},
		statusUpdates:  map[string]models.UserStatus{},
	}
}

func (f *fakeUserStore) ListUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) CreateUser(user *models.User) error {
	if f.raceWinner != nil {
		f.users[f.raceWinner.Email] = f.raceWinner
		f.raceWinner = nil
		return gorm.ErrDuplicatedKey
	}
	f.created = append(f.created, user)
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) UpdateUserStatus(email string, status models.UserStatus) (int64, error) {
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	f.statusUpdates[email] = status
	f.users[email].Status = status
	return 1, nil
}

func (f *fakeUserStore) UpdateUserByEmail(email string, updates map[string]interface{}) (int64, error) {
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeUserStore) DeleteUserByEmail(email string) (int64, error) {
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	delete(f.users, email)
	return 1, nil
}

func userRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(store, testSecret)
	r.POST("/jwt", h.IssueToken)
	r.PUT("/user", h.UpsertUser)
	r.GET("/user/:email", h.GetUser)
	r.PATCH("/users/update/:email", h.UpdateUser)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIssueToken(t *testing.T) {
	r := userRouter(newFakeUserStore())

	w := doJSON(r, http.MethodPost, "/jwt", `{"email":"buyer@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "token")

	w = doJSON(r, http.MethodPost, "/jwt", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpsertUserNewEmailInserts(t *testing.T) {
	store := newFakeUserStore()
	r := userRouter(store)

	w := doJSON(r, http.MethodPut, "/user", `{"email":"new@example.com","name":"New User"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	require.Equal(t, "new@example.com", store.created[0].Email)
}

func TestUpsertUserRequestedUpdatesStatusOnly(t *testing.T) {
	store := newFakeUserStore(&models.User{Email: "old@example.com", Name: "Old"})
	r := userRouter(store)

	w := doJSON(r, http.MethodPut, "/user", `{"email":"old@example.com","status":"Requested"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.UserStatusRequested, store.statusUpdates["old@example.com"])
	require.Empty(t, store.created)
}

func TestUpsertUserExistingReturnsRecordUnchanged(t *testing.T) {
	store := newFakeUserStore(&models.User{Email: "old@example.com", Name: "Old"})
	r := userRouter(store)

	w := doJSON(r, http.MethodPut, "/user", `{"email":"old@example.com","name":"Changed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Old"`)
	require.Empty(t, store.created)
	require.Empty(t, store.statusUpdates)
}

func TestUpsertUserFirstSignInRaceReturnsStoredRow(t *testing.T) {
	store := newFakeUserStore()
	store.raceWinner = &models.User{Email: "new@example.com", Name: "First Tab"}
	r := userRouter(store)

	w := doJSON(r, http.MethodPut, "/user", `{"email":"new@example.com","name":"Second Tab"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"First Tab"`)
	require.Empty(t, store.created)
}

func TestGetUserMissIs404(t *testing.T) {
	r := userRouter(newFakeUserStore())

	w := doJSON(r, http.MethodGet, "/user/ghost@example.com", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	store := newFakeUserStore(&models.User{Email: "u@example.com"})
	r := userRouter(store)

	w := doJSON(r, http.MethodPatch, "/users/update/u@example.com", `{"role":"Overlord"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/users/update/u@example.com", `{"role":"Agent"}`)
	require.Equal(t, http.StatusOK, w.Code)
}
