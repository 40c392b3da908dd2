package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"Girder/internal/repo"
)

// fakeRepo implements repo.Repository in memory for handler tests.
type fakeRepo struct {
	users  map[string]fakeUser
	nextID int
}

type fakeUser struct {
	id   int
	hash string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]fakeUser{}, nextID: 1}
}

func (f *fakeRepo) CreateUser(_ context.Context, login, _, password string) (int, error) {
	id := f.nextID
	f.nextID++
	f.users[login] = fakeUser{id: id, hash: password}
	return id, nil
}

func (f *fakeRepo) GetByLogin(_ context.Context, login string) (int, string, error) {
	u, ok := f.users[login]
	if !ok {
		return 0, "", nil
	}
	return u.id, u.hash, nil
}

func (f *fakeRepo) SaveAnalysis(context.Context, int, repo.AnalysisRecord) (int, error) {
	return 0, nil
}

func (f *fakeRepo) ListAnalyses(context.Context, int) ([]repo.AnalysisRecord, error) {
	return nil, nil
}

func (f *fakeRepo) GetAnalysis(context.Context, int, int) (repo.AnalysisRecord, error) {
	return repo.AnalysisRecord{}, nil
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}

func TestRegisterThenLogin(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key"), Repo: newFakeRepo()}

	body, _ := json.Marshal(map[string]string{
		"login": "eng", "email": "eng@example.com", "password": "secret1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	env.RegisterHandler(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, rec.Result().Cookies(), "registration should open a session")

	body, _ = json.Marshal(map[string]string{"login": "eng", "password": "secret1"})
	req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	env.AuthHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	body, _ = json.Marshal(map[string]string{"login": "eng", "password": "nope"})
	req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	env.AuthHandler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key"), Repo: newFakeRepo()}

	body, _ := json.Marshal(map[string]string{"login": "ghost", "password": "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	env.AuthHandler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	env := &Env{JWTKey: []byte("test-key"), Repo: newFakeRepo()}

	var gotID int
	var gotLogin string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
		gotLogin, _ = Login(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// No cookie: 401.
	req := httptest.NewRequest(http.MethodGet, "/api/user/analyses", nil)
	rec := httptest.NewRecorder()
	env.AuthMiddleware(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A session minted by the register handler is accepted.
	body, _ := json.Marshal(map[string]string{
		"login": "eng", "email": "eng@example.com", "password": "secret1",
	})
	regReq := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	regRec := httptest.NewRecorder()
	env.RegisterHandler(regRec, regReq)
	cookies := regRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/api/user/analyses", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	env.AuthMiddleware(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gotID)
	assert.Equal(t, "eng", gotLogin)

	// Garbage token: 401.
	req = httptest.NewRequest(http.MethodGet, "/api/user/analyses", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "not-a-jwt"})
	rec = httptest.NewRecorder()
	env.AuthMiddleware(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := limiter.LimitMiddleware(next)

	// Burst of 2 allowed, the third immediate request is rejected.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different address has its own bucket.
	req = httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
