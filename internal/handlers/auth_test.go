package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"drmind/internal/models"
	"drmind/internal/storage"
	"drmind/web"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}
	user.ID = "u-1"
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func newAuthHandler(t *testing.T, store *fakeUserStore) *AuthHandler {
	t.Helper()
	tmpl, err := ParseTemplates(web.Templates)
	require.NoError(t, err)
	return NewAuthHandler(store, "test-secret", zap.NewNop().Sugar(), tmpl)
}

func postForm(handler func(http.ResponseWriter, *http.Request), path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func registrationForm(email, password string) url.Values {
	form := url.Values{}
	form.Set("first_name", "Ada")
	form.Set("last_name", "Lovelace")
	form.Set("email", email)
	form.Set("password", password)
	form.Set("confirm_password", password)
	return form
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantMsg  string
	}{
		{"abc", "⚠️ Password must be at least 8 characters long!"},
		{"abcdefgh", "⚠️ Password must contain at least one uppercase letter!"},
		{"ABCDEFGH", "⚠️ Password must contain at least one lowercase letter!"},
		{"Abcdefgh", "⚠️ Password must contain at least one number!"},
		{"Abcdefg1", "⚠️ Password must contain at least one special character!"},
		{"Abcdef1!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantMsg, validatePassword(tt.password), "password %q", tt.password)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	store := &fakeUserStore{}
	h := newAuthHandler(t, store)

	rr := postForm(h.HandleRegister, "/register", registrationForm("ada@example.com", "abc"))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/register", rr.Result().Header.Get("Location"))
	assert.Empty(t, store.users, "no account may be created")
}

func TestRegisterRejectsMismatchedConfirmation(t *testing.T) {
	store := &fakeUserStore{}
	h := newAuthHandler(t, store)

	form := registrationForm("ada@example.com", "Abcdef1!")
	form.Set("confirm_password", "Different1!")
	rr := postForm(h.HandleRegister, "/register", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Empty(t, store.users)
}

func TestRegisterCreatesHashedUser(t *testing.T) {
	store := &fakeUserStore{}
	h := newAuthHandler(t, store)

	rr := postForm(h.HandleRegister, "/register", registrationForm("ada@example.com", "Abcdef1!"))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Result().Header.Get("Location"))

	require.Len(t, store.users, 1)
	user := store.users[0]
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "Abcdef1!", user.PasswordHash, "password must not be stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abcdef1!")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	h := newAuthHandler(t, store)

	postForm(h.HandleRegister, "/register", registrationForm("ada@example.com", "Abcdef1!"))
	rr := postForm(h.HandleRegister, "/register", registrationForm("ada@example.com", "Abcdef1!"))

	assert.Equal(t, "/register", rr.Result().Header.Get("Location"))
	assert.Len(t, store.users, 1, "the store must not be mutated")
}

func TestLoginSuccessSetsSession(t *testing.T) {
	store := &fakeUserStore{}
	h := newAuthHandler(t, store)
	postForm(h.HandleRegister, "/register", registrationForm("ada@example.com", "Abcdef1!"))

	form := url.Values{}
	form.Set("email", "ada@example.com")
	form.Set("password", "Abcdef1!")
	rr := postForm(h.HandleLogin, "/login", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Result().Header.Get("Location"))

	var session string
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookie {
			session = c.Value
		}
	}
	require.NotEmpty(t, session, "session cookie must be set")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	assert.Equal(t, "ada@example.com", sessionEmail(req, "test-secret"))
}

func TestLoginBadCredentials(t *testing.T) {
	store := &fakeUserStore{}
	h := newAuthHandler(t, store)
	postForm(h.HandleRegister, "/register", registrationForm("ada@example.com", "Abcdef1!"))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ada@example.com", "Wrong1!pass"},
		{"unknown email", "nobody@example.com", "Abcdef1!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("email", tt.email)
			form.Set("password", tt.password)
			rr := postForm(h.HandleLogin, "/login", form)

			assert.Equal(t, "/login", rr.Result().Header.Get("Location"))
			for _, c := range rr.Result().Cookies() {
				assert.NotEqual(t, sessionCookie, c.Name, "no session on failed login")
			}
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h := newAuthHandler(t, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rr := httptest.NewRecorder()
	h.HandleLogout(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)

	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie must be expired")
}
