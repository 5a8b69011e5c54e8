package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"drmind/internal/models"
	"drmind/internal/storage"
)

const passwordSymbols = `!@#$%^&*()_+-=[]{}|;:",.<>/?`

// UserStore is what the account pages need from storage.
// *storage.UserStorage satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	users     UserStore
	jwtSecret string
	log       *zap.SugaredLogger
	tmpl      *template.Template
}

func NewAuthHandler(users UserStore, jwtSecret string, log *zap.SugaredLogger, tmpl *template.Template) *AuthHandler {
	return &AuthHandler{
		users:     users,
		jwtSecret: jwtSecret,
		log:       log,
		tmpl:      tmpl,
	}
}

type authPage struct {
	Flash Flash
	Email string
}

func (ah *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleRegister"

	if r.Method == http.MethodGet {
		ah.render(w, "register.html", authPage{Flash: popFlash(w, r)})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "⚠️ Bad request, please try again.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	firstName := strings.TrimSpace(r.PostFormValue("first_name"))
	lastName := strings.TrimSpace(r.PostFormValue("last_name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirmPassword := r.PostFormValue("confirm_password")

	if msg := validateRegistration(firstName, lastName, email, password, confirmPassword); msg != "" {
		setFlash(w, "error", msg)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		ah.log.Errorw("password hash failed", "op", op, "error", err)
		setFlash(w, "error", "⚠️ Registration failed, please try again.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	user := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := ah.users.CreateUser(r.Context(), &user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			setFlash(w, "error", "⚠️ Email already registered! Please log in.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		ah.log.Errorw("user create failed", "op", op, "error", err)
		setFlash(w, "error", "⚠️ Registration failed, please try again.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Registration successful! You can now log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (ah *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleLogin"

	if r.Method == http.MethodGet {
		ah.render(w, "login.html", authPage{Flash: popFlash(w, r)})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "⚠️ Bad request, please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	user, err := ah.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			ah.log.Errorw("user lookup failed", "op", op, "error", err)
		}
		setFlash(w, "error", "Invalid credentials. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		setFlash(w, "error", "Invalid credentials. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := issueSession(ah.jwtSecret, user.Email)
	if err != nil {
		ah.log.Errorw("session issue failed", "op", op, "error", err)
		setFlash(w, "error", "⚠️ Login failed, please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setSessionCookie(w, token)
	setFlash(w, "success", "Login successful!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ah *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	setFlash(w, "success", "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (ah *AuthHandler) render(w http.ResponseWriter, name string, page authPage) {
	if err := ah.tmpl.ExecuteTemplate(w, name, page); err != nil {
		ah.log.Errorw("template render failed", "template", name, "error", err)
	}
}

// validateRegistration returns a user-visible message, or "" when the
// submission is acceptable.
func validateRegistration(firstName, lastName, email, password, confirmPassword string) string {
	if firstName == "" || lastName == "" || email == "" || password == "" || confirmPassword == "" {
		return "⚠️ All fields are required!"
	}
	if password != confirmPassword {
		return "⚠️ Passwords do not match!"
	}
	return validatePassword(password)
}

// validatePassword enforces the complexity rules: at least 8 chars, one
// uppercase, one lowercase, one digit, one symbol.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "⚠️ Password must be at least 8 characters long!"
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return "⚠️ Password must contain at least one uppercase letter!"
	case !hasLower:
		return "⚠️ Password must contain at least one lowercase letter!"
	case !hasDigit:
		return "⚠️ Password must contain at least one number!"
	case !hasSymbol:
		return "⚠️ Password must contain at least one special character!"
	}
	return ""
}
