// Package auth holds the session state and the local sign-in flow.
//
// There is no credential store: the storefront is client-side only, so
// login and register perform format validation and then mint a user
// record on the spot. The session exists to gate cart and wishlist
// mutation, not to protect anything.
package auth

import (
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// User is the signed-in account for this session.
type User struct {
	ID    string
	Name  string
	Email string
}

const minPasswordLen = 6

// Matches the loose shape checked by the sign-in form: something, an
// @, something, a dot, something.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Session holds zero or one current user.
type Session struct {
	mu   sync.RWMutex
	user *User
}

// NewSession returns a signed-out session.
func NewSession() *Session {
	return &Session{}
}

// Login validates the credentials' format and signs in a user derived
// from the email. A FieldErrors is returned when validation fails; the
// session is left untouched in that case.
func (s *Session) Login(email, password string) (User, error) {
	errs := FieldErrors{}
	validateEmail(errs, email)
	validatePassword(errs, password)
	if len(errs) > 0 {
		return User{}, errs
	}

	user := User{
		ID:    uuid.NewString(),
		Name:  nameFromEmail(email),
		Email: strings.TrimSpace(email),
	}
	s.set(user)
	return user, nil
}

// Register validates the full sign-up form and signs in the new user.
func (s *Session) Register(name, email, password, confirm string) (User, error) {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs[FieldName] = "Name is required"
	}
	validateEmail(errs, email)
	validatePassword(errs, password)
	if _, ok := errs[FieldPassword]; !ok && password != confirm {
		errs[FieldConfirm] = "Passwords do not match"
	}
	if len(errs) > 0 {
		return User{}, errs
	}

	user := User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	s.set(user)
	return user, nil
}

// Logout clears the current user.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns the current user, if any.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// SignedIn reports whether a user is present.
func (s *Session) SignedIn() bool {
	_, ok := s.User()
	return ok
}

func (s *Session) set(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

func validateEmail(errs FieldErrors, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs[FieldEmail] = "Email is required"
		return
	}
	if !emailPattern.MatchString(email) {
		errs[FieldEmail] = "Email is invalid"
	}
}

func validatePassword(errs FieldErrors, password string) {
	if password == "" {
		errs[FieldPassword] = "Password is required"
		return
	}
	if len(password) < minPasswordLen {
		errs[FieldPassword] = "Password must be at least 6 characters"
	}
}

// nameFromEmail turns the local part of an address into a display name:
// separators become spaces and each word is capitalized.
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return local
	}
	return strings.Join(words, " ")
}
