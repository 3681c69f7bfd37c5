// Package auth decides whether a login/password pair identifies a valid,
// role-bearing user, based on the flat credential file.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zielarnia/internal/logging"
)

// Failure taxonomy. The login prompt treats all of these as recoverable;
// none terminate the process.
var (
	ErrStoreUnavailable  = errors.New("credential store unavailable")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("incorrect password")
	ErrInvalidRole       = errors.New("invalid role in credential store")
	ErrCorruptCredential = errors.New("invalid password hash in credential store")
	ErrVerification      = errors.New("password verification failed")
)

// Identity is the authenticated login+role pair for the active session.
// It is immutable and never persisted; SessionID correlates log entries.
type Identity struct {
	Login     string
	Role      Role
	SessionID uuid.UUID
}

// Event carries the facts of a login attempt or success to observers.
type Event struct {
	Login     string
	Timestamp time.Time
	Success   bool
	Message   string
}

// Observer is a registered callback for login events. An observer failing —
// by error or panic — is logged and never propagated to the login caller or
// allowed to block other observers.
type Observer func(Event) error

// Authenticator orchestrates login attempts against the credential file.
type Authenticator struct {
	usersPath string
	log       *logging.Logger

	attemptObservers []Observer
	successObservers []Observer

	// verify compares a plaintext password against a stored bcrypt hash.
	// Injectable so tests can force verifier faults.
	verify  func(password, hash string) error
	nowFunc func() time.Time
}

// New creates an Authenticator reading credentials from usersPath.
func New(usersPath string, log *logging.Logger) *Authenticator {
	return &Authenticator{
		usersPath: usersPath,
		log:       log,
		verify: func(password, hash string) error {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		},
		nowFunc: time.Now,
	}
}

// OnLoginAttempt registers an observer fired before any validation happens.
func (a *Authenticator) OnLoginAttempt(fn Observer) {
	a.attemptObservers = append(a.attemptObservers, fn)
}

// OnLoginSucceeded registers an observer fired after a successful login.
func (a *Authenticator) OnLoginSucceeded(fn Observer) {
	a.successObservers = append(a.successObservers, fn)
}

// Login attempts to authenticate the given login/password pair.
//
// Scanning is first-match: the first line whose login matches
// case-insensitively decides the outcome, and later lines are never
// consulted — even when verification or role parsing fails on it. Duplicate
// logins in the file therefore resolve to the earliest line.
func (a *Authenticator) Login(login, password string) (*Identity, error) {
	a.notify(a.attemptObservers, Event{Login: login, Timestamp: a.nowFunc().UTC()})

	lines, err := readLines(a.usersPath)
	if err != nil {
		a.log.Error(fmt.Sprintf("login failed for %q: credential store unavailable at %q", login, a.usersPath), err)
		return nil, ErrStoreUnavailable
	}

	for _, line := range lines {
		if skippable(line) {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			a.log.Warn(fmt.Sprintf("skipping malformed credential line %q: %v", line, err))
			continue
		}
		if !strings.EqualFold(rec.Login, login) {
			continue
		}
		return a.check(login, password, rec)
	}

	a.log.Warn(fmt.Sprintf("login attempt failed for %q: user not found", login))
	return nil, ErrUserNotFound
}

// check verifies the password and role of the single matching record.
func (a *Authenticator) check(login, password string, rec Record) (*Identity, error) {
	if err := a.verify(password, rec.PasswordHash); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			a.log.Warn(fmt.Sprintf("login attempt failed for %q: incorrect password", login))
			return nil, ErrInvalidPassword
		case malformedHash(err):
			a.log.Error(fmt.Sprintf("login failed for %q: invalid hash format in credential store", login), err)
			return nil, ErrCorruptCredential
		default:
			a.log.Error(fmt.Sprintf("login failed for %q: unexpected error during password verification", login), err)
			return nil, ErrVerification
		}
	}

	role, err := ParseRole(rec.RoleName)
	if err != nil {
		a.log.Warn(fmt.Sprintf("login attempt failed for %q: invalid role %q in credential store", login, rec.RoleName))
		return nil, ErrInvalidRole
	}

	id := &Identity{Login: rec.Login, Role: role, SessionID: uuid.New()}
	a.notify(a.successObservers, Event{
		Login:     login,
		Timestamp: a.nowFunc().UTC(),
		Success:   true,
		Message:   fmt.Sprintf("logged in as %s", role),
	})
	a.log.Info(fmt.Sprintf("user %q logged in as %s (session %s)", login, role, id.SessionID))
	return id, nil
}

// notify fans an event out to every observer. Each observer is invoked even
// when earlier ones fail; failures are only logged.
func (a *Authenticator) notify(observers []Observer, e Event) {
	for _, fn := range observers {
		if err := invoke(fn, e); err != nil {
			a.log.Error(fmt.Sprintf("login observer failed for %q", e.Login), err)
		}
	}
}

func invoke(fn Observer, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panic: %v", r)
		}
	}()
	return fn(e)
}

// malformedHash reports whether a bcrypt verification error means the stored
// hash itself is unusable, as opposed to a transient verifier fault.
func malformedHash(err error) bool {
	var (
		prefixErr  bcrypt.InvalidHashPrefixError
		versionErr bcrypt.HashVersionTooNewError
		costErr    bcrypt.InvalidCostError
	)
	return errors.Is(err, bcrypt.ErrHashTooShort) ||
		errors.As(err, &prefixErr) ||
		errors.As(err, &versionErr) ||
		errors.As(err, &costErr)
}
