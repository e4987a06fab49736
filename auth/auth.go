// Package auth gates the admin surface: a single configured admin account and PASETO v2 local
// session tokens.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
	"golang.org/x/crypto/bcrypt"

	"medivance-backend/models"
)

const (
	// SessionTTL is the lifetime of an issued admin token.
	SessionTTL = 24 * time.Hour
	footer     = "medivance-admin"
	keySize    = 32
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidKey         = errors.New("token key must be 32 bytes long")
)

// Claims are the verified contents of a session token.
type Claims struct {
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

type Authenticator struct {
	username     string
	passwordHash []byte
	key          []byte
	v2           *paseto.V2
	now          func() time.Time
}

// New builds an authenticator for one admin account. passwordHash is a bcrypt hash.
func New(username string, passwordHash, key []byte) (*Authenticator, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}
	if _, err := bcrypt.Cost(passwordHash); err != nil {
		return nil, fmt.Errorf("invalid admin password hash: %w", err)
	}
	return &Authenticator{
		username:     username,
		passwordHash: passwordHash,
		key:          key,
		v2:           paseto.NewV2(),
		now:          time.Now,
	}, nil
}

// HashPassword returns the bcrypt hash of password at the default cost.
func HashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (a *Authenticator) SetClock(now func() time.Time) {
	a.now = now
}

// Authenticate checks the credentials and issues a session token.
func (a *Authenticator) Authenticate(_ context.Context, req models.LoginRequest) (*models.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	now := a.now()
	exp := now.Add(SessionTTL)
	jsonToken := paseto.JSONToken{
		Jti:        uuid.NewString(),
		Subject:    a.username,
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: exp,
	}
	token, err := a.v2.Encrypt(a.key, jsonToken, footer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.Session{Username: a.username, Token: token, ExpiresAt: exp}, nil
}

// Verify decrypts token and checks its footer, subject and validity window.
func (a *Authenticator) Verify(token string) (*Claims, error) {
	var jsonToken paseto.JSONToken
	var gotFooter string
	if err := a.v2.Decrypt(token, a.key, &jsonToken, &gotFooter); err != nil {
		return nil, ErrInvalidToken
	}
	if gotFooter != footer {
		return nil, ErrInvalidToken
	}
	if err := jsonToken.Validate(paseto.ValidAt(a.now()), paseto.Subject(a.username)); err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{Username: jsonToken.Subject, TokenID: jsonToken.Jti, ExpiresAt: jsonToken.Expiration}, nil
}
