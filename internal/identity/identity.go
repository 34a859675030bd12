// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity resolves the user a QR history record is attributed to.
//
// The client never authenticates anyone itself. The caller hands in either
// an explicit user id or a session token minted by the auth service, and
// the render-and-upload handler asks the injected [Resolver] on every upload.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=identity.go -destination=../mock/identity_mock.go -package=mock

var (
	// ErrNoIdentity is returned when no user id is available.
	ErrNoIdentity = errors.New("no user identity")
	// ErrInvalidToken is returned when a session token cannot be parsed or
	// carries no numeric subject.
	ErrInvalidToken = errors.New("invalid session token")
)

// Resolver returns the id of the current user.
type Resolver interface {
	UserID(ctx context.Context) (int64, error)
}

// Static always resolves to the same id.
type Static int64

// UserID implements [Resolver]. Non-positive ids resolve to ErrNoIdentity.
func (s Static) UserID(_ context.Context) (int64, error) {
	if s <= 0 {
		return 0, ErrNoIdentity
	}
	return int64(s), nil
}

// Token resolves the id from the subject claim of a session JWT.
//
// The signature is not verified here: the token was issued to this client
// by the auth service and the history server verifies it on upload.
type Token struct {
	raw string
}

// NewToken returns a resolver for the raw JWT (an optional "Bearer " prefix
// is stripped).
func NewToken(raw string) *Token {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	return &Token{raw: raw}
}

// Raw returns the token without the bearer prefix.
func (t *Token) Raw() string {
	return t.raw
}

// UserID implements [Resolver].
func (t *Token) UserID(_ context.Context) (int64, error) {
	if t.raw == "" {
		return 0, ErrNoIdentity
	}
	return ParseUserIDFromJWT(t.raw)
}

// ParseUserIDFromJWT extracts the numeric subject of tokenString without
// verifying its signature. Expired tokens are rejected.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if exp != nil && exp.Before(time.Now()) {
		return 0, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, sub)
	}
	return id, nil
}
