package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notes/internal/notes/domain"
	"github.com/aussiebroadwan/notes/internal/notes/store"
	"github.com/aussiebroadwan/notes/pkg/cryptox"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/slogx"
	"github.com/aussiebroadwan/notes/pkg/validx"
)

type AuthService struct {
	Store    store.Store
	Sessions *SessionService
}

// Session is an authenticated user and the token that proves it.
type Session struct {
	User  domain.User
	Token string
}

// Register creates an account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, fullName, username, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	if validx.IsBlank(fullName, username, password) {
		return Session{}, validationErr(MsgRequiredFieldsEmpty)
	}
	if validx.ExceedsLength(MaxFieldLength, fullName, username, password) {
		return Session{}, validationErr(MsgExceedLimit)
	}
	if !validx.IsUsernameValid(username) {
		return Session{}, validationErr(MsgInvalidUsername)
	}

	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return Session{}, conflictErr(MsgUserExists)
	case !errors.Is(err, store.ErrNotFound):
		return Session{}, internalErr("lookup user", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return Session{}, internalErr("hash password", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with another signup for the same name.
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, conflictErr(MsgUserExists)
		}
		return Session{}, internalErr("create user", err)
	}

	token, err := s.Sessions.Issue(user)
	if err != nil {
		return Session{}, internalErr("issue session", err)
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return Session{User: user, Token: token}, nil
}

// Login checks credentials and issues a fresh session.
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	l := slogx.FromContext(ctx)

	if validx.IsBlank(username, password) {
		return Session{}, validationErr(MsgRequiredFieldsEmpty)
	}
	if !validx.IsUsernameValid(username) {
		return Session{}, validationErr(MsgInvalidUsername)
	}
	if validx.ExceedsLength(MaxFieldLength, username, password) {
		return Session{}, validationErr(MsgExceedLimit)
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, notFoundErr(MsgUserNotFound)
		}
		return Session{}, internalErr("lookup user", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login failed", slog.String("user_id", user.ID))
			return Session{}, authErr(MsgWrongCredentials)
		}
		return Session{}, internalErr("verify password", err)
	}

	token, err := s.Sessions.Issue(user)
	if err != nil {
		return Session{}, internalErr("issue session", err)
	}

	return Session{User: user, Token: token}, nil
}
