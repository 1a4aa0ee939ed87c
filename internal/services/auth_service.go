package services

import (
	"context"
	"errors"

	"orgchart/internal/contract"
	"orgchart/internal/domain"
	"orgchart/internal/domain/models"
	"orgchart/internal/repositories"
	"orgchart/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authModule = "auth"

var (
	errUsernameTaken = domain.ConflictError{Resource: "user", Msg: "username is taken"}
	errUserNotFound  = domain.NotFoundError{Resource: "user"}
	errBadPassword   = domain.UnauthorizedError{Msg: "username and password do not match"}
)

type AuthService struct {
	Users  repositories.UserRepository
	Tokens TokenIssuer
	Logger *zap.Logger
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
}

func (s AuthService) cost() int {
	if s.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return s.Cost
}

func (s AuthService) Register(ctx context.Context, in models.Credentials) contract.Result[models.UserWithToken] {
	in.Username = utils.TrimOrEmpty(in.Username)
	if err := contract.RequireFields(in.Fields(), models.UserRequired); err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "register", err)
	}

	taken, err := s.Users.UsernameExists(ctx, in.Username)
	if err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "register", err)
	}
	if taken {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "register", errUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "register", domain.InternalError{Msg: "hash password", Err: err})
	}

	u, err := s.Users.Create(ctx, models.User{Username: in.Username, Password: string(hash)})
	if err != nil {
		// lost a race with a concurrent register of the same name
		if domain.IsConflict(err) {
			err = errUsernameTaken
		}
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "register", err)
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "register", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), authModule, "register", "user registered", zap.Int64("user_id", u.ID))
	return contract.OK(models.UserWithToken{ID: u.ID, Username: u.Username, Token: token})
}

func (s AuthService) Login(ctx context.Context, in models.Credentials) contract.Result[models.UserWithToken] {
	in.Username = utils.TrimOrEmpty(in.Username)
	if err := contract.RequireFields(in.Fields(), models.UserRequired); err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "login", err)
	}

	u, found, err := s.Users.GetByUsername(ctx, in.Username)
	if err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "login", err)
	}
	if !found {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "login", errUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			err = domain.InternalError{Msg: "compare password", Err: err}
		} else {
			err = errBadPassword
		}
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "login", err)
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return fail[models.UserWithToken](ctx, s.Logger, authModule, "login", err)
	}
	utils.LogEvent(s.Logger, utils.RequestIDFrom(ctx), authModule, "login", "user logged in", zap.Int64("user_id", u.ID))
	return contract.OK(models.UserWithToken{ID: u.ID, Username: u.Username, Token: token})
}
