package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pagepal-app/pagepal/auth-service/internal/adapters/transport/http/dto"
	"github.com/pagepal-app/pagepal/auth-service/internal/app/auth/hash"
	"github.com/pagepal-app/pagepal/auth-service/internal/app/auth/token"
	customErrors "github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/errors"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/model"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/repo"
)

const bearerPrefix = "Bearer "

type Service interface {
	Signup(context.Context, dto.SignupDTO) (int64, error)
	Login(context.Context, dto.LoginDTO) (model.IssuedToken, error)
	Authenticate(ctx context.Context, authorization string) (int64, error)
	CurrentUser(ctx context.Context, authorization string) (model.User, error)
	Logout(ctx context.Context, authorization string) error
}

type authService struct {
	userRepo repo.UserRepo
	tokens   *token.Manager
	hasher   *hash.Hasher
	v        *validator.Validate

	// dummyHash is verified against on the missing-user login path so
	// that path costs roughly the same as a real mismatch.
	dummyHash string
}

func New(ur repo.UserRepo, tm *token.Manager, h *hash.Hasher, v *validator.Validate) Service {
	dummy, _ := h.Hash("pagepal-dummy-credential")
	return &authService{
		userRepo:  ur,
		tokens:    tm,
		hasher:    h,
		v:         v,
		dummyHash: dummy,
	}
}

func (a *authService) Signup(ctx context.Context, in dto.SignupDTO) (int64, error) {
	if err := a.v.Struct(in); err != nil {
		return 0, customErrors.NewInvalidArgument(err.Error())
	}

	passwordHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return 0, err
	}

	id, err := a.userRepo.CreateUser(ctx, model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, customErrors.ErrDuplicateEmail) {
			return 0, customErrors.ErrDuplicateEmail
		}
		return 0, err
	}
	return id, nil
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.IssuedToken, error) {
	if err := a.v.Struct(in); err != nil {
		return model.IssuedToken{}, customErrors.NewInvalidArgument(err.Error())
	}

	user, err := a.userRepo.GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// burn a verification anyway; missing user and wrong password
		// must be indistinguishable to the caller
		_, _ = a.hasher.Verify(in.Password, a.dummyHash)
		return model.IssuedToken{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.IssuedToken{}, err
	}

	ok, err := a.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return model.IssuedToken{}, err
	}
	if !ok {
		return model.IssuedToken{}, customErrors.ErrInvalidCredentials
	}

	tok, err := a.tokens.Issue(ctx, user.ID)
	if err != nil {
		return model.IssuedToken{}, err
	}

	return model.IssuedToken{
		Token:  tok,
		UserID: user.ID,
		TTL:    a.tokens.TTL(),
	}, nil
}

func (a *authService) Authenticate(ctx context.Context, authorization string) (int64, error) {
	tok, err := bearerToken(authorization)
	if err != nil {
		return 0, err
	}
	return a.tokens.Validate(ctx, tok)
}

func (a *authService) CurrentUser(ctx context.Context, authorization string) (model.User, error) {
	uid, err := a.Authenticate(ctx, authorization)
	if err != nil {
		return model.User{}, err
	}
	user, err := a.userRepo.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return model.User{}, customErrors.ErrTokenNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context, authorization string) error {
	tok, err := bearerToken(authorization)
	if err != nil {
		return err
	}
	return a.tokens.Revoke(ctx, tok)
}

// bearerToken pulls the opaque token out of an "Authorization: Bearer <tok>"
// value. The store is never consulted for a malformed header.
func bearerToken(authorization string) (string, error) {
	rest, ok := strings.CutPrefix(authorization, bearerPrefix)
	if !ok || rest == "" {
		return "", customErrors.ErrMalformedAuthHeader
	}
	return rest, nil
}
