package auth

import (
	"net/http"

	"hrm/backend/foundation/web"
	token "hrm/backend/internal/auth"
	"hrm/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	user User
	auth *token.Auth
}

func NewController(user User, auth *token.Auth) *Controller {
	return &Controller{user: user, auth: auth}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "Password")
	if err != nil {
		return c.RespondError(err)
	}

	login := data.Username
	if login == "" {
		login = data.Email
	}
	if login == "" {
		return c.RespondError(web.NewRequestError(errors.New("username or email is required"), http.StatusBadRequest))
	}

	detail, err := uc.user.GetByLogin(c.Ctx, login)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || detail.Role == nil {
		return c.RespondError(&web.Error{
			Err:    errors.New("user not found"),
			Status: http.StatusUnauthorized,
		})
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect login or password"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(detail.ID, *detail.Role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]interface{}{
			"token":         accessToken,
			"refresh_token": refreshToken,
			"user": map[string]interface{}{
				"id":            detail.ID,
				"username":      detail.Username,
				"full_name":     detail.FullName,
				"role":          detail.Role,
				"position":      detail.Position,
				"profile_image": detail.ProfileImage,
			},
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.ValidateRefreshToken(data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(claims.UserId, claims.Role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]interface{}{
			"token":         accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}
