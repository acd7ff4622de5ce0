package handler

import (
	"net/http"

	"rnote/internal/domain/entity"
	"rnote/internal/service"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetMe(actor *entity.User) *service.UserResponse
	CheckEmail(req *service.UserStatusRequest) (*service.EmailStatus, apierror.ErrorResponse)
	CreateUser(req *service.CreateUserRequest) (*service.UserResponse, apierror.ErrorResponse)
	Login(req *service.UserLoginRequest) (*service.UserLoginResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) CheckEmail(c echo.Context) error {
	var req service.UserStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	status, apierr := u.UserService.CheckEmail(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"status": status}
	return c.JSON(http.StatusOK, &resp)
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req service.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UserService.CreateUser(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, user)
}

func (u *DefaultUserRoute) CreateLogin(c echo.Context) error {
	var req service.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetMe returns the authenticated account, resolved by the auth
// middleware from the token subject.
func (u *DefaultUserRoute) GetMe(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}
	return c.JSON(http.StatusOK, u.UserService.GetMe(user))
}
