package handler

import (
	"net/http"

	"rnote/internal/contract"
	"rnote/internal/domain/entity"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type FolderService interface {
	GetFolders(actor *entity.User, search, tagFilter, sortPolicy string) ([]*contract.FolderSummary, apierror.ErrorResponse)
	GetFolder(actor *entity.User, rawID string) (*contract.FolderResponse, apierror.ErrorResponse)
	CreateFolder(actor *entity.User, req *contract.FolderRequest) (*contract.FolderResponse, apierror.ErrorResponse)
	UpdateFolder(actor *entity.User, rawID string, req *contract.UpdateFolderRequest) (*contract.FolderResponse, apierror.ErrorResponse)
	DeleteFolder(actor *entity.User, rawID string) apierror.ErrorResponse
	RelatedFolders(actor *entity.User, rawID, search, tagFilter, sortPolicy string) ([]*contract.FolderSummary, apierror.ErrorResponse)
	LinkableFolders(actor *entity.User, rawID, search, tagFilter, sortPolicy string) ([]*contract.FolderSummary, apierror.ErrorResponse)
	LinkFolders(actor *entity.User, rawID string, req *contract.LinkRequest) apierror.ErrorResponse
	UnlinkFolders(actor *entity.User, rawID, rawTargetID string) apierror.ErrorResponse
}

type DefaultFolderRoute struct {
	FolderService FolderService
}

func NewFolderDefault(folderService FolderService) *DefaultFolderRoute {
	return &DefaultFolderRoute{FolderService: folderService}
}

func (f *DefaultFolderRoute) GetFolders(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	folders, apierr := f.FolderService.GetFolders(user,
		c.QueryParam("search"), c.QueryParam("tag"), c.QueryParam("sort"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"folders": folders}
	return c.JSON(http.StatusOK, &resp)
}

func (f *DefaultFolderRoute) GetFolder(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	folder, apierr := f.FolderService.GetFolder(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, folder)
}

func (f *DefaultFolderRoute) CreateFolder(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.FolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	folder, apierr := f.FolderService.CreateFolder(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, folder)
}

func (f *DefaultFolderRoute) UpdateFolder(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	folder, apierr := f.FolderService.UpdateFolder(user, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, folder)
}

func (f *DefaultFolderRoute) DeleteFolder(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := f.FolderService.DeleteFolder(user, c.Param("id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (f *DefaultFolderRoute) GetRelatedFolders(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	folders, apierr := f.FolderService.RelatedFolders(user, c.Param("id"),
		c.QueryParam("search"), c.QueryParam("tag"), c.QueryParam("sort"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"folders": folders}
	return c.JSON(http.StatusOK, &resp)
}

func (f *DefaultFolderRoute) GetLinkableFolders(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	folders, apierr := f.FolderService.LinkableFolders(user, c.Param("id"),
		c.QueryParam("search"), c.QueryParam("tag"), c.QueryParam("sort"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"folders": folders}
	return c.JSON(http.StatusOK, &resp)
}

func (f *DefaultFolderRoute) LinkFolders(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.LinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if apierr := f.FolderService.LinkFolders(user, c.Param("id"), &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusCreated)
}

func (f *DefaultFolderRoute) UnlinkFolders(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := f.FolderService.UnlinkFolders(user, c.Param("id"), c.Param("target")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
