package handler

import (
	"net/http"

	"rnote/internal/contract"
	"rnote/internal/domain/entity"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	GetNotes(actor *entity.User, folderRawID string) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetAllRelatedNotes(actor *entity.User, folderRawID string) ([]*contract.RelatedNoteResponse, apierror.ErrorResponse)
	GetNote(actor *entity.User, folderRawID, noteRawID string) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(actor *entity.User, folderRawID string, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(actor *entity.User, folderRawID, noteRawID string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(actor *entity.User, folderRawID, noteRawID string) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.GetNotes(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

// GetRelatedNotes lists the notes of the folder and of every folder
// related to it, one hop away.
func (n *DefaultNoteRoute) GetRelatedNotes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.GetAllRelatedNotes(user, c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	note, apierr := n.NoteService.GetNote(user, c.Param("id"), c.Param("noteId"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.NoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(user, c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.UpdateNote(user, c.Param("id"), c.Param("noteId"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	if apierr := n.NoteService.DeleteNote(user, c.Param("id"), c.Param("noteId")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
