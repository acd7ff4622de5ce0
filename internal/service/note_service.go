package service

import (
	"rnote/internal/contract"
	"rnote/internal/domain/entity"
	"rnote/internal/domain/sqlite/repository"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindByUUID(uuid string) (*entity.Note, error)
	LoadNotes(userID, folderID int64) ([]*entity.Note, error)
	LoadAllRelatedNotes(userID, folderID int64) ([]*repository.RelatedNote, error)
	Save(note *entity.Note) error
	Delete(note *entity.Note) error
}

type DefaultNoteService struct {
	NoteRepo   NoteRepository
	FolderRepo FolderRepository
	Validate   *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, folderRepo FolderRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo:   noteRepo,
		FolderRepo: folderRepo,
		Validate:   validate,
	}
}

// GetNotes returns the folder's notes oldest-first. Clients wanting
// newest-first reverse the list themselves.
func (n *DefaultNoteService) GetNotes(actor *entity.User, folderRawID string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	folder, apierr := n.resolveFolder(actor, folderRawID)
	if apierr != nil {
		return nil, apierr
	}

	notes, err := n.NoteRepo.LoadNotes(actor.ID, folder.ID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

// GetAllRelatedNotes returns the notes of the folder plus those of
// every folder one hop away in the relation graph, oldest-first.
func (n *DefaultNoteService) GetAllRelatedNotes(actor *entity.User, folderRawID string) ([]*contract.RelatedNoteResponse, apierror.ErrorResponse) {
	folder, apierr := n.resolveFolder(actor, folderRawID)
	if apierr != nil {
		return nil, apierr
	}

	notes, err := n.NoteRepo.LoadAllRelatedNotes(actor.ID, folder.ID)
	if err != nil {
		log.Errorf("failed to fetch related notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.RelatedNoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = &contract.RelatedNoteResponse{
			NoteResponse: *toNoteResponse(&note.Note),
			FolderName:   note.FolderName,
			FolderTags:   toTagsArray(note.FolderTags),
		}
	}
	return resp, nil
}

func (n *DefaultNoteService) GetNote(actor *entity.User, folderRawID, noteRawID string) (*contract.NoteResponse, apierror.ErrorResponse) {
	_, note, apierr := n.resolveNote(actor, folderRawID, noteRawID)
	if apierr != nil {
		return nil, apierr
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) CreateNote(actor *entity.User, folderRawID string, req *contract.NoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	folder, apierr := n.resolveFolder(actor, folderRawID)
	if apierr != nil {
		return nil, apierr
	}

	note := &entity.Note{
		UUID:       uuid.NewString(),
		UserID:     actor.ID,
		FolderID:   folder.ID,
		FolderUUID: folder.UUID,
		Title:      req.Title,
		Body:       req.Body,
		URL:        req.URL,
		URLPreview: req.URLPreview,
		CreatedAt:  utils.NowUTC(),
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to save note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

// UpdateNote overwrites title, body, url and preview, mirroring the
// edit form which always submits the full set.
func (n *DefaultNoteService) UpdateNote(actor *entity.User, folderRawID, noteRawID string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	_, note, apierr := n.resolveNote(actor, folderRawID, noteRawID)
	if apierr != nil {
		return nil, apierr
	}

	note.Title = req.Title
	note.Body = req.Body
	note.URL = req.URL
	note.URLPreview = req.URLPreview

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) DeleteNote(actor *entity.User, folderRawID, noteRawID string) apierror.ErrorResponse {
	_, note, apierr := n.resolveNote(actor, folderRawID, noteRawID)
	if apierr != nil {
		return apierr
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note %d: %v", note.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (n *DefaultNoteService) resolveFolder(actor *entity.User, folderRawID string) (*entity.Folder, apierror.ErrorResponse) {
	canonical, ok := utils.NormalizeUUID(folderRawID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	folder, err := n.FolderRepo.FindByUUID(canonical)
	if err != nil {
		log.Errorf("failed to fetch folder: %v", err)
		return nil, apierror.InternalServerError
	}

	if folder == nil || folder.UserID != actor.ID {
		return nil, apierror.NotFoundError
	}
	return folder, nil
}

func (n *DefaultNoteService) resolveNote(actor *entity.User, folderRawID, noteRawID string) (*entity.Folder, *entity.Note, apierror.ErrorResponse) {
	folder, apierr := n.resolveFolder(actor, folderRawID)
	if apierr != nil {
		return nil, nil, apierr
	}

	canonical, ok := utils.NormalizeUUID(noteRawID)
	if !ok {
		return nil, nil, apierror.NotFoundError
	}

	note, err := n.NoteRepo.FindByUUID(canonical)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, nil, apierror.InternalServerError
	}

	if note == nil || note.UserID != actor.ID || note.FolderID != folder.ID {
		return nil, nil, apierror.NotFoundError
	}
	return folder, note, nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:         utils.StripUUID(note.UUID),
		FolderID:   utils.StripUUID(note.FolderUUID),
		Title:      note.Title,
		Body:       note.Body,
		URL:        note.URL,
		URLPreview: note.URLPreview,
		CreatedAt:  utils.FormatEpoch(note.CreatedAt),
	}
}
