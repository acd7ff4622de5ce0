package service

import (
	"strings"

	"rnote/internal/contract"
	"rnote/internal/domain/entity"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type FolderRepository interface {
	FindByUUID(uuid string) (*entity.Folder, error)
	FindAll(userID int64, nameQuery string) ([]*entity.Folder, error)
	Attributes(folderID int64) ([]*entity.Attribute, error)
	Create(folder *entity.Folder, attrs [entity.AttributeCount]entity.Attribute, parentID *int64) error
	Update(userID, folderID int64, name, tags string, attrs [entity.AttributeCount]entity.Attribute) error
	Delete(userID, folderID int64) error
	HasName(userID int64, name string) (bool, error)
}

type RelationRepository interface {
	Link(fromFolderID, toFolderID int64) error
	Unlink(fromFolderID, toFolderID int64) error
	Related(userID, folderID int64) ([]*entity.Folder, error)
	Linkable(userID, folderID int64, nameQuery string) ([]*entity.Folder, error)
	RelatedMatching(userID, folderID int64, nameQuery string) ([]*entity.Folder, error)
}

type DefaultFolderService struct {
	FolderRepo   FolderRepository
	RelationRepo RelationRepository
	Validate     *validator.Validate
}

func NewFolderService(folderRepo FolderRepository, relationRepo RelationRepository, validate *validator.Validate) *DefaultFolderService {
	return &DefaultFolderService{
		FolderRepo:   folderRepo,
		RelationRepo: relationRepo,
		Validate:     validate,
	}
}

// GetFolders lists the actor's folders: name search at the query
// layer, then tag filter and sort policy applied in memory.
func (f *DefaultFolderService) GetFolders(actor *entity.User, search, tagFilter, sortPolicy string) ([]*contract.FolderSummary, apierror.ErrorResponse) {
	folders, err := f.FolderRepo.FindAll(actor.ID, search)
	if err != nil {
		log.Errorf("failed to fetch folders: %v", err)
		return nil, apierror.InternalServerError
	}

	folders = SortFolders(sortPolicy, FilterFoldersByTag(tagFilter, folders))
	return toFolderSummaries(folders), nil
}

func (f *DefaultFolderService) GetFolder(actor *entity.User, rawID string) (*contract.FolderResponse, apierror.ErrorResponse) {
	folder, apierr := f.fetchOwnedFolder(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	attrs, err := f.FolderRepo.Attributes(folder.ID)
	if err != nil {
		log.Errorf("failed to fetch folder attributes: %v", err)
		return nil, apierror.InternalServerError
	}
	return toFolderResponse(folder, attrs), nil
}

// CreateFolder creates the folder together with its three attribute
// slots and its relation-graph membership as one unit. When the
// request names a parent, the new folder starts out related to it.
func (f *DefaultFolderService) CreateFolder(actor *entity.User, req *contract.FolderRequest) (*contract.FolderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := f.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := f.checkNameFree(actor, req.Name); apierr != nil {
		return nil, apierr
	}

	var parentID *int64
	if req.ParentID != "" {
		parent, apierr := f.fetchOwnedFolder(actor, req.ParentID)
		if apierr != nil {
			return nil, apierr
		}
		parentID = &parent.ID
	}

	folder := &entity.Folder{
		UUID:      uuid.NewString(),
		UserID:    actor.ID,
		Name:      req.Name,
		Tags:      joinTags(req.Tags),
		CreatedAt: utils.NowUTC(),
	}

	attrs := padAttributes(req.Attributes)
	if err := f.FolderRepo.Create(folder, attrs, parentID); err != nil {
		if isUniqueViolation(err) {
			return nil, apierror.ConflictError
		}
		log.Errorf("failed to create folder: %v", err)
		return nil, apierror.InternalServerError
	}

	return toFolderResponse(folder, attrPointers(attrs)), nil
}

// UpdateFolder overwrites name/tags and rewrites the attribute triple
// by position.
func (f *DefaultFolderService) UpdateFolder(actor *entity.User, rawID string, req *contract.UpdateFolderRequest) (*contract.FolderResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := f.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	folder, apierr := f.fetchOwnedFolder(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	// A rename may keep the same name with different casing.
	if !strings.EqualFold(folder.Name, req.Name) {
		if apierr = f.checkNameFree(actor, req.Name); apierr != nil {
			return nil, apierr
		}
	}

	attrs := padAttributes(req.Attributes)
	tags := joinTags(req.Tags)
	if err := f.FolderRepo.Update(actor.ID, folder.ID, req.Name, tags, attrs); err != nil {
		if isUniqueViolation(err) {
			return nil, apierror.ConflictError
		}
		log.Errorf("failed to update folder: %v", err)
		return nil, apierror.InternalServerError
	}

	folder.Name = req.Name
	folder.Tags = tags
	return toFolderResponse(folder, attrPointers(attrs)), nil
}

// DeleteFolder removes the folder and cascades to its attributes,
// notes and every relation edge touching it.
func (f *DefaultFolderService) DeleteFolder(actor *entity.User, rawID string) apierror.ErrorResponse {
	folder, apierr := f.fetchOwnedFolder(actor, rawID)
	if apierr != nil {
		return apierr
	}

	if err := f.FolderRepo.Delete(actor.ID, folder.ID); err != nil {
		log.Errorf("failed to delete folder %d: %v", folder.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

// RelatedFolders lists the folders linked to the given one. With an
// empty search it is the plain symmetric-union read; with a search it
// narrows by name, which backs the unlink picker.
func (f *DefaultFolderService) RelatedFolders(actor *entity.User, rawID, search, tagFilter, sortPolicy string) ([]*contract.FolderSummary, apierror.ErrorResponse) {
	folder, apierr := f.fetchOwnedFolder(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	var related []*entity.Folder
	var err error
	if search == "" {
		related, err = f.RelationRepo.Related(actor.ID, folder.ID)
	} else {
		related, err = f.RelationRepo.RelatedMatching(actor.ID, folder.ID, search)
	}
	if err != nil {
		log.Errorf("failed to fetch related folders: %v", err)
		return nil, apierror.InternalServerError
	}

	related = SortFolders(sortPolicy, FilterFoldersByTag(tagFilter, related))
	return toFolderSummaries(related), nil
}

// LinkableFolders lists the actor's folders not yet related to the
// given one (and not the folder itself), for the link picker.
func (f *DefaultFolderService) LinkableFolders(actor *entity.User, rawID, search, tagFilter, sortPolicy string) ([]*contract.FolderSummary, apierror.ErrorResponse) {
	folder, apierr := f.fetchOwnedFolder(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	linkable, err := f.RelationRepo.Linkable(actor.ID, folder.ID, search)
	if err != nil {
		log.Errorf("failed to fetch linkable folders: %v", err)
		return nil, apierror.InternalServerError
	}

	linkable = SortFolders(sortPolicy, FilterFoldersByTag(tagFilter, linkable))
	return toFolderSummaries(linkable), nil
}

// LinkFolders relates two of the actor's folders. The store itself has
// no self-link guard, so it lives here.
func (f *DefaultFolderService) LinkFolders(actor *entity.User, rawID string, req *contract.LinkRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := f.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	folder, target, apierr := f.fetchLinkPair(actor, rawID, req.Target)
	if apierr != nil {
		return apierr
	}

	related, err := f.RelationRepo.Related(actor.ID, folder.ID)
	if err != nil {
		log.Errorf("failed to fetch related folders: %v", err)
		return apierror.InternalServerError
	}
	for _, rel := range related {
		if rel.ID == target.ID {
			return apierror.AlreadyLinkedError
		}
	}

	if err := f.RelationRepo.Link(folder.ID, target.ID); err != nil {
		log.Errorf("failed to link folders %d and %d: %v", folder.ID, target.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

// UnlinkFolders removes the relation between two folders, whichever
// direction it was stored in.
func (f *DefaultFolderService) UnlinkFolders(actor *entity.User, rawID, rawTargetID string) apierror.ErrorResponse {
	folder, target, apierr := f.fetchLinkPair(actor, rawID, rawTargetID)
	if apierr != nil {
		return apierr
	}

	related, err := f.RelationRepo.Related(actor.ID, folder.ID)
	if err != nil {
		log.Errorf("failed to fetch related folders: %v", err)
		return apierror.InternalServerError
	}

	found := false
	for _, rel := range related {
		if rel.ID == target.ID {
			found = true
			break
		}
	}
	if !found {
		return apierror.NotRelatedError
	}

	if err := f.RelationRepo.Unlink(folder.ID, target.ID); err != nil {
		log.Errorf("failed to unlink folders %d and %d: %v", folder.ID, target.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (f *DefaultFolderService) fetchLinkPair(actor *entity.User, rawID, rawTargetID string) (*entity.Folder, *entity.Folder, apierror.ErrorResponse) {
	folder, apierr := f.fetchOwnedFolder(actor, rawID)
	if apierr != nil {
		return nil, nil, apierr
	}

	target, apierr := f.fetchOwnedFolder(actor, rawTargetID)
	if apierr != nil {
		return nil, nil, apierr
	}

	if folder.ID == target.ID {
		return nil, nil, apierror.SelfLinkError
	}
	return folder, target, nil
}

// fetchOwnedFolder resolves a public identifier (canonical or display
// form) to the actor's folder. Unknown ids and folders of other users
// both come back as not-found.
func (f *DefaultFolderService) fetchOwnedFolder(actor *entity.User, rawID string) (*entity.Folder, apierror.ErrorResponse) {
	canonical, ok := utils.NormalizeUUID(rawID)
	if !ok {
		return nil, apierror.NotFoundError
	}

	folder, err := f.FolderRepo.FindByUUID(canonical)
	if err != nil {
		log.Errorf("failed to fetch folder: %v", err)
		return nil, apierror.InternalServerError
	}

	if folder == nil || folder.UserID != actor.ID {
		return nil, apierror.NotFoundError
	}
	return folder, nil
}

func (f *DefaultFolderService) checkNameFree(actor *entity.User, name string) apierror.ErrorResponse {
	taken, err := f.FolderRepo.HasName(actor.ID, name)
	if err != nil {
		log.Errorf("failed to check folder name: %v", err)
		return apierror.InternalServerError
	}

	if taken {
		apierr := apierror.NewStructured(400)
		apierr.Add("name", "A folder with this name already exists")
		return apierr
	}
	return nil
}

// padAttributes expands up to three submitted pairs into the fixed
// triple; missing slots stay empty.
func padAttributes(pairs []contract.AttributePair) [entity.AttributeCount]entity.Attribute {
	var attrs [entity.AttributeCount]entity.Attribute
	for i := 0; i < len(pairs) && i < entity.AttributeCount; i++ {
		attrs[i].Name = pairs[i].Name
		attrs[i].Value = pairs[i].Value
	}
	return attrs
}

func attrPointers(attrs [entity.AttributeCount]entity.Attribute) []*entity.Attribute {
	out := make([]*entity.Attribute, entity.AttributeCount)
	for i := range attrs {
		out[i] = &attrs[i]
	}
	return out
}

func joinTags(tags []string) string {
	return strings.ToLower(strings.Join(tags, " "))
}

func toTagsArray(tags string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	return strings.Split(tags, " ")
}

func toFolderResponse(folder *entity.Folder, attrs []*entity.Attribute) *contract.FolderResponse {
	pairs := make([]contract.AttributePair, len(attrs))
	for i, attr := range attrs {
		pairs[i] = contract.AttributePair{Name: attr.Name, Value: attr.Value}
	}

	return &contract.FolderResponse{
		ID:         utils.StripUUID(folder.UUID),
		Name:       folder.Name,
		Tags:       toTagsArray(folder.Tags),
		Attributes: pairs,
		CreatedAt:  utils.FormatEpoch(folder.CreatedAt),
	}
}

func toFolderSummaries(folders []*entity.Folder) []*contract.FolderSummary {
	out := make([]*contract.FolderSummary, len(folders))
	for i, folder := range folders {
		out[i] = &contract.FolderSummary{
			ID:        utils.StripUUID(folder.UUID),
			Name:      folder.Name,
			Tags:      toTagsArray(folder.Tags),
			CreatedAt: utils.FormatEpoch(folder.CreatedAt),
		}
	}
	return out
}
