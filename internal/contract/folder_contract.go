package contract

// TagFilterAll is the tag-filter token meaning "no filter"; an empty
// value means the same.
const TagFilterAll = "all_tags"

// AttributePair is one of a folder's three key/value slots. Both
// halves may be empty for an unused slot.
type AttributePair struct {
	Name  string `json:"name" validate:"max=100"`
	Value string `json:"value" validate:"max=200"`
}

type FolderRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	Tags       []string        `json:"tags" validate:"max=50,nodupes,dive,required,min=1,max=30,tagchars"`
	Attributes []AttributePair `json:"attributes" validate:"max=3,dive"`

	// ParentID optionally relates the new folder to an existing one
	// (public identifier). Empty creates a free-standing folder.
	ParentID string `json:"parent_id" validate:"omitempty,max=36"`
}

// UpdateFolderRequest overwrites name, tags and the whole attribute
// triple, mirroring the edit form which always submits all slots.
type UpdateFolderRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	Tags       []string        `json:"tags" validate:"max=50,nodupes,dive,required,min=1,max=30,tagchars"`
	Attributes []AttributePair `json:"attributes" validate:"max=3,dive"`
}

type LinkRequest struct {
	// Target is the public identifier of the folder to link to.
	Target string `json:"target" validate:"required,max=36"`
}

type FolderResponse struct {
	ID         string          `json:"id"` // public identifier, display form
	Name       string          `json:"name"`
	Tags       []string        `json:"tags"`
	Attributes []AttributePair `json:"attributes"`
	CreatedAt  string          `json:"created_at"`
}

// FolderSummary is the list-view projection: no attributes attached.
type FolderSummary struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}
