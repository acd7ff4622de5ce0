package contract

type NoteRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"max=100000"`

	// URL and URLPreview are optional; the preview image address is
	// supplied by the client, this server never fetches anything.
	URL        string `json:"url" validate:"omitempty,url,max=2048"`
	URLPreview string `json:"url_preview" validate:"omitempty,url,max=2048"`
}

// UpdateNoteRequest overwrites all mutable note fields, mirroring the
// edit form which always submits the full set.
type UpdateNoteRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=200"`
	Body       string `json:"body" validate:"max=100000"`
	URL        string `json:"url" validate:"omitempty,url,max=2048"`
	URLPreview string `json:"url_preview" validate:"omitempty,url,max=2048"`
}

type NoteResponse struct {
	ID         string `json:"id"`        // public identifier, display form
	FolderID   string `json:"folder_id"` // owning folder's public identifier
	Title      string `json:"title"`
	Body       string `json:"body"`
	URL        string `json:"url,omitempty"`
	URLPreview string `json:"url_preview,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// RelatedNoteResponse is a note listed across the relation graph, so
// it also names the folder it came from.
type RelatedNoteResponse struct {
	NoteResponse
	FolderName string   `json:"folder_name"`
	FolderTags []string `json:"folder_tags"`
}
