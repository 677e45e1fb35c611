package dto

// AddGalleryImageRequest binds the multipart form of a gallery upload.
// The image itself arrives as a file part.
type AddGalleryImageRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Category    *string `form:"category"`
}

// UpdateGalleryContentRequest updates the gallery page header block.
type UpdateGalleryContentRequest struct {
	Tag         *string `json:"tag"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
