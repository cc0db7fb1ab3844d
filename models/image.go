package models

// MyImage is a user's own reference photo, used as the person image in
// virtual try-on.
type MyImage struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	ImageURL string `json:"image_url"`
}

// ImageUpload describes a local image file about to be sent to the
// backend: where to read it from and how to label the multipart part.
type ImageUpload struct {
	Path     string
	Filename string
	MimeType string
}
