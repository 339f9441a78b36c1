package model

// ExportRequest lists passwords, in order, to render in the given format.
type ExportRequest struct {
	Passwords []string `json:"passwords"`
	Format    string   `json:"format"`
}

// ExportResponse is the rendered document for client-side download.
type ExportResponse struct {
	Content   string `json:"content"`
	Filename  string `json:"filename"`
	MediaType string `json:"mediaType"`
}
