package domain

import "time"

// Thesis is read-only from the access lifecycle's perspective; only the
// thesis service writes these rows.
type Thesis struct {
	ID         int32     `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	College    string    `json:"college"`
	Department string    `json:"department"`
	Batch      string    `json:"batch"`
	Abstract   string    `json:"abstract"`
	FileKey    string    `json:"file_key"`
	QRCodeKey  string    `json:"qr_code_key"`
	UploadedBy int32     `json:"uploaded_by"`
	CreatedOn  time.Time `json:"created_on"`
}
