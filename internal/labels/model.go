package labels

import "time"

// LabelDocument is an uploaded product label (photo scan PDF or plain
// text) together with the ingredient list parsed out of it.
type LabelDocument struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	FileName    string    `json:"fileName"`
	StorageKey  string    `json:"-"`
	SizeBytes   int64     `json:"sizeBytes"`
	MimeType    string    `json:"mimeType"`
	Ingredients []string  `json:"ingredients"`
	CreatedAt   time.Time `json:"createdAt"`
}
