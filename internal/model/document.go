package model

import "time"

// Document is an OCR result row. The original image bytes live in object
// storage under StoragePath; the row carries only the object metadata.
//
// A document has two independent folder attachments: FolderID is the single
// primary pointer, and the document_folders join table carries a many-to-many
// set. The two are maintained separately and may disagree; see DESIGN.md.
type Document struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	Text        string    `json:"text"`
	OwnerID     int64     `json:"-"`
	FolderID    *int64    `json:"folder_id"`
	StoragePath string    `json:"-"`
	Size        int64     `json:"-"`
	ContentType string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentWithFolders annotates a document with its association folder set.
type DocumentWithFolders struct {
	Document
	Folders []FolderRef `json:"folders"`
}
