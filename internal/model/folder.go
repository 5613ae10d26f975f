package model

import "time"

// Folder groups documents for one owner. Names are not required to be unique.
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// FolderRef is the compact folder representation attached to documents.
type FolderRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
