package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
// No business logic here — strictly persistence operations.

// SearchScope selects which document fields a substring search matches.
type SearchScope string

const (
	ScopeAll      SearchScope = "all"
	ScopeFilename SearchScope = "filename"
	ScopeContent  SearchScope = "content"
)

// FolderStat is one row of the per-folder document distribution.
// Count is the number of documents whose primary folder pointer is the folder;
// folders with zero documents are included.
type FolderStat struct {
	FolderID   int64
	FolderName string
	Count      int
}

// TextStats aggregates extracted-text lengths over one owner's documents.
type TextStats struct {
	TotalChars int64
	AvgChars   int64
}
