package model

import "time"

// DocumentType determines the icon shown for a library entry, nothing else.
type DocumentType string

const (
	DocumentPDF   DocumentType = "pdf"
	DocumentDoc   DocumentType = "doc"
	DocumentSheet DocumentType = "sheet"
	DocumentImage DocumentType = "image"
)

// DocumentItem is an entry in the public document library.
type DocumentItem struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Category Category     `json:"category"`
	URL      string       `json:"url"`
	Type     DocumentType `json:"type"`
	Date     time.Time    `json:"date"`
	Active   bool         `json:"active"`
}
