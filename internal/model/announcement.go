package model

import "time"

// AttachmentType describes how an announcement attachment is rendered.
type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentPDF   AttachmentType = "pdf"
	AttachmentLink  AttachmentType = "link"
)

// Announcement is a notice published on the public board.
//
// JSON field names match the header row of the announcements sheet, so a
// record marshals directly into the write payload sent to the remote store.
// Invariant: AttachmentType is only meaningful when AttachmentURL is set.
type Announcement struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Date           time.Time      `json:"date"`
	Author         string         `json:"author"`
	Tags           []string       `json:"tags"`
	AttachmentURL  string         `json:"attachmentUrl,omitempty"`
	AttachmentType AttachmentType `json:"attachmentType,omitempty"`
	Active         bool           `json:"active"`
	Featured       bool           `json:"featured"`
}

// PrimaryTag returns the first tag, which the board treats as the
// announcement's main category.
func (a Announcement) PrimaryTag() string {
	if len(a.Tags) == 0 {
		return DefaultTag
	}
	return a.Tags[0]
}
