package model

import "time"

// Resource is a curated link in the teachers-only resource list.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    Category  `json:"category"`
	Date        time.Time `json:"date"`
	Active      bool      `json:"active"`
}
