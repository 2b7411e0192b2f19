package model

// Package model contains the portal's domain records and enumerations.
// These are pure data definitions shared across layers (HTTP, service,
// sheet client) without coupling to the remote store's row format.

// PortalData bundles the three content collections served by the portal.
type PortalData struct {
	Announcements []Announcement `json:"announcements"`
	Resources     []Resource     `json:"resources"`
	Documents     []DocumentItem `json:"documents"`
}

// DefaultAuthor is the role attributed to announcements whose author cell
// is empty in the remote sheet.
const DefaultAuthor = "Secretaria"

// DefaultTag is the generic category applied when an announcement carries
// no tags at all.
const DefaultTag = "Geral"
