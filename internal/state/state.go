// Package state holds the in-memory copy of the portal collections.
//
// The remote store stays the system of record across sessions; for the
// lifetime of the process these collections are owned here. Readers get
// copied snapshots, writers replace or patch under one lock, so two
// in-flight operations can never interleave a half-applied update.
package state

import (
	"sync"

	"portalapi/internal/model"
)

// Collections is the guarded set of the three portal collections.
type Collections struct {
	mu            sync.RWMutex
	loaded        bool
	announcements []model.Announcement
	resources     []model.Resource
	documents     []model.DocumentItem
}

// New returns empty, not-yet-loaded collections.
func New() *Collections {
	return &Collections{}
}

// Loaded reports whether a successful fetch has ever populated the
// collections. Until then there is no data to serve, not even empty lists.
func (c *Collections) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// ReplaceAll swaps in freshly normalized collections wholesale.
func (c *Collections) ReplaceAll(a []model.Announcement, r []model.Resource, d []model.DocumentItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.announcements = a
	c.resources = r
	c.documents = d
	c.loaded = true
}

// Snapshot returns copies of all three collections.
func (c *Collections) Snapshot() model.PortalData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.PortalData{
		Announcements: append([]model.Announcement(nil), c.announcements...),
		Resources:     append([]model.Resource(nil), c.resources...),
		Documents:     append([]model.DocumentItem(nil), c.documents...),
	}
}

// PrependAnnouncement inserts a confirmed new announcement at the front,
// matching the board's newest-first display order.
func (c *Collections) PrependAnnouncement(a model.Announcement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.announcements = append([]model.Announcement{a}, c.announcements...)
}

// UpdateAnnouncement replaces the announcement with the same id in place.
func (c *Collections) UpdateAnnouncement(a model.Announcement) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.announcements {
		if c.announcements[i].ID == a.ID {
			c.announcements[i] = a
			return true
		}
	}
	return false
}

// RemoveAnnouncement deletes the announcement with the given id.
func (c *Collections) RemoveAnnouncement(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.announcements {
		if c.announcements[i].ID == id {
			c.announcements = append(c.announcements[:i], c.announcements[i+1:]...)
			return true
		}
	}
	return false
}

// FindAnnouncement returns the announcement with the given id, if present.
func (c *Collections) FindAnnouncement(id string) (model.Announcement, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.announcements {
		if a.ID == id {
			return a, true
		}
	}
	return model.Announcement{}, false
}

// AppendResource adds a confirmed new resource at the end; the teachers'
// list sorts alphabetically on display, so insertion order is cosmetic.
func (c *Collections) AppendResource(r model.Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, r)
}

// UpdateResource replaces the resource with the same id in place.
func (c *Collections) UpdateResource(r model.Resource) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.resources {
		if c.resources[i].ID == r.ID {
			c.resources[i] = r
			return true
		}
	}
	return false
}

// RemoveResource deletes the resource with the given id.
func (c *Collections) RemoveResource(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.resources {
		if c.resources[i].ID == id {
			c.resources = append(c.resources[:i], c.resources[i+1:]...)
			return true
		}
	}
	return false
}

// FindResource returns the resource with the given id, if present.
func (c *Collections) FindResource(id string) (model.Resource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.resources {
		if r.ID == id {
			return r, true
		}
	}
	return model.Resource{}, false
}

// PrependDocument inserts a confirmed new document at the front.
func (c *Collections) PrependDocument(d model.DocumentItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = append([]model.DocumentItem{d}, c.documents...)
}

// UpdateDocument replaces the document with the same id in place.
func (c *Collections) UpdateDocument(d model.DocumentItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.documents {
		if c.documents[i].ID == d.ID {
			c.documents[i] = d
			return true
		}
	}
	return false
}

// RemoveDocument deletes the document with the given id.
func (c *Collections) RemoveDocument(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.documents {
		if c.documents[i].ID == id {
			c.documents = append(c.documents[:i], c.documents[i+1:]...)
			return true
		}
	}
	return false
}

// FindDocument returns the document with the given id, if present.
func (c *Collections) FindDocument(id string) (model.DocumentItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.documents {
		if d.ID == id {
			return d, true
		}
	}
	return model.DocumentItem{}, false
}
