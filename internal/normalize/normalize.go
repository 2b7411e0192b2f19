// Package normalize converts raw sheet rows into typed domain records.
//
// The remote store maps spreadsheet cells straight to JSON, so a field may
// arrive as a native boolean, the strings "TRUE"/"false", an empty cell, a
// locale-formatted date, or a comma-joined tag list depending on how the
// cell happens to be formatted. This package is the only code that handles
// those loose shapes; every field has a defined default, so normalization
// never fails.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"portalapi/internal/model"
)

// RawRecord is one sheet row as decoded from the remote store's JSON.
type RawRecord = map[string]any

// Announcements normalizes a fetched announcements list. Output ids are
// unique within the returned slice even when the sheet omits them.
func Announcements(raw []RawRecord) []model.Announcement {
	now := time.Now().UTC()
	out := make([]model.Announcement, 0, len(raw))
	for i, r := range raw {
		a := model.Announcement{
			ID:             recordID(r["id"], "ann", now, i),
			Title:          str(r["title"], ""),
			Content:        str(r["content"], ""),
			Date:           date(r["date"], now),
			Author:         str(r["author"], model.DefaultAuthor),
			Tags:           tags(r["tags"]),
			AttachmentURL:  str(r["attachmentUrl"], ""),
			AttachmentType: model.AttachmentType(str(r["attachmentType"], "")),
			Active:         flag(r["active"]),
			Featured:       flag(r["featured"]),
		}
		// An attachment type without a URL points at nothing; drop it so
		// the record satisfies the attachment invariant.
		if a.AttachmentURL == "" {
			a.AttachmentType = ""
		}
		out = append(out, a)
	}
	return out
}

// Resources normalizes a fetched resources list.
func Resources(raw []RawRecord) []model.Resource {
	now := time.Now().UTC()
	out := make([]model.Resource, 0, len(raw))
	for i, r := range raw {
		out = append(out, model.Resource{
			ID:          recordID(r["id"], "res", now, i),
			Title:       str(r["title"], ""),
			Description: str(r["description"], ""),
			URL:         str(r["url"], ""),
			Category:    model.Category(str(r["category"], "")),
			Date:        date(r["date"], now),
			Active:      flag(r["active"]),
		})
	}
	return out
}

// Documents normalizes a fetched documents list.
func Documents(raw []RawRecord) []model.DocumentItem {
	now := time.Now().UTC()
	out := make([]model.DocumentItem, 0, len(raw))
	for i, r := range raw {
		out = append(out, model.DocumentItem{
			ID:       recordID(r["id"], "doc", now, i),
			Title:    str(r["title"], ""),
			Category: model.Category(str(r["category"], "")),
			URL:      str(r["url"], ""),
			Type:     model.DocumentType(str(r["type"], "")),
			Date:     date(r["date"], now),
			Active:   flag(r["active"]),
		})
	}
	return out
}

// recordID coerces an existing id to string or synthesizes one. The list
// position keeps synthesized ids distinct even when several rows of the
// same fetch lack an id.
func recordID(v any, prefix string, now time.Time, index int) string {
	if s := str(v, ""); s != "" {
		return s
	}
	return fmt.Sprintf("%s-%d-%d", prefix, now.UnixMilli(), index)
}

// flag coerces a sheet cell to a boolean. An empty cell means the row was
// never explicitly disabled, so it reads as true.
func flag(v any) bool {
	switch b := v.(type) {
	case nil:
		return true
	case bool:
		return b
	case string:
		if strings.TrimSpace(b) == "" {
			return true
		}
		return strings.EqualFold(strings.TrimSpace(b), "true")
	default:
		return strings.EqualFold(fmt.Sprint(v), "true")
	}
}

// tags coerces the tags cell to a non-empty list of trimmed labels.
func tags(v any) []string {
	var out []string
	switch t := v.(type) {
	case []string:
		for _, e := range t {
			if s := strings.TrimSpace(e); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, e := range t {
			if s := strings.TrimSpace(str(e, "")); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, seg := range strings.Split(t, ",") {
			if s := strings.TrimSpace(seg); s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return []string{model.DefaultTag}
	}
	return out
}

// localeDate matches spreadsheet-formatted day/month/year dates such as
// "5/3/2024" or "05/03/2024".
var localeDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// dateLayouts are tried in order for anything that is not locale-formatted.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// date coerces a sheet cell to an instant. Locale-formatted dates are
// pinned to noon UTC so the calendar day survives time zone display;
// unparseable values fall back to the time of the normalization pass.
func date(v any, now time.Time) time.Time {
	s := strings.TrimSpace(str(v, ""))
	if s == "" {
		return now
	}
	if m := localeDate.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return now
}

// str coerces any cell value to a string, with def for absent/empty cells.
// Sheet numbers decode as float64; %v prints integral ones without a
// fractional part, so a numeric id cell "3" stays "3".
func str(v any, def string) string {
	switch s := v.(type) {
	case nil:
		return def
	case string:
		if s == "" {
			return def
		}
		return s
	default:
		out := fmt.Sprint(v)
		if out == "" {
			return def
		}
		return out
	}
}
