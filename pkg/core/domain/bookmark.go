package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// BookmarkType is the declared type string supplied by calling views.
type BookmarkType string

const (
	TypeJudgement       BookmarkType = "judgement"
	TypeCentralAct      BookmarkType = "central_act"
	TypeStateAct        BookmarkType = "state_act"
	TypeBSAIEAMapping   BookmarkType = "bsa_iea_mapping"
	TypeBNSIPCMapping   BookmarkType = "bns_ipc_mapping"
	TypeBNSSCrPCMapping BookmarkType = "bnss_crpc_mapping"
)

// shortForms maps mapping bookmark types to the shortened aliases the
// backend may persist them under. Acts and judgements have no alias.
var shortForms = map[BookmarkType]string{
	TypeBSAIEAMapping:   "bsa_iea",
	TypeBNSIPCMapping:   "bns_ipc",
	TypeBNSSCrPCMapping: "bnss_crpc",
}

// Valid reports whether t is one of the six known bookmark types.
func (t BookmarkType) Valid() bool {
	switch t {
	case TypeJudgement, TypeCentralAct, TypeStateAct,
		TypeBSAIEAMapping, TypeBNSIPCMapping, TypeBNSSCrPCMapping:
		return true
	}
	return false
}

// Normalized returns the shortened alias for mapping types, or the type
// itself when no alias exists.
func (t BookmarkType) Normalized() string {
	if short, ok := shortForms[t]; ok {
		return short
	}
	return string(t)
}

// Matches reports whether a stored type string refers to the same bookmark
// type, accepting both the long and the short form as equivalent.
func (t BookmarkType) Matches(stored string) bool {
	return stored == string(t) || stored == t.Normalized()
}

// ItemID carries a content item id that the backend serializes sometimes as
// a number and sometimes as a string.
type ItemID string

func (id ItemID) String() string { return string(id) }

// UnmarshalJSON accepts both numeric and quoted ids.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	*id = ItemID(data)
	return nil
}

// Equal compares two item ids numerically when both parse as integers, and
// falls back to strict string equality when either does not.
func (id ItemID) Equal(other ItemID) bool {
	a, errA := strconv.ParseInt(string(id), 10, 64)
	b, errB := strconv.ParseInt(string(other), 10, 64)
	if errA == nil && errB == nil {
		return a == b
	}
	return string(id) == string(other)
}

// Int parses the id as an integer.
func (id ItemID) Int() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// Bookmark is a server-owned record associating the user with a content
// item. The backend returns either the embedded item or a bare item_id.
type Bookmark struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Item       *Item     `json:"item,omitempty"`
	RawItemID  ItemID    `json:"item_id,omitempty"`
	FolderID   *int64    `json:"folder_id,omitempty"`
	IsFavorite bool      `json:"is_favorite"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemID returns the id of the bookmarked item, preferring the embedded
// item over the top-level item_id field.
func (b *Bookmark) ItemID() ItemID {
	if b.Item != nil && b.Item.ID != "" {
		return b.Item.ID
	}
	return b.RawItemID
}

// BookmarkUpdate describes a partial mutation of an existing bookmark:
// folder reassignment or the favorite flag.
type BookmarkUpdate struct {
	FolderID   *int64 `json:"folder_id,omitempty"`
	IsFavorite *bool  `json:"is_favorite,omitempty"`
}

// BookmarkQuery is the filter set accepted by the user-bookmarks listing.
type BookmarkQuery struct {
	Limit      int
	Offset     int
	Type       string
	FolderID   *int64
	Search     string
	DateFrom   string
	DateTo     string
	Court      string
	Ministry   string
	Year       string
	Tags       []string
	IsFavorite *bool
}

// Pagination is the envelope returned alongside bookmark listings.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// BookmarkPage is one page of the user's bookmarks.
type BookmarkPage struct {
	Bookmarks  []Bookmark `json:"bookmarks"`
	Pagination Pagination `json:"pagination"`
}
