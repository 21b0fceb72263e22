package services

import (
	"context"
	"log"

	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/ports"
)

// statusPageLimit bounds each status-check listing request.
const statusPageLimit = 100

// Status is the advisory bookmark state of a single content item.
type Status struct {
	IsBookmarked bool
	BookmarkID   int64
}

// ResolverService answers "is this item bookmarked, and under which
// bookmark id". It is best-effort by contract: every failure degrades to
// "not bookmarked" and nothing propagates to the caller.
type ResolverService struct {
	api ports.PortalAPI
}

func NewResolverService(api ports.PortalAPI) *ResolverService {
	return &ResolverService{api: api}
}

// Resolve checks the user's bookmark list for the given item. It first asks
// the server to filter by the declared type; some types are not supported
// as server-side filters, so a rejected request is retried exactly once
// unfiltered with the filtering done here instead.
func (s *ResolverService) Resolve(ctx context.Context, itemID domain.ItemID, declared domain.BookmarkType) Status {
	page, err := s.api.GetUserBookmarks(ctx, domain.BookmarkQuery{
		Limit: statusPageLimit,
		Type:  string(declared),
	})
	if err != nil {
		if domain.IsNotFound(err) {
			// No bookmarks at all. Expected, not worth a warning.
			return Status{}
		}
		log.Printf("WARN: type-filtered bookmark lookup failed, retrying unfiltered: %v", err)
		return s.resolveUnfiltered(ctx, itemID, declared)
	}
	return scanBookmarks(page.Bookmarks, itemID, declared)
}

func (s *ResolverService) resolveUnfiltered(ctx context.Context, itemID domain.ItemID, declared domain.BookmarkType) Status {
	offset := 0
	for {
		page, err := s.api.GetUserBookmarks(ctx, domain.BookmarkQuery{
			Limit:  statusPageLimit,
			Offset: offset,
		})
		if err != nil {
			if !domain.IsNotFound(err) {
				log.Printf("WARN: unfiltered bookmark lookup failed: %v", err)
			}
			return Status{}
		}
		if st := scanBookmarks(page.Bookmarks, itemID, declared); st.IsBookmarked {
			return st
		}
		if !page.Pagination.HasMore || len(page.Bookmarks) == 0 {
			return Status{}
		}
		// The server may return fewer records than requested; advance by
		// what actually came back or intermediate records get skipped.
		offset += len(page.Bookmarks)
	}
}

// scanBookmarks finds the first entry matching the declared type (long or
// short form) and the item id under numeric-or-string equality.
func scanBookmarks(bookmarks []domain.Bookmark, itemID domain.ItemID, declared domain.BookmarkType) Status {
	for i := range bookmarks {
		b := &bookmarks[i]
		if declared.Matches(b.Type) && itemID.Equal(b.ItemID()) {
			return Status{IsBookmarked: true, BookmarkID: b.ID}
		}
	}
	return Status{}
}
