package ports

import (
	"context"
	"time"

	"github.com/lexportal/lexmark/pkg/core/domain"
)

// PortalAPI defines the remote bookmark store operations exposed by the
// LexPortal backend. The add/remove pairs mirror the backend's per-type
// routing and must not be collapsed.
type PortalAPI interface {
	BookmarkJudgement(ctx context.Context, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error)
	RemoveJudgementBookmark(ctx context.Context, itemID domain.ItemID) error

	BookmarkAct(ctx context.Context, kind domain.ActKind, actID int64, folderID *int64) (*domain.Bookmark, error)
	RemoveActBookmark(ctx context.Context, kind domain.ActKind, actID int64) error

	BookmarkMapping(ctx context.Context, kind domain.MappingKind, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error)
	RemoveMappingBookmark(ctx context.Context, kind domain.MappingKind, itemID domain.ItemID) error

	GetUserBookmarks(ctx context.Context, q domain.BookmarkQuery) (*domain.BookmarkPage, error)
	UpdateBookmark(ctx context.Context, id int64, upd domain.BookmarkUpdate) (*domain.Bookmark, error)

	GetBookmarkFolders(ctx context.Context) ([]domain.Folder, error)
	CreateBookmarkFolder(ctx context.Context, name string) (*domain.Folder, error)

	GetNoteFolders(ctx context.Context) ([]domain.Folder, error)
	CreateNoteFolder(ctx context.Context, name string) (*domain.Folder, error)
	DeleteNoteFolder(ctx context.Context, id int64) error
} // PortalAPI ends here

// TokenStore is the local credential and UI-state storage behind the auth
// accessor. Get returns an empty string when the key is absent.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// TokenSource resolves the bearer token for outgoing portal requests.
// Implementations report domain-level auth errors, not storage errors.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Notifier surfaces transient, auto-dismissing notifications to the user.
type Notifier interface {
	Notify(message string, duration time.Duration)
}
