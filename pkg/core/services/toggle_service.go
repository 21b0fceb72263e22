package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/ports"
)

var (
	// ErrBusy means a prior toggle on the same controller is unresolved.
	// The call is a no-op, not deferred.
	ErrBusy = errors.New("toggle already in flight")

	ErrInvalidCentralActID = errors.New("Invalid central act ID")
	ErrInvalidStateActID   = errors.New("Invalid state act ID")
)

// notifyDuration is the fixed display time for transient mutation-failure
// notifications.
const notifyDuration = 4 * time.Second

// ToggleCallback is invoked after every successful mutation so parent
// views can refresh counts.
type ToggleCallback func(wasBookmarked bool, itemID domain.ItemID, bookmarkID int64)

// ToggleOptions carries the per-call choices for a toggle.
type ToggleOptions struct {
	// FolderID files the new bookmark into an existing folder. NoFolder is
	// the explicit "no folder" choice; when the item is not yet bookmarked,
	// the user has folders, and neither is set, the toggle pauses and asks.
	FolderID *int64
	NoFolder bool

	// Quiet suppresses user-facing failure notifications (the icon-only
	// display mode); failures are still logged.
	Quiet bool

	OnMutate ToggleCallback
}

// ToggleResult reports the controller state after a toggle attempt. When
// NeedsFolder is set no mutation happened and Folders holds the picker
// candidates.
type ToggleResult struct {
	Bookmarked  bool
	BookmarkID  int64
	NeedsFolder bool
	Folders     []domain.Folder
}

// ToggleController transitions one content item between bookmarked and
// unbookmarked. It holds its own local view of the item's state, set only
// after the server confirms a mutation; two controllers for the same item
// can transiently disagree until both re-resolve.
type ToggleController struct {
	api      ports.PortalAPI
	auth     ports.TokenSource
	folders  *FolderService
	resolver *ResolverService
	notifier ports.Notifier

	itemID   domain.ItemID
	declared domain.BookmarkType

	busy atomic.Bool

	mu         sync.Mutex
	bookmarked bool
	bookmarkID int64
}

func NewToggleController(api ports.PortalAPI, auth ports.TokenSource, notifier ports.Notifier, itemID domain.ItemID, declared domain.BookmarkType) *ToggleController {
	return &ToggleController{
		api:      api,
		auth:     auth,
		folders:  NewFolderService(api),
		resolver: NewResolverService(api),
		notifier: notifier,
		itemID:   itemID,
		declared: declared,
	}
}

// Status returns the controller's local view of the item.
func (c *ToggleController) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{IsBookmarked: c.bookmarked, BookmarkID: c.bookmarkID}
}

// Refresh re-resolves the item's advisory status from the server. Safe to
// call on startup; failures leave the local view at "not bookmarked".
func (c *ToggleController) Refresh(ctx context.Context) Status {
	st := c.resolver.Resolve(ctx, c.itemID, c.declared)
	c.mu.Lock()
	c.bookmarked = st.IsBookmarked
	c.bookmarkID = st.BookmarkID
	c.mu.Unlock()
	return st
}

// Toggle adds or removes the bookmark depending on the local view. Order of
// checks: busy flag, authentication, declared type, numeric id guard,
// folder gate, then exactly one add or remove request.
func (c *ToggleController) Toggle(ctx context.Context, opts ToggleOptions) (*ToggleResult, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer c.busy.Store(false)

	if _, err := c.auth.Token(ctx); err != nil {
		return nil, err
	}

	if !c.declared.Valid() {
		return nil, fmt.Errorf("Unsupported bookmark type: %s", c.declared)
	}

	// Act ids must be numeric. Validated up front so the failure mode is
	// the same whether or not the folder gate would have fired.
	var actID int64
	if c.declared == domain.TypeCentralAct || c.declared == domain.TypeStateAct {
		id, err := c.itemID.Int()
		if err != nil {
			if c.declared == domain.TypeCentralAct {
				return nil, ErrInvalidCentralActID
			}
			return nil, ErrInvalidStateActID
		}
		actID = id
	}

	c.mu.Lock()
	wasBookmarked := c.bookmarked
	currentID := c.bookmarkID
	c.mu.Unlock()

	// The folder picker is a mandatory interaction step, not an
	// optimization: adding while the user has folders and no explicit
	// choice pauses here with zero mutations issued.
	if !wasBookmarked && opts.FolderID == nil && !opts.NoFolder {
		if folders := c.folders.List(ctx); len(folders) > 0 {
			return &ToggleResult{NeedsFolder: true, Folders: folders}, nil
		}
	}

	added, err := c.dispatch(ctx, wasBookmarked, actID, opts.FolderID)
	if err != nil {
		log.Printf("ERROR: bookmark toggle for %s %s failed: %v", c.declared, c.itemID, err)
		if !opts.Quiet {
			c.notifier.Notify(fmt.Sprintf("Could not update bookmark: %v", err), notifyDuration)
		}
		// Local state was never mutated optimistically, so the
		// controller simply stays where it was.
		return &ToggleResult{Bookmarked: wasBookmarked, BookmarkID: currentID}, nil
	}

	c.mu.Lock()
	if added != nil {
		c.bookmarked = true
		c.bookmarkID = added.ID
	} else {
		c.bookmarked = false
		c.bookmarkID = 0
	}
	result := &ToggleResult{Bookmarked: c.bookmarked, BookmarkID: c.bookmarkID}
	c.mu.Unlock()

	if opts.OnMutate != nil {
		// On removal the callback receives the id that was removed.
		id := result.BookmarkID
		if added == nil {
			id = currentID
		}
		opts.OnMutate(wasBookmarked, c.itemID, id)
	}

	return result, nil
}

// dispatch routes the mutation through the backend's per-type endpoints.
// actID is only meaningful for act types; Toggle has already validated it.
// A non-nil bookmark return means an add; nil means a remove.
func (c *ToggleController) dispatch(ctx context.Context, wasBookmarked bool, actID int64, folderID *int64) (*domain.Bookmark, error) {
	switch c.declared {
	case domain.TypeJudgement:
		if wasBookmarked {
			return nil, c.api.RemoveJudgementBookmark(ctx, c.itemID)
		}
		return c.api.BookmarkJudgement(ctx, c.itemID, folderID)

	case domain.TypeCentralAct, domain.TypeStateAct:
		kind := domain.ActCentral
		if c.declared == domain.TypeStateAct {
			kind = domain.ActState
		}
		if wasBookmarked {
			return nil, c.api.RemoveActBookmark(ctx, kind, actID)
		}
		return c.api.BookmarkAct(ctx, kind, actID, folderID)

	case domain.TypeBSAIEAMapping, domain.TypeBNSIPCMapping, domain.TypeBNSSCrPCMapping:
		kind := domain.MappingKind(c.declared.Normalized())
		if wasBookmarked {
			return nil, c.api.RemoveMappingBookmark(ctx, kind, c.itemID)
		}
		return c.api.BookmarkMapping(ctx, kind, c.itemID, folderID)

	default:
		// Unknown types indicate a caller bug, never a transient condition.
		return nil, fmt.Errorf("Unsupported bookmark type: %s", c.declared)
	}
}
