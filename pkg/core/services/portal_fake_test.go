package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/ports"
)

// fakeAPI is an in-memory ports.PortalAPI that records every call so tests
// can assert on exactly which requests went out.
type fakeAPI struct {
	listFn    func(q domain.BookmarkQuery) (*domain.BookmarkPage, error)
	listCalls []domain.BookmarkQuery

	foldersFn       func() ([]domain.Folder, error)
	folderListCalls int
	createdFolders  []string
	createFolderErr error

	addFn     func(kind string, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error)
	removeFn  func(kind string, itemID domain.ItemID) error
	mutations []string
}

func (f *fakeAPI) networkCalls() int {
	return len(f.listCalls) + f.folderListCalls + len(f.createdFolders) + len(f.mutations)
}

func (f *fakeAPI) add(kind string, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error) {
	f.mutations = append(f.mutations, fmt.Sprintf("add %s %s", kind, itemID))
	if f.addFn != nil {
		return f.addFn(kind, itemID, folderID)
	}
	return &domain.Bookmark{ID: 1000 + int64(len(f.mutations)), Type: kind, RawItemID: itemID}, nil
}

func (f *fakeAPI) remove(kind string, itemID domain.ItemID) error {
	f.mutations = append(f.mutations, fmt.Sprintf("remove %s %s", kind, itemID))
	if f.removeFn != nil {
		return f.removeFn(kind, itemID)
	}
	return nil
}

func (f *fakeAPI) BookmarkJudgement(ctx context.Context, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error) {
	return f.add("judgement", itemID, folderID)
}

func (f *fakeAPI) RemoveJudgementBookmark(ctx context.Context, itemID domain.ItemID) error {
	return f.remove("judgement", itemID)
}

func (f *fakeAPI) BookmarkAct(ctx context.Context, kind domain.ActKind, actID int64, folderID *int64) (*domain.Bookmark, error) {
	return f.add("act:"+string(kind), domain.ItemID(strconv.FormatInt(actID, 10)), folderID)
}

func (f *fakeAPI) RemoveActBookmark(ctx context.Context, kind domain.ActKind, actID int64) error {
	return f.remove("act:"+string(kind), domain.ItemID(strconv.FormatInt(actID, 10)))
}

func (f *fakeAPI) BookmarkMapping(ctx context.Context, kind domain.MappingKind, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error) {
	return f.add("mapping:"+string(kind), itemID, folderID)
}

func (f *fakeAPI) RemoveMappingBookmark(ctx context.Context, kind domain.MappingKind, itemID domain.ItemID) error {
	return f.remove("mapping:"+string(kind), itemID)
}

func (f *fakeAPI) GetUserBookmarks(ctx context.Context, q domain.BookmarkQuery) (*domain.BookmarkPage, error) {
	f.listCalls = append(f.listCalls, q)
	if f.listFn != nil {
		return f.listFn(q)
	}
	return &domain.BookmarkPage{}, nil
}

func (f *fakeAPI) UpdateBookmark(ctx context.Context, id int64, upd domain.BookmarkUpdate) (*domain.Bookmark, error) {
	f.mutations = append(f.mutations, fmt.Sprintf("update %d", id))
	return &domain.Bookmark{ID: id}, nil
}

func (f *fakeAPI) GetBookmarkFolders(ctx context.Context) ([]domain.Folder, error) {
	f.folderListCalls++
	if f.foldersFn != nil {
		return f.foldersFn()
	}
	return nil, nil
}

func (f *fakeAPI) CreateBookmarkFolder(ctx context.Context, name string) (*domain.Folder, error) {
	f.createdFolders = append(f.createdFolders, name)
	if f.createFolderErr != nil {
		return nil, f.createFolderErr
	}
	return &domain.Folder{ID: int64(len(f.createdFolders)), Name: name}, nil
}

func (f *fakeAPI) GetNoteFolders(ctx context.Context) ([]domain.Folder, error) {
	f.folderListCalls++
	if f.foldersFn != nil {
		return f.foldersFn()
	}
	return nil, nil
}

func (f *fakeAPI) CreateNoteFolder(ctx context.Context, name string) (*domain.Folder, error) {
	return f.CreateBookmarkFolder(ctx, name)
}

func (f *fakeAPI) DeleteNoteFolder(ctx context.Context, id int64) error {
	f.mutations = append(f.mutations, fmt.Sprintf("delete-note-folder %d", id))
	return nil
}

var _ ports.PortalAPI = (*fakeAPI)(nil)

// staticTokens always reports an authenticated session.
type staticTokens struct{}

func (staticTokens) Token(ctx context.Context) (string, error) { return "test-token", nil }

// noTokens reports an unauthenticated session.
type noTokens struct{}

func (noTokens) Token(ctx context.Context) (string, error) { return "", ErrNotAuthenticated }

// recordingNotifier captures transient notifications.
type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string, _ time.Duration) {
	n.messages = append(n.messages, message)
}
