package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/ports"
)

// Client talks to the LexPortal REST API. It implements ports.PortalAPI.
type Client struct {
	baseURL    string
	tokens     ports.TokenSource
	httpClient *http.Client
}

func NewClient(baseURL string, tokens ports.TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorBody is the error envelope the backend wraps failures in.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes the request and decodes a 2xx response into out. Non-2xx
// statuses become *domain.APIError so callers can branch on the code.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		msg := body.Message
		if msg == "" {
			msg = body.Error
		}
		if msg == "" {
			msg = body.Detail
		}
		return &domain.APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// bookmarkEnvelope wraps single-bookmark responses.
type bookmarkEnvelope struct {
	Bookmark domain.Bookmark `json:"bookmark"`
}

type addBookmarkRequest struct {
	ItemID   domain.ItemID `json:"item_id"`
	FolderID *int64        `json:"folder_id,omitempty"`
}

func (c *Client) addBookmark(ctx context.Context, path string, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, addBookmarkRequest{ItemID: itemID, FolderID: folderID})
	if err != nil {
		return nil, err
	}
	var env bookmarkEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return &env.Bookmark, nil
}

func (c *Client) deleteResource(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) BookmarkJudgement(ctx context.Context, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error) {
	return c.addBookmark(ctx, "/api/v1/bookmarks/judgements", itemID, folderID)
}

func (c *Client) RemoveJudgementBookmark(ctx context.Context, itemID domain.ItemID) error {
	return c.deleteResource(ctx, "/api/v1/bookmarks/judgements/"+url.PathEscape(itemID.String()))
}

func (c *Client) BookmarkAct(ctx context.Context, kind domain.ActKind, actID int64, folderID *int64) (*domain.Bookmark, error) {
	path := fmt.Sprintf("/api/v1/bookmarks/acts/%s", kind)
	return c.addBookmark(ctx, path, domain.ItemID(strconv.FormatInt(actID, 10)), folderID)
}

func (c *Client) RemoveActBookmark(ctx context.Context, kind domain.ActKind, actID int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/v1/bookmarks/acts/%s/%d", kind, actID))
}

func (c *Client) BookmarkMapping(ctx context.Context, kind domain.MappingKind, itemID domain.ItemID, folderID *int64) (*domain.Bookmark, error) {
	path := fmt.Sprintf("/api/v1/bookmarks/mappings/%s", kind)
	return c.addBookmark(ctx, path, itemID, folderID)
}

func (c *Client) RemoveMappingBookmark(ctx context.Context, kind domain.MappingKind, itemID domain.ItemID) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/v1/bookmarks/mappings/%s/%s", kind, url.PathEscape(itemID.String())))
}

func (c *Client) GetUserBookmarks(ctx context.Context, q domain.BookmarkQuery) (*domain.BookmarkPage, error) {
	query := url.Values{}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		query.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Type != "" {
		query.Set("type", q.Type)
	}
	if q.FolderID != nil {
		query.Set("folder_id", strconv.FormatInt(*q.FolderID, 10))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.DateFrom != "" {
		query.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		query.Set("date_to", q.DateTo)
	}
	if q.Court != "" {
		query.Set("court", q.Court)
	}
	if q.Ministry != "" {
		query.Set("ministry", q.Ministry)
	}
	if q.Year != "" {
		query.Set("year", q.Year)
	}
	if len(q.Tags) > 0 {
		query.Set("tags", strings.Join(q.Tags, ","))
	}
	if q.IsFavorite != nil {
		query.Set("is_favorite", strconv.FormatBool(*q.IsFavorite))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/bookmarks", query, nil)
	if err != nil {
		return nil, err
	}

	var page domain.BookmarkPage
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdateBookmark(ctx context.Context, id int64, upd domain.BookmarkUpdate) (*domain.Bookmark, error) {
	req, err := c.newRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/bookmarks/%d", id), nil, upd)
	if err != nil {
		return nil, err
	}
	var env bookmarkEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return &env.Bookmark, nil
}

// foldersEnvelope wraps folder listing responses.
type foldersEnvelope struct {
	Folders []domain.Folder `json:"folders"`
}

type folderEnvelope struct {
	Folder domain.Folder `json:"folder"`
}

type createFolderRequest struct {
	Name string `json:"name"`
}

func (c *Client) listFolders(ctx context.Context, path string) ([]domain.Folder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var env foldersEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return env.Folders, nil
}

func (c *Client) createFolder(ctx context.Context, path, name string) (*domain.Folder, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, createFolderRequest{Name: name})
	if err != nil {
		return nil, err
	}
	var env folderEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}
	return &env.Folder, nil
}

func (c *Client) GetBookmarkFolders(ctx context.Context) ([]domain.Folder, error) {
	return c.listFolders(ctx, "/api/v1/bookmark-folders")
}

func (c *Client) CreateBookmarkFolder(ctx context.Context, name string) (*domain.Folder, error) {
	return c.createFolder(ctx, "/api/v1/bookmark-folders", name)
}

func (c *Client) GetNoteFolders(ctx context.Context) ([]domain.Folder, error) {
	return c.listFolders(ctx, "/api/v1/note-folders")
}

func (c *Client) CreateNoteFolder(ctx context.Context, name string) (*domain.Folder, error) {
	return c.createFolder(ctx, "/api/v1/note-folders", name)
}

func (c *Client) DeleteNoteFolder(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/v1/note-folders/%d", id))
}
