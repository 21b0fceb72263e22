package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/ports"
)

var validate = validator.New()

type folderNameInput struct {
	Name string `validate:"required,max=100"`
}

// FolderService manages the bookmark folders the toggle flow files items
// into. Only list and create exist for this variant; deletion belongs to
// the notes folders.
type FolderService struct {
	api ports.PortalAPI
}

func NewFolderService(api ports.PortalAPI) *FolderService {
	return &FolderService{api: api}
}

// List returns the user's bookmark folders. A failed listing is advisory
// only, so errors degrade to an empty list.
func (s *FolderService) List(ctx context.Context) []domain.Folder {
	folders, err := s.api.GetBookmarkFolders(ctx)
	if err != nil {
		if !domain.IsNotFound(err) {
			log.Printf("WARN: listing bookmark folders failed: %v", err)
		}
		return nil
	}
	return folders
}

// Create makes a new folder. The name is trimmed and must be non-empty;
// duplicate names are the server's call. Callers re-fetch the list after a
// successful create since the response carries only the new folder.
func (s *FolderService) Create(ctx context.Context, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validate.Struct(folderNameInput{Name: name}); err != nil {
		return nil, fmt.Errorf("invalid folder name: %w", err)
	}
	return s.api.CreateBookmarkFolder(ctx, name)
}
