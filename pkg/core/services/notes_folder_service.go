package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/ports"
)

// NotesFolderService manages notes folders. Shaped like FolderService but a
// distinct collaborator, and the only folder variant with delete support.
type NotesFolderService struct {
	api ports.PortalAPI
}

func NewNotesFolderService(api ports.PortalAPI) *NotesFolderService {
	return &NotesFolderService{api: api}
}

func (s *NotesFolderService) List(ctx context.Context) []domain.Folder {
	folders, err := s.api.GetNoteFolders(ctx)
	if err != nil {
		if !domain.IsNotFound(err) {
			log.Printf("WARN: listing note folders failed: %v", err)
		}
		return nil
	}
	return folders
}

func (s *NotesFolderService) Create(ctx context.Context, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validate.Struct(folderNameInput{Name: name}); err != nil {
		return nil, fmt.Errorf("invalid folder name: %w", err)
	}
	return s.api.CreateNoteFolder(ctx, name)
}

func (s *NotesFolderService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid note folder id: %d", id)
	}
	return s.api.DeleteNoteFolder(ctx, id)
}
