package services

import (
	"context"
	"testing"

	"github.com/lexportal/lexmark/pkg/core/domain"
)

func TestFolderCreateTrimsName(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewFolderService(fake)

	folder, err := svc.Create(context.Background(), "  Constitutional Law  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if folder.Name != "Constitutional Law" {
		t.Errorf("folder name = %q, want trimmed", folder.Name)
	}
	if fake.createdFolders[0] != "Constitutional Law" {
		t.Errorf("request carried %q, want trimmed name", fake.createdFolders[0])
	}
}

func TestFolderCreateRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		fake := &fakeAPI{}
		svc := NewFolderService(fake)

		if _, err := svc.Create(context.Background(), name); err == nil {
			t.Errorf("Create(%q) should fail client-side", name)
		}
		if len(fake.createdFolders) != 0 {
			t.Errorf("Create(%q) must not reach the server", name)
		}
	}
}

func TestFolderListEmptyOnError(t *testing.T) {
	fake := &fakeAPI{
		foldersFn: func() ([]domain.Folder, error) {
			return nil, &domain.APIError{Status: 500}
		},
	}
	svc := NewFolderService(fake)

	if folders := svc.List(context.Background()); len(folders) != 0 {
		t.Errorf("List must degrade to empty on error, got %v", folders)
	}
}

func TestNotesFolderDelete(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewNotesFolderService(fake)

	if err := svc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if fake.mutations[0] != "delete-note-folder 5" {
		t.Errorf("sent %q", fake.mutations[0])
	}

	if err := svc.Delete(context.Background(), 0); err == nil {
		t.Error("Delete(0) should be rejected client-side")
	}
}
