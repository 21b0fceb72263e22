package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lexportal/lexmark/pkg/adapters/api"
	"github.com/lexportal/lexmark/pkg/adapters/login"
	"github.com/lexportal/lexmark/pkg/adapters/notify"
	"github.com/lexportal/lexmark/pkg/adapters/repository/sqlite"
	"github.com/lexportal/lexmark/pkg/config"
	"github.com/lexportal/lexmark/pkg/core/domain"
	"github.com/lexportal/lexmark/pkg/core/services"
)

func usage() {
	fmt.Println("usage: lexmark <login|logout|status|toggle|bookmarks|folders|notes-folders> [flags]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.Load()
	repo, err := sqlite.NewStateRepository(cfg.StateDBURL)
	if err != nil {
		log.Fatalf("Failed to open state db: %v", err)
	}
	defer repo.Close()

	auth := services.NewAuthService(repo)
	client := api.NewClient(cfg.APIBaseURL, auth)
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		doLogin(ctx, cfg, auth)
	case "logout":
		if err := auth.Logout(ctx); err != nil {
			log.Fatalf("Logout failed: %v", err)
		}
		fmt.Println("Logged out.")
	case "status":
		doStatus(ctx, client, os.Args[2:])
	case "toggle":
		doToggle(ctx, client, auth, os.Args[2:])
	case "bookmarks":
		doBookmarks(ctx, client, os.Args[2:])
	case "folders":
		doFolders(ctx, client, os.Args[2:])
	case "notes-folders":
		doNotesFolders(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func doLogin(ctx context.Context, cfg *config.Config, auth *services.AuthService) {
	flow := login.NewFlow(cfg, auth)
	if err := flow.Run(ctx); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Println("Logged in.")
}

func itemFlags(fs *flag.FlagSet) (*string, *string) {
	typ := fs.String("type", "", "bookmark type (judgement, central_act, state_act, bsa_iea_mapping, bns_ipc_mapping, bnss_crpc_mapping)")
	id := fs.String("id", "", "content item id")
	return typ, id
}

func doStatus(ctx context.Context, client *api.Client, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	typ, id := itemFlags(fs)
	fs.Parse(args)
	if *typ == "" || *id == "" {
		fs.PrintDefaults()
		os.Exit(1)
	}

	resolver := services.NewResolverService(client)
	st := resolver.Resolve(ctx, domain.ItemID(*id), domain.BookmarkType(*typ))
	if st.IsBookmarked {
		fmt.Printf("bookmarked (bookmark id %d)\n", st.BookmarkID)
	} else {
		fmt.Println("not bookmarked")
	}
}

func doToggle(ctx context.Context, client *api.Client, auth *services.AuthService, args []string) {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	typ, id := itemFlags(fs)
	folderID := fs.Int64("folder", 0, "file the bookmark into this folder id")
	noFolder := fs.Bool("no-folder", false, "add without filing into a folder")
	quiet := fs.Bool("quiet", false, "suppress failure notifications")
	fs.Parse(args)
	if *typ == "" || *id == "" {
		fs.PrintDefaults()
		os.Exit(1)
	}

	controller := services.NewToggleController(client, auth, notify.ConsoleNotifier{}, domain.ItemID(*id), domain.BookmarkType(*typ))
	controller.Refresh(ctx)

	opts := services.ToggleOptions{NoFolder: *noFolder, Quiet: *quiet}
	if *folderID > 0 {
		opts.FolderID = folderID
	}

	result, err := controller.Toggle(ctx, opts)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			fmt.Println("Not logged in. Run 'lexmark login' first.")
			os.Exit(1)
		}
		if errors.Is(err, services.ErrSessionExpired) {
			fmt.Println("Session expired. Run 'lexmark login' again.")
			os.Exit(1)
		}
		log.Fatalf("Toggle failed: %v", err)
	}

	if result.NeedsFolder {
		fmt.Println("Choose a folder with -folder <id>, or pass -no-folder:")
		for _, f := range result.Folders {
			fmt.Printf("  %d\t%s (%d bookmarks)\n", f.ID, f.Name, f.BookmarkCount)
		}
		return
	}

	if result.Bookmarked {
		fmt.Printf("bookmarked (bookmark id %d)\n", result.BookmarkID)
	} else {
		fmt.Println("bookmark removed")
	}
}

func doBookmarks(ctx context.Context, client *api.Client, args []string) {
	fs := flag.NewFlagSet("bookmarks", flag.ExitOnError)
	typ := fs.String("type", "", "filter by bookmark type")
	folderID := fs.Int64("folder", 0, "filter by folder id")
	search := fs.String("search", "", "full-text search")
	court := fs.String("court", "", "filter judgments by court")
	ministry := fs.String("ministry", "", "filter acts by ministry")
	year := fs.String("year", "", "filter acts by year")
	favorite := fs.Bool("favorite", false, "only favorites")
	limit := fs.Int("limit", 20, "page size")
	offset := fs.Int("offset", 0, "page offset")
	move := fs.Int64("move", 0, "move this bookmark id into the folder given by -to")
	to := fs.Int64("to", 0, "target folder id for -move")
	star := fs.Int64("star", 0, "mark this bookmark id as a favorite")
	unstar := fs.Int64("unstar", 0, "clear the favorite flag on this bookmark id")
	fs.Parse(args)

	switch {
	case *move > 0:
		if *to <= 0 {
			fmt.Println("-move needs a target folder, pass -to <folder id>")
			os.Exit(1)
		}
		b, err := client.UpdateBookmark(ctx, *move, domain.BookmarkUpdate{FolderID: to})
		if err != nil {
			log.Fatalf("Move bookmark failed: %v", err)
		}
		fmt.Printf("bookmark %d moved to folder %d\n", b.ID, *to)
		return
	case *star > 0 || *unstar > 0:
		id, fav := *star, true
		if *unstar > 0 {
			id, fav = *unstar, false
		}
		b, err := client.UpdateBookmark(ctx, id, domain.BookmarkUpdate{IsFavorite: &fav})
		if err != nil {
			log.Fatalf("Update bookmark failed: %v", err)
		}
		if fav {
			fmt.Printf("bookmark %d marked as favorite\n", b.ID)
		} else {
			fmt.Printf("bookmark %d unmarked\n", b.ID)
		}
		return
	}

	q := domain.BookmarkQuery{
		Limit:    *limit,
		Offset:   *offset,
		Type:     *typ,
		Search:   *search,
		Court:    *court,
		Ministry: *ministry,
		Year:     *year,
	}
	if *folderID > 0 {
		q.FolderID = folderID
	}
	if *favorite {
		t := true
		q.IsFavorite = &t
	}

	page, err := client.GetUserBookmarks(ctx, q)
	if err != nil {
		if domain.IsNotFound(err) {
			fmt.Println("no bookmarks")
			return
		}
		log.Fatalf("Listing bookmarks failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		log.Fatalf("Failed to encode bookmarks: %v", err)
	}
}

func doFolders(ctx context.Context, client *api.Client, args []string) {
	fs := flag.NewFlagSet("folders", flag.ExitOnError)
	create := fs.String("create", "", "create a folder with this name")
	fs.Parse(args)

	folders := services.NewFolderService(client)
	if *create != "" {
		folder, err := folders.Create(ctx, *create)
		if err != nil {
			log.Fatalf("Create folder failed: %v", err)
		}
		fmt.Printf("created folder %d %q\n", folder.ID, folder.Name)
		// The create response carries only the new folder; re-fetch for
		// the authoritative list.
	}

	for _, f := range folders.List(ctx) {
		fmt.Printf("%d\t%s (%d bookmarks)\n", f.ID, f.Name, f.BookmarkCount)
	}
}

func doNotesFolders(ctx context.Context, client *api.Client, args []string) {
	fs := flag.NewFlagSet("notes-folders", flag.ExitOnError)
	create := fs.String("create", "", "create a notes folder with this name")
	del := fs.Int64("delete", 0, "delete the notes folder with this id")
	fs.Parse(args)

	folders := services.NewNotesFolderService(client)
	switch {
	case *create != "":
		folder, err := folders.Create(ctx, *create)
		if err != nil {
			log.Fatalf("Create notes folder failed: %v", err)
		}
		fmt.Printf("created notes folder %d %q\n", folder.ID, folder.Name)
	case *del > 0:
		if err := folders.Delete(ctx, *del); err != nil {
			log.Fatalf("Delete notes folder failed: %v", err)
		}
		fmt.Println("notes folder deleted")
	}

	for _, f := range folders.List(ctx) {
		fmt.Printf("%d\t%s\n", f.ID, f.Name)
	}
}
