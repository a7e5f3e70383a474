package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nkoivis/chatview/internal/archive"
	"github.com/nkoivis/chatview/internal/catalog"
	"github.com/nkoivis/chatview/internal/chat"
	"github.com/nkoivis/chatview/internal/config"
	"github.com/nkoivis/chatview/internal/render"
	"github.com/nkoivis/chatview/internal/ui"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("chatview %s\n", version)
			os.Exit(0)
		case "--help", "-h":
			fmt.Println("chatview — browse a Google Chat Takeout export in your terminal")
			fmt.Println("\nusage: chatview")
			fmt.Println("\nDrop a takeout-*.zip in your Downloads folder (or point")
			fmt.Println("downloads_dir in the config at it) and run without arguments.")
			os.Exit(0)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	fmt.Println("🔍 Checking requirements...")
	selector := ui.NewSelector()
	if ui.HaveFzf() {
		fmt.Println("✅ All requirements satisfied.")
	} else {
		fmt.Println("fzf not found — falling back to the built-in selector.")
		fmt.Println(ui.FzfHint())
	}
	fmt.Println()

	downloads := cfg.DownloadsDir
	if downloads == "" {
		downloads = archive.DownloadsDir()
	}

	groups, err := archive.Locate(downloads)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			fmt.Println("❌ No takeout-*.zip found in", downloads)
			return nil
		}
		return err
	}
	fmt.Println("✅ Using Groups folder:", groups)

	viewer := cfg.ViewerEmail
	if viewer == "" {
		detected, ok := chat.DetectViewerEmail(groups, cfg.IdentitySampleLimit)
		if ok {
			viewer = detected
		} else {
			viewer, err = promptEmail()
			if err != nil {
				return err
			}
		}
	}
	fmt.Println("✅ Your email:", viewer)

	category, err := selector.Select([]string{"DM", "SPACE", "PINNED ONLY"}, "Select Category: ")
	if err != nil {
		return err
	}
	if category == "" {
		return nil // selection aborted
	}

	filter := catalog.FilterDM
	pinnedOnly := false
	switch {
	case strings.HasPrefix(category, "PINNED"):
		filter = catalog.FilterPinnedOnly
		pinnedOnly = true
	case strings.HasPrefix(category, "SPACE"):
		filter = catalog.FilterSpace
	}

	entries, err := catalog.Build(groups, viewer, filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("❌ No chats found.")
		return nil
	}

	selected, err := selector.Select(catalog.Lines(entries), "Select Chat: ")
	if err != nil {
		return err
	}
	if selected == "" {
		return nil
	}
	folder := catalog.FolderFromSelection(selected)

	msgs, err := chat.LoadMessages(filepath.Join(groups, folder, chat.MessagesFile))
	if err != nil {
		msgs = nil // unreadable transcript shows as empty
	}
	if pinnedOnly {
		msgs = chat.FilterPinned(msgs)
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	geo := render.NewGeometry(width, cfg.BubbleWidthFactor)

	doc := render.Compose(msgs, viewer, cfg.SelfLabel, pinnedOnly, geo)
	return ui.ResolvePager().Show(doc)
}

func promptEmail() (string, error) {
	fmt.Print("Enter your email: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read email: %w", err)
	}
	return strings.TrimSpace(line), nil
}
