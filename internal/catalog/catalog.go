// Package catalog builds the selectable conversation list for one archive:
// each chat folder classified as DM or Space, labeled with its counterpart
// name or group title, and annotated with its pinned-message count.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nkoivis/chatview/internal/chat"
	"github.com/nkoivis/chatview/internal/textwidth"
)

type Kind int

const (
	KindDM Kind = iota
	KindSpace
)

// Filter selects which conversations appear in the catalog.
type Filter int

const (
	FilterDM Filter = iota
	FilterSpace
	FilterPinnedOnly
)

// Entry is one catalog row: a conversation folder with its resolved display
// label and pinned count. PinnedCount is computed once at build time.
type Entry struct {
	Folder      string
	Kind        Kind
	Label       string
	PinnedCount int
}

// labelColumn is the padded width of the label field in a catalog line,
// keeping the folder ids in one column for the selector.
const labelColumn = 45

// String formats the entry as a selector candidate line. The folder id after
// the final "|" is what FolderFromSelection recovers.
func (e Entry) String() string {
	kind := "DM "
	if e.Kind == KindSpace {
		kind = "SP "
	}
	label := e.Label
	if e.PinnedCount > 0 {
		label += fmt.Sprintf(" (📌 %d)", e.PinnedCount)
	}
	return fmt.Sprintf("%s %s | %s", kind, textwidth.Pad(label, labelColumn), e.Folder)
}

// FolderFromSelection recovers the conversation folder id from a selected
// catalog line.
func FolderFromSelection(line string) string {
	i := strings.LastIndex(line, "|")
	if i < 0 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[i+1:])
}

// Build scans root in lexical folder order and produces one entry per chat
// conversation. Folders without a messages file, or whose name signals
// neither a DM nor a Space, are skipped; they are export metadata, not
// conversations. With FilterPinnedOnly, both kinds are included but only
// when they hold at least one pinned message.
func Build(root, viewerEmail string, filter Filter) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read archive root: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var entries []Entry
	for _, folder := range names {
		folderPath := filepath.Join(root, folder)
		msgPath := filepath.Join(folderPath, chat.MessagesFile)
		if _, err := os.Stat(msgPath); err != nil {
			continue
		}

		isDM := strings.HasPrefix(folder, "DM")
		isSpace := strings.HasPrefix(folder, "Space")
		if !isDM && !isSpace {
			continue
		}

		msgs, err := chat.LoadMessages(msgPath)
		if err != nil {
			msgs = nil // unreadable transcript reads as empty
		}
		pinned := chat.CountPinned(msgs)

		if filter == FilterPinnedOnly && pinned == 0 {
			continue
		}

		switch {
		case isDM && (filter == FilterDM || filter == FilterPinnedOnly):
			entries = append(entries, Entry{
				Folder:      folder,
				Kind:        KindDM,
				Label:       chat.DMParticipant(msgs, viewerEmail).String(),
				PinnedCount: pinned,
			})
		case isSpace && (filter == FilterSpace || filter == FilterPinnedOnly):
			label := folder
			if title, ok := chat.SpaceTitle(folderPath); ok {
				label = title
			}
			entries = append(entries, Entry{
				Folder:      folder,
				Kind:        KindSpace,
				Label:       label,
				PinnedCount: pinned,
			})
		}
	}

	return entries, nil
}

// Lines renders entries as selector candidates.
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}
