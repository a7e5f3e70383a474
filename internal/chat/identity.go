package chat

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultSampleLimit bounds how many messages per conversation the viewer
// identity scan reads. Large transcripts make the tally no more accurate.
const DefaultSampleLimit = 200

// unknownName is the placeholder the export writes for creators whose
// account no longer resolves to a profile.
const unknownName = "Unknown"

// NameKind distinguishes a resolved counterpart name from the sentinel used
// when no message in the thread carries a usable one.
type NameKind int

const (
	NameResolved NameKind = iota
	NameDeletedUser
)

// DisplayName is the outcome of DM counterpart resolution. Call sites branch
// on Kind rather than comparing label strings.
type DisplayName struct {
	Kind NameKind
	Name string
}

func (n DisplayName) String() string {
	if n.Kind == NameDeletedUser {
		return "Deleted User"
	}
	return n.Name
}

// DetectViewerEmail guesses the archive owner by tallying message creators
// across every conversation under root: the owner is a party to all of them,
// so their address dominates the tally. Only the first sampleLimit messages
// of each conversation are read (pass 0 for DefaultSampleLimit). Returns
// false when the archive yields no creator addresses at all; the caller must
// then ask the user.
func DetectViewerEmail(root string, sampleLimit int) (string, bool) {
	if sampleLimit <= 0 {
		sampleLimit = DefaultSampleLimit
	}

	counts := make(map[string]int)

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		msgs, err := LoadMessages(filepath.Join(root, e.Name(), MessagesFile))
		if err != nil {
			continue
		}
		if len(msgs) > sampleLimit {
			msgs = msgs[:sampleLimit]
		}
		for _, m := range msgs {
			if m.Creator.Email != "" {
				counts[m.Creator.Email]++
			}
		}
	}

	best := ""
	bestCount := 0
	for email, n := range counts {
		if n > bestCount || (n == bestCount && email < best) {
			best = email
			bestCount = n
		}
	}
	return best, best != ""
}

// DMParticipant scans a DM transcript in file order for the first sender who
// is not the viewer and has a usable name. A thread where the counterpart
// never speaks (or only appears as "Unknown") resolves to the deleted-user
// sentinel.
func DMParticipant(msgs []Message, viewerEmail string) DisplayName {
	for _, m := range msgs {
		if m.Creator.Email == viewerEmail {
			continue
		}
		if name := m.Creator.Name; name != "" && name != unknownName {
			return DisplayName{Kind: NameResolved, Name: name}
		}
	}
	return DisplayName{Kind: NameDeletedUser}
}

// SpaceTitle reads the group metadata file in a Space conversation folder
// and returns its title. Missing file, bad JSON, or an empty name all report
// false; the caller falls back to the folder id.
func SpaceTitle(folderPath string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(folderPath, GroupInfoFile))
	if err != nil {
		return "", false
	}

	var info struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &info); err != nil || info.Name == "" {
		return "", false
	}
	return info.Name, true
}
