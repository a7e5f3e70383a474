package chat

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConversation creates root/folder/messages.json with the given JSON.
func writeConversation(t *testing.T, root, folder, content string) {
	t.Helper()
	dir := filepath.Join(root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, MessagesFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectViewerEmail(t *testing.T) {
	root := t.TempDir()
	// a@x.com appears in both conversations, counterparts only in one each
	writeConversation(t, root, "DM_1", `{"messages":[
		{"creator":{"name":"Me","email":"a@x.com"},"text":"hi"},
		{"creator":{"name":"Bob","email":"b@x.com"},"text":"hey"},
		{"creator":{"name":"Me","email":"a@x.com"},"text":"yo"}]}`)
	writeConversation(t, root, "DM_2", `{"messages":[
		{"creator":{"name":"Carol","email":"c@x.com"},"text":"hello"},
		{"creator":{"name":"Me","email":"a@x.com"},"text":"hello back"}]}`)

	email, ok := DetectViewerEmail(root, 0)
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	if email != "a@x.com" {
		t.Errorf("email = %q, want a@x.com", email)
	}
}

func TestDetectViewerEmail_Empty(t *testing.T) {
	root := t.TempDir()
	if _, ok := DetectViewerEmail(root, 0); ok {
		t.Error("empty archive should not resolve an identity")
	}

	// Conversations without creator emails also resolve nothing
	writeConversation(t, root, "DM_1", `{"messages":[{"text":"anon"}]}`)
	if _, ok := DetectViewerEmail(root, 0); ok {
		t.Error("archive without creator emails should not resolve an identity")
	}
}

func TestDetectViewerEmail_SampleLimit(t *testing.T) {
	root := t.TempDir()
	// b@x.com dominates only beyond the sample bound
	writeConversation(t, root, "DM_1", `{"messages":[
		{"creator":{"email":"a@x.com"},"text":"1"},
		{"creator":{"email":"a@x.com"},"text":"2"},
		{"creator":{"email":"b@x.com"},"text":"3"},
		{"creator":{"email":"b@x.com"},"text":"4"},
		{"creator":{"email":"b@x.com"},"text":"5"}]}`)

	email, ok := DetectViewerEmail(root, 2)
	if !ok {
		t.Fatal("expected detection to succeed")
	}
	if email != "a@x.com" {
		t.Errorf("email = %q, want a@x.com (bound at 2 messages)", email)
	}
}

func TestDMParticipant(t *testing.T) {
	msgs := []Message{
		{Creator: Creator{Name: "Me", Email: "a@x.com"}, Text: "hi"},
		{Creator: Creator{Name: "Bob", Email: "b@x.com"}, Text: "hey"},
	}
	got := DMParticipant(msgs, "a@x.com")
	if got.Kind != NameResolved || got.Name != "Bob" {
		t.Errorf("DMParticipant = %+v, want resolved Bob", got)
	}
	if got.String() != "Bob" {
		t.Errorf("String() = %q", got.String())
	}
}

func TestDMParticipant_SkipsUnknown(t *testing.T) {
	msgs := []Message{
		{Creator: Creator{Name: "Unknown", Email: "b@x.com"}, Text: "?"},
		{Creator: Creator{Name: "", Email: "c@x.com"}, Text: "?"},
		{Creator: Creator{Name: "Carol", Email: "c@x.com"}, Text: "!"},
	}
	got := DMParticipant(msgs, "a@x.com")
	if got.Kind != NameResolved || got.Name != "Carol" {
		t.Errorf("DMParticipant = %+v, want resolved Carol", got)
	}
}

func TestDMParticipant_DeletedUser(t *testing.T) {
	// No counterpart messages at all
	got := DMParticipant(nil, "a@x.com")
	if got.Kind != NameDeletedUser {
		t.Errorf("Kind = %v, want NameDeletedUser", got.Kind)
	}
	if got.String() != "Deleted User" {
		t.Errorf("String() = %q", got.String())
	}

	// Only own messages and unknowns
	msgs := []Message{
		{Creator: Creator{Name: "Me", Email: "a@x.com"}, Text: "hi"},
		{Creator: Creator{Name: "Unknown", Email: "b@x.com"}, Text: "?"},
	}
	if got := DMParticipant(msgs, "a@x.com"); got.Kind != NameDeletedUser {
		t.Errorf("Kind = %v, want NameDeletedUser", got.Kind)
	}
}

func TestSpaceTitle(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, GroupInfoFile), []byte(`{"name":"Team Chat"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	title, ok := SpaceTitle(dir)
	if !ok || title != "Team Chat" {
		t.Errorf("SpaceTitle = %q, %v", title, ok)
	}
}

func TestSpaceTitle_Missing(t *testing.T) {
	if _, ok := SpaceTitle(t.TempDir()); ok {
		t.Error("missing group info should report false")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, GroupInfoFile), []byte(`{bad`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := SpaceTitle(dir); ok {
		t.Error("malformed group info should report false")
	}

	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, GroupInfoFile), []byte(`{"name":""}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := SpaceTitle(dir); ok {
		t.Error("empty name should report false")
	}
}
