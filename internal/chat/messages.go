// Package chat loads and normalizes Google Chat Takeout conversation data:
// per-conversation message files, pinned-label detection, timestamp cleanup,
// and best-effort resolution of the archive owner and DM counterparts.
package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// MessagesFile is the per-conversation transcript inside a Takeout export.
	MessagesFile = "messages.json"
	// GroupInfoFile carries group metadata (title) for Space conversations.
	GroupInfoFile = "group_info.json"
)

// ErrMalformed reports a messages file whose JSON is neither an object with
// a "messages" list nor a bare list. Callers treat it as an empty transcript.
var ErrMalformed = errors.New("malformed messages file")

type Creator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Label struct {
	Type string `json:"label_type"`
}

// Message is one record of a conversation transcript, as exported. Fields
// not needed for display are ignored during decoding.
type Message struct {
	Creator     Creator `json:"creator"`
	Text        string  `json:"text"`
	CreatedDate string  `json:"created_date"`
	Labels      []Label `json:"message_labels"`
}

// Pinned reports whether the message carries a PINNED label.
func (m Message) Pinned() bool {
	for _, l := range m.Labels {
		if l.Type == "PINNED" {
			return true
		}
	}
	return false
}

// HasText reports whether the message has displayable text content.
// Attachment-only and reaction records export with an empty text field.
func (m Message) HasText() bool {
	return strings.TrimSpace(m.Text) != ""
}

func CountPinned(msgs []Message) int {
	n := 0
	for _, m := range msgs {
		if m.Pinned() {
			n++
		}
	}
	return n
}

// FilterPinned returns the pinned subset of msgs in original order.
func FilterPinned(msgs []Message) []Message {
	var pinned []Message
	for _, m := range msgs {
		if m.Pinned() {
			pinned = append(pinned, m)
		}
	}
	return pinned
}

// LoadMessages reads a conversation transcript. Exports wrap the list in
// {"messages": [...]} but older ones are a bare list; both are accepted.
// Every caller treats an error as "no messages" — a broken or missing file
// never aborts a run.
func LoadMessages(path string) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return decodeMessages(data)
}

func decodeMessages(data []byte) ([]Message, error) {
	var wrapper struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Messages != nil {
		return wrapper.Messages, nil
	}

	var list []Message
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	return nil, ErrMalformed
}

const (
	takeoutDateLayout = "Monday, 2 January 2006 at 15:04:05 UTC"
	displayDateLayout = "2006-01-02 15:04"
)

// CleanDate reformats a Takeout timestamp ("Friday, 5 June 2020 at 14:30:00
// UTC") into a compact display form. Anything that does not parse passes
// through unchanged; this never fails.
func CleanDate(s string) string {
	t, err := time.Parse(takeoutDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(displayDateLayout)
}
