package render

import (
	"strings"

	"github.com/nkoivis/chatview/internal/chat"
	"github.com/nkoivis/chatview/internal/textwidth"
)

// DefaultSelfLabel is how the viewer's own messages are attributed.
const DefaultSelfLabel = "You"

// PinnedPlaceholder stands in for pinned messages whose content is not text
// (attachments, cards); their pinned status stays visible either way.
const PinnedPlaceholder = "[Pinned message (non-text)]"

const navBanner = "Navigation:\n   /PINNED → search pinned\n   q       → quit pager\n"
const pinnedBanner = "📌 Showing ONLY pinned messages\n"

// Compose renders messages in file order as one continuous document: a
// banner, then for each message a sender/timestamp header and an aligned
// bubble. Messages without text are dropped unless pinned. selfLabel
// defaults to DefaultSelfLabel when empty.
func Compose(msgs []chat.Message, viewerEmail, selfLabel string, pinnedOnly bool, geo Geometry) string {
	if selfLabel == "" {
		selfLabel = DefaultSelfLabel
	}

	var out []string
	if pinnedOnly {
		out = append(out, pinnedBanner)
	} else {
		out = append(out, navBanner)
	}

	for _, m := range msgs {
		text := strings.TrimSpace(m.Text)
		if text == "" {
			if !m.Pinned() {
				continue
			}
			text = PinnedPlaceholder
		}

		mine := m.Creator.Email == viewerEmail

		sender := m.Creator.Name
		if sender == "" {
			sender = "Unknown"
		}
		align := AlignLeft
		if mine {
			sender = selfLabel
			align = AlignRight
		}

		pin := ""
		if m.Pinned() {
			pin = "[PINNED] "
		}
		header := pin + sender + " • " + chat.CleanDate(m.CreatedDate)
		if mine {
			header = textwidth.PadLeft(header, geo.TermWidth)
		}

		out = append(out, "\n"+header)
		out = append(out, Bubble(text, align, geo))
	}

	return strings.Join(out, "\n")
}
