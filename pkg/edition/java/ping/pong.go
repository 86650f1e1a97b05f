package ping

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/uuid"
)

// ServerPing is a server list entry as returned in a status response.
type ServerPing struct {
	Version     Version  `json:"version"`
	Players     *Players `json:"players,omitempty"`
	// Description is a text component, kept as JSON.
	Description        json.RawMessage `json:"description,omitempty"`
	Favicon            string          `json:"favicon,omitempty"`
	EnforcesSecureChat bool            `json:"enforcesSecureChat,omitempty"`
}

type Version struct {
	Protocol proto.Protocol `json:"protocol"`
	Name     string         `json:"name"`
}

type Players struct {
	Online int            `json:"online"`
	Max    int            `json:"max"`
	Sample []SamplePlayer `json:"sample,omitempty"`
}

type SamplePlayer struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

// ParseServerPing decodes the JSON of a status response.
func ParseServerPing(status string) (*ServerPing, error) {
	p := new(ServerPing)
	if err := json.Unmarshal([]byte(status), p); err != nil {
		return nil, fmt.Errorf("error decoding status: %w", err)
	}
	return p, nil
}

// MOTD renders the description as § coded text.
// Old servers send a plain string instead of a component.
func (p *ServerPing) MOTD(tr util.Translations) string {
	if len(p.Description) == 0 || string(p.Description) == "null" {
		return ""
	}
	var s string
	if json.Unmarshal(p.Description, &s) == nil {
		return s
	}
	h := chat.ComponentHolder{Protocol: p.Version.Protocol, JSON: p.Description}
	return h.Legacy(tr)
}

const faviconPrefix = "data:image/png;base64,"

// FaviconPNG returns the decoded server icon, nil if there is none.
func (p *ServerPing) FaviconPNG() ([]byte, error) {
	if p.Favicon == "" {
		return nil, nil
	}
	data, ok := strings.CutPrefix(p.Favicon, faviconPrefix)
	if !ok {
		return nil, fmt.Errorf("favicon is not a png data url")
	}
	b, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(data, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("error decoding favicon: %w", err)
	}
	return b, nil
}
