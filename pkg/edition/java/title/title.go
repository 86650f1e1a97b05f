// Package title tracks the title overlay the server shows to the player.
package title

import (
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

// Vanilla default times in ticks.
const (
	DefaultFadeIn  = 10
	DefaultStay    = 70
	DefaultFadeOut = 20
)

// State is the title as currently shown.
// Texts carry § formatting codes.
type State struct {
	Title, Subtitle, Actionbar string
	FadeIn, Stay, FadeOut      int32
	// Visible is false after a hide or reset until the next title text.
	Visible bool
}

// Update is reported for every title packet.
type Update struct {
	Action title.Action
	State
}

// Tracker folds title packets into a State.
// It is not safe for concurrent use.
type Tracker struct {
	tr    util.Translations
	state State
}

// NewTracker returns a Tracker with the default times that renders
// texts with tr.
func NewTracker(tr util.Translations) *Tracker {
	t := &Tracker{tr: tr}
	t.reset()
	return t
}

// State returns the current state.
func (t *Tracker) State() State { return t.state }

// Apply updates the state from p. It returns false if p is not a title packet.
func (t *Tracker) Apply(p proto.Packet) (Update, bool) {
	var action title.Action
	switch p := p.(type) {
	case *title.Text:
		action = title.SetTitle
		t.state.Title = p.Component.Legacy(t.tr)
		t.state.Visible = true
	case *title.Subtitle:
		action = title.SetSubtitle
		t.state.Subtitle = p.Component.Legacy(t.tr)
	case *title.Actionbar:
		action = title.SetActionBar
		t.state.Actionbar = p.Component.Legacy(t.tr)
	case *title.Times:
		action = title.SetTimes
		t.state.FadeIn, t.state.Stay, t.state.FadeOut = p.FadeIn, p.Stay, p.FadeOut
	case *title.Clear:
		action = p.Action
		if p.Action == title.Reset {
			t.reset()
		} else {
			t.state.Visible = false
		}
	default:
		return Update{}, false
	}
	return Update{Action: action, State: t.state}, true
}

func (t *Tracker) reset() {
	t.state = State{FadeIn: DefaultFadeIn, Stay: DefaultStay, FadeOut: DefaultFadeOut}
}
