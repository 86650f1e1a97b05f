package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.minekube.com/common/minecraft/component"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/chat"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/title"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

func TestTracker(t *testing.T) {
	tr := NewTracker(util.DefaultTranslations)

	times := &title.Times{FadeIn: 5, Stay: 40, FadeOut: 5}
	text := new(title.Text)
	text.Component = *chat.FromText("Welcome")
	sub := new(title.Subtitle)
	sub.Component = *chat.FromText("to the server")

	steps := []struct {
		name   string
		p      proto.Packet
		action title.Action
		check  func(t *testing.T, s State)
	}{
		{"times", times, title.SetTimes, func(t *testing.T, s State) {
			assert.Equal(t, int32(40), s.Stay)
			assert.False(t, s.Visible)
		}},
		{"subtitle", sub, title.SetSubtitle, func(t *testing.T, s State) {
			assert.Equal(t, "to the server", util.StripLegacy(s.Subtitle))
		}},
		{"title", text, title.SetTitle, func(t *testing.T, s State) {
			assert.Equal(t, "Welcome", util.StripLegacy(s.Title))
			assert.True(t, s.Visible)
		}},
		{"hide", &title.Clear{Action: title.Hide}, title.Hide, func(t *testing.T, s State) {
			assert.False(t, s.Visible)
			assert.Equal(t, "Welcome", util.StripLegacy(s.Title))
		}},
		{"reset", &title.Clear{Action: title.Reset}, title.Reset, func(t *testing.T, s State) {
			assert.Empty(t, s.Title)
			assert.Empty(t, s.Subtitle)
			assert.Equal(t, int32(DefaultStay), s.Stay)
		}},
	}
	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			u, ok := tr.Apply(step.p)
			require.True(t, ok)
			assert.Equal(t, step.action, u.Action)
			step.check(t, u.State)
			assert.Equal(t, tr.State(), u.State)
		})
	}
}

func TestTracker_IgnoresOtherPackets(t *testing.T) {
	_, ok := NewTracker(util.DefaultTranslations).Apply(&packet.KeepAlive{})
	assert.False(t, ok)
}

func TestTracker_Translates(t *testing.T) {
	bar := new(title.Actionbar)
	bar.Component = *chat.FromComponent(&component.Translation{
		Key:  "game.mode",
		With: []component.Component{&component.Text{Content: "creative"}},
	})
	tr := NewTracker(util.Translations{"game.mode": "Mode: %s"})
	u, ok := tr.Apply(bar)
	require.True(t, ok)
	assert.Equal(t, "Mode: creative", util.StripLegacy(u.Actionbar))
}
