package component

import (
	"fmt"
	"io"
	"reflect"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// SubType identifies a kind of subcomponent.
type SubType int

const (
	SubBlockPredicate SubType = iota
	SubProperty
	SubIDSet
	SubFireworkExplosion
	SubPotionEffect
	SubEffectDetail
	SubEffect
	SubStewEffect
	SubRule
	SubEnchantment
	SubAttributeModifier
	SubBannerLayer
	SubBee
	SubWritablePage
	SubWrittenPage
	SubProfileProperty
	SubSoundEvent
	SubTrimMaterial
	SubTrimPattern
	SubInstrument
	SubJukeboxSong
	SubBlockStateProperty
)

var subTypeNames = [...]string{
	"block_predicate", "property", "id_set", "firework_explosion",
	"potion_effect", "effect_detail", "effect", "stew_effect", "rule",
	"enchantment", "attribute_modifier", "banner_layer", "bee",
	"writable_page", "written_page", "profile_property", "sound_event",
	"trim_material", "trim_pattern", "instrument", "jukebox_song",
	"block_state_property",
}

func (t SubType) String() string {
	if t < 0 || int(t) >= len(subTypeNames) {
		return fmt.Sprintf("unknown(%d)", int(t))
	}
	return subTypeNames[t]
}

// SubRegistry resolves a subcomponent type for a protocol version.
// Exactly one factory is registered per (protocol, type) pair.
type SubRegistry struct {
	Protocols map[proto.Protocol]map[SubType]func() SubComponent
}

// NewSubRegistry returns an empty registry for the session versions.
func NewSubRegistry() *SubRegistry {
	r := &SubRegistry{Protocols: map[proto.Protocol]map[SubType]func() SubComponent{}}
	for _, ver := range version.SessionVersions {
		r.Protocols[ver.Protocol] = map[SubType]func() SubComponent{}
	}
	return r
}

// SubMapping binds a factory starting at a protocol version.
type SubMapping struct {
	Protocol proto.Protocol
	New      func() SubComponent
}

func since(version *proto.Version, fn func() SubComponent) *SubMapping {
	return &SubMapping{Protocol: version.Protocol, New: fn}
}

// Register binds tag to the factories of the mappings, each valid until
// the next mapping's protocol. Versions before the first mapping stay unbound.
func (r *SubRegistry) Register(tag SubType, mappings ...*SubMapping) {
	for _, ver := range version.SessionVersions {
		var found *SubMapping
		for _, mp := range mappings {
			if mp.Protocol > ver.Protocol {
				break
			}
			found = mp
		}
		if found == nil {
			continue
		}
		factories := r.Protocols[ver.Protocol]
		if _, ok := factories[tag]; ok {
			panic(fmt.Sprintf("subcomponent %s is already registered for protocol %s", tag, ver.Protocol))
		}
		factories[tag] = found.New
	}
}

// New returns a zero valued subcomponent for tag.
// Tags not registered for the protocol return an errs.KindUnsupported error.
func (r *SubRegistry) New(protocol proto.Protocol, tag SubType) (SubComponent, error) {
	fn, ok := r.Protocols[protocol][tag]
	if !ok {
		return nil, errs.Unsupportedf("subcomponent %s is not registered for protocol %s", tag, version.Protocol(protocol))
	}
	return fn(), nil
}

// Parse decodes the subcomponent tag from rd.
func (r *SubRegistry) Parse(c *Context, tag SubType, rd io.Reader) (SubComponent, error) {
	sub, err := r.New(c.Protocol, tag)
	if err != nil {
		return nil, err
	}
	err = util.RecoverFunc(func() error {
		return sub.Decode(c, rd)
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindDesync, tag.String(), err)
	}
	return sub, nil
}

// readSub parses a subcomponent through the context's registry
// and panics on error.
func readSub[T SubComponent](c *Context, tag SubType, rd io.Reader) T {
	sub, err := c.subs().Parse(c, tag, rd)
	if err != nil {
		panic(err)
	}
	v, ok := sub.(T)
	if !ok {
		panic(errs.Unsupportedf("subcomponent %s decoded as unexpected type %T", tag, sub))
	}
	return v
}

// writeSub encodes a subcomponent and panics on error.
func writeSub(c *Context, wr io.Writer, field string, sub SubComponent) {
	if sub == nil || reflect.ValueOf(sub).IsNil() {
		panic(errs.Missing(field))
	}
	if err := sub.Encode(c, wr); err != nil {
		panic(err)
	}
}
