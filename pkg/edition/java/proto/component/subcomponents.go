package component

import (
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
)

// Subcomponents is the default subcomponent registry.
// It is populated at init and read-only afterwards.
var Subcomponents = NewSubRegistry()

func newOf[T any, P interface {
	*T
	SubComponent
}]() func() SubComponent {
	return func() SubComponent { return P(new(T)) }
}

func init() {
	r := Subcomponents
	v := version.Minecraft_1_20_5

	r.Register(SubBlockPredicate, since(v, newOf[BlockPredicate]()))
	r.Register(SubProperty, since(v, newOf[BlockProperty]()))
	r.Register(SubIDSet, since(v, newOf[IDSet]()))
	r.Register(SubBlockStateProperty, since(v, newOf[BlockStateProperty]()))
	r.Register(SubRule, since(v, newOf[Rule]()))

	r.Register(SubEffectDetail, since(v, newOf[EffectDetail]()))
	r.Register(SubPotionEffect, since(v, newOf[PotionEffect]()))
	r.Register(SubEffect, since(v, newOf[FoodEffect]()))
	r.Register(SubStewEffect, since(v, newOf[StewEffect]()))

	r.Register(SubEnchantment, since(v, newOf[Enchantment]()))
	r.Register(SubAttributeModifier,
		since(v, newOf[UUIDAttributeModifier]()),
		since(version.Minecraft_1_21, newOf[KeyedAttributeModifier]()),
	)
	r.Register(SubFireworkExplosion, since(v, newOf[Explosion]()))
	r.Register(SubBannerLayer, since(v, newOf[BannerLayer]()))
	r.Register(SubBee, since(v, newOf[Bee]()))
	r.Register(SubWritablePage, since(v, newOf[WritablePage]()))
	r.Register(SubWrittenPage, since(v, newOf[WrittenPage]()))
	r.Register(SubProfileProperty, since(v, newOf[ProfileProperty]()))

	r.Register(SubSoundEvent, since(v, newOf[SoundEvent]()))
	r.Register(SubTrimMaterial, since(v, newOf[TrimMaterial]()))
	r.Register(SubTrimPattern, since(v, newOf[TrimPattern]()))
	r.Register(SubInstrument, since(v, newOf[Instrument]()))
	r.Register(SubJukeboxSong, since(version.Minecraft_1_21, newOf[JukeboxSong]()))
}
