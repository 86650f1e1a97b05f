package component

import (
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/version"
)

// Components is the default component catalogue.
// It is populated at init and read-only afterwards.
var Components = NewCatalogue()

func init() {
	c := Components
	v := version.Minecraft_1_20_5
	v121 := version.Minecraft_1_21

	c.Register("minecraft:custom_data", (*CustomData)(nil), m(0, v))
	c.Register("minecraft:max_stack_size", (*MaxStackSize)(nil), m(1, v))
	c.Register("minecraft:max_damage", (*MaxDamage)(nil), m(2, v))
	c.Register("minecraft:damage", (*Damage)(nil), m(3, v))
	c.Register("minecraft:unbreakable", (*Unbreakable)(nil), m(4, v))
	c.Register("minecraft:custom_name", (*CustomName)(nil), m(5, v))
	c.Register("minecraft:item_name", (*ItemName)(nil), m(6, v))
	c.Register("minecraft:lore", (*Lore)(nil), m(7, v))
	c.Register("minecraft:rarity", (*RarityComponent)(nil), m(8, v))
	c.Register("minecraft:enchantments", (*Enchantments)(nil), m(9, v))
	c.Register("minecraft:can_place_on", (*CanPlaceOn)(nil), m(10, v))
	c.Register("minecraft:can_break", (*CanBreak)(nil), m(11, v))
	c.Register("minecraft:attribute_modifiers", (*AttributeModifiers)(nil), m(12, v))
	c.Register("minecraft:custom_model_data", (*CustomModelData)(nil), m(13, v))
	c.Register("minecraft:hide_additional_tooltip", (*HideAdditionalTooltip)(nil), m(14, v))
	c.Register("minecraft:hide_tooltip", (*HideTooltip)(nil), m(15, v))
	c.Register("minecraft:repair_cost", (*RepairCost)(nil), m(16, v))
	c.Register("minecraft:creative_slot_lock", (*CreativeSlotLock)(nil), m(17, v))
	c.Register("minecraft:enchantment_glint_override", (*EnchantmentGlintOverride)(nil), m(18, v))
	c.Register("minecraft:intangible_projectile", (*IntangibleProjectile)(nil), m(19, v))
	c.Register("minecraft:food", (*Food)(nil), m(20, v))
	c.Register("minecraft:fire_resistant", (*FireResistant)(nil), m(21, v))
	c.Register("minecraft:tool", (*Tool)(nil), m(22, v))
	c.Register("minecraft:stored_enchantments", (*StoredEnchantments)(nil), m(23, v))
	c.Register("minecraft:dyed_color", (*DyedColor)(nil), m(24, v))
	c.Register("minecraft:map_color", (*MapColor)(nil), m(25, v))
	c.Register("minecraft:map_id", (*MapID)(nil), m(26, v))
	c.Register("minecraft:map_decorations", (*MapDecorations)(nil), m(27, v))
	c.Register("minecraft:map_post_processing", (*MapPostProcessingComponent)(nil), m(28, v))
	c.Register("minecraft:charged_projectiles", (*ChargedProjectiles)(nil), m(29, v))
	c.Register("minecraft:bundle_contents", (*BundleContents)(nil), m(30, v))
	c.Register("minecraft:potion_contents", (*PotionContents)(nil), m(31, v))
	c.Register("minecraft:suspicious_stew_effects", (*SuspiciousStewEffects)(nil), m(32, v))
	c.Register("minecraft:writable_book_content", (*WritableBookContent)(nil), m(33, v))
	c.Register("minecraft:written_book_content", (*WrittenBookContent)(nil), m(34, v))
	c.Register("minecraft:trim", (*Trim)(nil), m(35, v))
	c.Register("minecraft:debug_stick_state", (*DebugStickState)(nil), m(36, v))
	c.Register("minecraft:entity_data", (*EntityData)(nil), m(37, v))
	c.Register("minecraft:bucket_entity_data", (*BucketEntityData)(nil), m(38, v))
	c.Register("minecraft:block_entity_data", (*BlockEntityData)(nil), m(39, v))
	c.Register("minecraft:instrument", (*InstrumentComponent)(nil), m(40, v))
	c.Register("minecraft:ominous_bottle_amplifier", (*OminousBottleAmplifier)(nil), m(41, v))
	c.Register("minecraft:jukebox_playable", (*JukeboxPlayable)(nil), m(42, v121))
	c.Register("minecraft:recipes", (*Recipes)(nil), m(42, v), m(43, v121))
	c.Register("minecraft:lodestone_tracker", (*LodestoneTracker)(nil), m(43, v), m(44, v121))
	c.Register("minecraft:firework_explosion", (*FireworkExplosion)(nil), m(44, v), m(45, v121))
	c.Register("minecraft:fireworks", (*Fireworks)(nil), m(45, v), m(46, v121))
	c.Register("minecraft:profile", (*Profile)(nil), m(46, v), m(47, v121))
	c.Register("minecraft:note_block_sound", (*NoteBlockSound)(nil), m(47, v), m(48, v121))
	c.Register("minecraft:banner_patterns", (*BannerPatterns)(nil), m(48, v), m(49, v121))
	c.Register("minecraft:base_color", (*BaseColor)(nil), m(49, v), m(50, v121))
	c.Register("minecraft:pot_decorations", (*PotDecorations)(nil), m(50, v), m(51, v121))
	c.Register("minecraft:container", (*Container)(nil), m(51, v), m(52, v121))
	c.Register("minecraft:block_state", (*BlockState)(nil), m(52, v), m(53, v121))
	c.Register("minecraft:bees", (*Bees)(nil), m(53, v), m(54, v121))
	c.Register("minecraft:lock", (*Lock)(nil), m(54, v), m(55, v121))
	c.Register("minecraft:container_loot", (*ContainerLoot)(nil), m(55, v), m(56, v121))
}
