package component

import "fmt"

func enumString(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

// Rarity of an item, affecting the name color.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
)

func (r Rarity) String() string {
	return enumString([]string{"common", "uncommon", "rare", "epic"}, int(r))
}

// DyeColor is one of the 16 dye colors.
type DyeColor int

const (
	DyeWhite DyeColor = iota
	DyeOrange
	DyeMagenta
	DyeLightBlue
	DyeYellow
	DyeLime
	DyePink
	DyeGray
	DyeLightGray
	DyeCyan
	DyePurple
	DyeBlue
	DyeBrown
	DyeGreen
	DyeRed
	DyeBlack
)

func (d DyeColor) String() string {
	return enumString([]string{
		"white", "orange", "magenta", "light_blue", "yellow", "lime", "pink", "gray",
		"light_gray", "cyan", "purple", "blue", "brown", "green", "red", "black",
	}, int(d))
}

// MapPostProcessing is applied to a map item after crafting.
type MapPostProcessing int

const (
	MapLock MapPostProcessing = iota
	MapScale
)

func (p MapPostProcessing) String() string {
	return enumString([]string{"lock", "scale"}, int(p))
}

// ExplosionShape is the shape of a firework explosion.
type ExplosionShape int

const (
	ShapeSmallBall ExplosionShape = iota
	ShapeLargeBall
	ShapeStar
	ShapeCreeper
	ShapeBurst
)

func (s ExplosionShape) String() string {
	return enumString([]string{"small_ball", "large_ball", "star", "creeper", "burst"}, int(s))
}

// AttributeOperation is how an attribute modifier combines with the base value.
type AttributeOperation int

const (
	AddValue AttributeOperation = iota
	AddMultipliedBase
	AddMultipliedTotal
)

func (o AttributeOperation) String() string {
	return enumString([]string{"add_value", "add_multiplied_base", "add_multiplied_total"}, int(o))
}

// EquipmentSlotGroup is the slot group an attribute modifier is active in.
type EquipmentSlotGroup int

const (
	SlotAny EquipmentSlotGroup = iota
	SlotMainHand
	SlotOffHand
	SlotHand
	SlotFeet
	SlotLegs
	SlotChest
	SlotHead
	SlotArmor
	SlotBody
)

func (s EquipmentSlotGroup) String() string {
	return enumString([]string{
		"any", "mainhand", "offhand", "hand", "feet", "legs", "chest", "head", "armor", "body",
	}, int(s))
}
