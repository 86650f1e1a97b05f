package packet

import (
	"fmt"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/config"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// DimensionTypeRegistry is the registry id of the dimension types sent
// during configuration. JoinGame and Respawn refer to its entries by index.
const DimensionTypeRegistry = "minecraft:dimension_type"

// DimensionType holds the parts of a dimension type entry a client needs
// to lay out a world.
type DimensionType struct {
	Name            string  // registry entry id
	MinY            int32   // lowest block y
	Height          int32   // total build height
	LogicalHeight   int32   // the natural max height
	AmbientLight    float32 // light level without external lighting
	CoordinateScale float64
	HasSkylight     bool
	HasCeiling      bool
	Ultrawarm       bool
	Natural         bool
	Effects         string // optional
	FixedTime       *int64 // nil-able
}

// DimensionTypes returns the dimension types of a registry data packet.
// Entries without inline data (known from a data pack) keep only their name.
func DimensionTypes(r *config.RegistryData) ([]*DimensionType, error) {
	if r.RegistryID != DimensionTypeRegistry {
		return nil, errs.Unsupportedf("registry %q is not %s", r.RegistryID, DimensionTypeRegistry)
	}
	types := make([]*DimensionType, 0, len(r.Entries))
	for i, e := range r.Entries {
		if !e.HasData {
			types = append(types, &DimensionType{Name: e.ID})
			continue
		}
		details, err := util.TagToNBT(e.Data)
		if err != nil {
			return nil, fmt.Errorf("error decoding %d. dimension type %q: %w", i+1, e.ID, err)
		}
		d, err := decodeDimensionType(details)
		if err != nil {
			return nil, fmt.Errorf("error decoding %d. dimension type %q: %w", i+1, e.ID, err)
		}
		d.Name = e.ID
		types = append(types, d)
	}
	return types, nil
}

func decodeDimensionType(details util.NBT) (*DimensionType, error) {
	if details == nil {
		return nil, errs.Missing("element")
	}
	d := &DimensionType{CoordinateScale: 1}
	var ok bool
	if d.MinY, ok = details.Int32("min_y"); !ok {
		return nil, dimMissKeyErr("min_y")
	}
	if d.Height, ok = details.Int32("height"); !ok {
		return nil, dimMissKeyErr("height")
	}
	if d.LogicalHeight, ok = details.Int32("logical_height"); !ok {
		return nil, dimMissKeyErr("logical_height")
	}
	if d.AmbientLight, ok = details.Float32("ambient_light"); !ok {
		return nil, dimMissKeyErr("ambient_light")
	}
	if d.HasSkylight, ok = details.Bool("has_skylight"); !ok {
		return nil, dimMissKeyErr("has_skylight")
	}
	if d.HasCeiling, ok = details.Bool("has_ceiling"); !ok {
		return nil, dimMissKeyErr("has_ceiling")
	}
	d.Ultrawarm, _ = details.Bool("ultrawarm")
	d.Natural, _ = details.Bool("natural")
	if scale, ok := details.Float64("coordinate_scale"); ok {
		d.CoordinateScale = scale
	}
	d.Effects, _ = details.String("effects")
	if fixedTime, ok := details.Int64("fixed_time"); ok {
		d.FixedTime = &fixedTime
	}
	return d, nil
}

func dimMissKeyErr(key string) error {
	return errs.Missing("dimension type " + key)
}
