package mc

import (
	"github.com/Tnze/go-mc/nbt"
)

// DimensionCodec is the minimal registry the lobby's JoinGame packet needs
// to describe a single, empty "superflat" dimension and biome. Real
// servers send a much larger codec listing every dimension type and biome
// they support; the lobby only ever needs the one it made up.
type DimensionCodec struct {
	DimensionType DimensionTypeRegistry `nbt:"minecraft:dimension_type"`
	WorldgenBiome BiomeRegistry         `nbt:"minecraft:worldgen/biome"`
}

type DimensionTypeRegistry struct {
	Type  string               `nbt:"type"`
	Value []DimensionTypeEntry `nbt:"value"`
}

type DimensionTypeEntry struct {
	Name    string      `nbt:"name"`
	ID      int32       `nbt:"id"`
	Element DimensionEl `nbt:"element"`
}

// DimensionEl holds the handful of fields that matter for a superflat,
// always-lit lobby void; the rest take Notchian defaults on the client.
type DimensionEl struct {
	PiglinSafe         byte    `nbt:"piglin_safe"`
	Natural            byte    `nbt:"natural"`
	AmbientLight       float32 `nbt:"ambient_light"`
	Infiniburn         string  `nbt:"infiniburn"`
	RespawnAnchorWorks byte    `nbt:"respawn_anchor_works"`
	HasSkylight        byte    `nbt:"has_skylight"`
	BedWorks           byte    `nbt:"bed_works"`
	Effects            string  `nbt:"effects"`
	HasRaids           byte    `nbt:"has_raids"`
	LogicalHeight      int32   `nbt:"logical_height"`
	CoordinateScale    float64 `nbt:"coordinate_scale"`
	Ultrawarm          byte    `nbt:"ultrawarm"`
	HasCeiling         byte    `nbt:"has_ceiling"`
}

type BiomeRegistry struct {
	Type  string       `nbt:"type"`
	Value []BiomeEntry `nbt:"value"`
}

type BiomeEntry struct {
	Name    string    `nbt:"name"`
	ID      int32     `nbt:"id"`
	Element BiomeElem `nbt:"element"`
}

type BiomeElem struct {
	Precipitation string  `nbt:"precipitation"`
	Depth         float32 `nbt:"depth"`
	Temperature   float32 `nbt:"temperature"`
	Scale         float32 `nbt:"scale"`
	Downfall      float32 `nbt:"downfall"`
	Category      string  `nbt:"category"`
}

// NewLobbyDimensionCodec builds the single-dimension, single-biome codec
// the lobby advertises: a flat void lit enough that a spectator camera
// never renders black.
func NewLobbyDimensionCodec() DimensionCodec {
	elem := DimensionEl{
		Natural:         1,
		AmbientLight:    1,
		Infiniburn:      "minecraft:infiniburn_overworld",
		HasSkylight:     1,
		BedWorks:        1,
		Effects:         "minecraft:overworld",
		LogicalHeight:   256,
		CoordinateScale: 1,
		HasCeiling:      0,
	}
	biome := BiomeElem{
		Precipitation: "none",
		Depth:         0.1,
		Temperature:   0.8,
		Scale:         0.2,
		Downfall:      0,
		Category:      "none",
	}
	return DimensionCodec{
		DimensionType: DimensionTypeRegistry{
			Type: "minecraft:dimension_type",
			Value: []DimensionTypeEntry{{
				Name: "minecraft:overworld", ID: 0, Element: elem,
			}},
		},
		WorldgenBiome: BiomeRegistry{
			Type: "minecraft:worldgen/biome",
			Value: []BiomeEntry{{
				Name: "minecraft:plains", ID: 0, Element: biome,
			}},
		},
	}
}

// EncodeNBT marshals v as an anonymous-root NBT compound, the form
// embedded inside JoinGame and ChunkData payloads.
func EncodeNBT(v interface{}) ([]byte, error) {
	return nbt.Marshal(v)
}

// DecodeNBT is EncodeNBT's inverse.
func DecodeNBT(data []byte, v interface{}) error {
	return nbt.Unmarshal(data, v)
}

// EmptyHeightmaps is the heightmap compound ChunkData must carry; every
// column reports height 0 since the lobby chunk has no blocks.
type EmptyHeightmaps struct {
	MotionBlocking []int64 `nbt:"MOTION_BLOCKING"`
	WorldSurface   []int64 `nbt:"WORLD_SURFACE"`
}

// NewEmptyHeightmaps returns a heightmap compound with every long word
// zeroed, matching a chunk with no terrain.
func NewEmptyHeightmaps() EmptyHeightmaps {
	return EmptyHeightmaps{
		MotionBlocking: make([]int64, 37),
		WorldSurface:   make([]int64, 37),
	}
}
