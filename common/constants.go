package common

const (
	// TileSize is the default edge length of a grid tile in world units.
	TileSize = 32.0

	// TPS is the fixed simulation rate.
	TPS     = 60
	FixedDT = 1.0 / TPS
)
