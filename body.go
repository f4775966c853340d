package cosmo

// Body selects which celestial surface shader is active for a draw.
// The set is closed: adding a kind means adding a constant here, a name
// below and exactly one shader in bodyShaders — existing entries never
// change.
type Body int

const (
	Star Body = iota
	RockyPlanet
	GasGiant
	CloudyPlanet
	RingedPlanet
	IcePlanet
	ColorPlanet
	Moon
	OceanPlanet
	NaturePlanet
	AuroraPlanet

	bodyCount
)

var bodyNames = [bodyCount]string{
	Star:         "star",
	RockyPlanet:  "rocky",
	GasGiant:     "gas_giant",
	CloudyPlanet: "cloudy",
	RingedPlanet: "ringed",
	IcePlanet:    "ice",
	ColorPlanet:  "color",
	Moon:         "moon",
	OceanPlanet:  "ocean",
	NaturePlanet: "nature",
	AuroraPlanet: "aurora",
}

func (b Body) String() string {
	if b < 0 || b >= bodyCount {
		return "unknown"
	}
	return bodyNames[b]
}

// Emissive reports whether the body is self-lit, in which case the
// rasterizer keeps the fragment intensity at full strength instead of
// attenuating by the light direction.
func (b Body) Emissive() bool {
	return b == Star || b == AuroraPlanet
}

// Bodies returns every body kind, in dispatch order.
func Bodies() []Body {
	all := make([]Body, bodyCount)
	for i := range all {
		all[i] = Body(i)
	}
	return all
}
