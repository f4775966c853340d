package cosmo

type shaderFunc func(Fragment, *Uniforms) Color

// bodyShaders maps each body kind to its surface shader. The array is
// sized by the enum itself, so a new Body constant without a matching
// entry leaves a nil slot that the totality test catches immediately.
var bodyShaders = [bodyCount]shaderFunc{
	Star:         shadeStar,
	RockyPlanet:  shadeRockyPlanet,
	GasGiant:     shadeGasGiant,
	CloudyPlanet: shadeCloudyPlanet,
	RingedPlanet: shadeRingedPlanet,
	IcePlanet:    shadeIcePlanet,
	ColorPlanet:  shadeColorPlanet,
	Moon:         shadeMoon,
	OceanPlanet:  shadeOceanPlanet,
	NaturePlanet: shadeNaturePlanet,
	AuroraPlanet: shadeAuroraPlanet,
}

// Shade colors one fragment with the surface shader selected by
// u.Body. O(1) dispatch, no error path: every shader is total over its
// inputs. u.Body must be one of the declared body kinds.
func Shade(f Fragment, u *Uniforms) Color {
	return bodyShaders[u.Body](f, u)
}
