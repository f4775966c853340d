package cosmo

import "math"

// The body shaders all follow the same shape: scale the frame time by a
// per-body constant, sample the noise field at position*frequency plus
// a time offset, layer the samples, pick a base color by lerp or by a
// threshold ladder, stack threshold-gated overlays on top, then scale
// by the fragment intensity. The frequencies and thresholds are the
// per-body tuning knobs.

// remapUnit maps a [-1,1] noise sample into [0,1].
func remapUnit(n float64) float64 {
	return math.Sin(n)*0.5 + 0.5
}

// overlay blends c into base once pattern exceeds threshold, fading in
// with slope gain. The factor is intentionally unclamped.
func overlay(base, c Color, pattern, threshold, gain float64) Color {
	if pattern > threshold {
		return base.Lerp(c, (pattern-threshold)*gain)
	}
	return base
}

func shadeStar(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.01

	core := RGB(255, 200, 0)
	corona := RGB(255, 100, 0)

	// Two plasma layers moving against each other.
	plasma1 := u.Noise.Noise3D(p.X*50+t, p.Y*50, t*2)
	plasma2 := u.Noise.Noise3D(p.X*30-t, p.Y*30, t)

	coronaGlow := math.Abs(u.Noise.Noise3D(p.X*10, p.Y*10, t*0.5))

	combined := (plasma1 + plasma2) * 0.5
	c := core.Lerp(corona, math.Abs(combined))

	brightness := 1 + coronaGlow*0.5
	return c.MulScalar(brightness * f.Intensity)
}

func shadeRockyPlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.001

	desert := RGB(180, 80, 20)
	crater := RGB(120, 50, 10)
	highland := RGB(200, 100, 30)
	dust := RGB(200, 150, 100)

	terrain := u.Noise.Noise3D(p.X*100, p.Y*100, p.Z*100)
	craters := math.Abs(u.Noise.Noise3D(p.X*200+1000, p.Y*200+1000, p.Z*200))
	dustDrift := u.Noise.Noise3D(p.X*50+t, p.Y*50, p.Z*50)

	// Hard-edged terrain ladder, then a soft dust wash over the top.
	c := desert
	if craters > 0.7 {
		c = crater
	} else if terrain > 0.3 {
		c = highland
	}
	c = c.Lerp(dust, math.Abs(dustDrift)*0.3)

	return c.MulScalar(f.Intensity)
}

func shadeGasGiant(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.005

	band1 := RGB(255, 225, 190)
	band2 := RGB(210, 160, 110)
	band3 := RGB(180, 130, 90)
	stormCore := RGB(255, 100, 80)
	stormEdge := RGB(255, 140, 100)

	// Y frequency much lower than X: stretched horizontal banding.
	bands := u.Noise.Noise3D(p.X*50+t, p.Y*15+t*0.2, p.Z*50)
	secondary := u.Noise.Noise3D(p.X*25+t*0.5, p.Y*10+t*0.1, p.Z*25)
	storm := math.Abs(u.Noise.Noise3D((p.X+0.5)*150, (p.Y+0.5)*150, t))
	turbulence := math.Abs(u.Noise.Noise3D(p.X*100+t*2, p.Y*100, p.Z*100))

	base := band3
	if bands > 0.2 {
		base = band1
	} else if secondary > 0 {
		base = band2
	}

	// The great storm only forms in the positive quadrant.
	c := base
	if storm > 0.5 && p.X > 0 && p.Y > 0 {
		c = stormCore.Lerp(stormEdge, (storm-0.5)*2)
	}
	c = c.Lerp(band3, turbulence*0.3)

	return c.MulScalar(f.Intensity)
}

func shadeCloudyPlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.01

	ocean := RGB(30, 100, 200)
	land := RGB(50, 120, 50)
	cloud := RGB(255, 255, 255)

	surface := u.Noise.Noise2D(p.X*100, p.Y*100)
	clouds := u.Noise.Noise3D(p.X*50+t, p.Y*50+t*0.5, t)

	c := ocean
	if surface > 0.2 {
		c = land
	}
	c = overlay(c, cloud, clouds, 0.3, 2)

	return c.MulScalar(f.Intensity)
}

func shadeRingedPlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.001

	ring := RGB(180, 150, 120)
	edge := RGB(100, 80, 60)

	pattern := u.Noise.Noise3D(p.X*200+t, p.Y*200, p.Z*200)
	density := u.Noise.Noise2D(p.X*100, p.Y*100)

	c := edge
	if pattern > 0 {
		c = ring.Lerp(edge, math.Abs(density))
	}

	// Ring gaps: the output alpha is itself pattern-derived.
	alpha := (math.Abs(density)*0.5 + 0.5) * f.Intensity
	return c.MulScalar(alpha).Alpha(alpha)
}

func shadeIcePlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.002

	ice := RGB(220, 240, 255)
	deepIce := RGB(150, 200, 255)
	glacier := RGB(170, 215, 240)
	crack := RGB(100, 150, 255)
	crystal := RGB(240, 250, 255)
	auroraTint := RGB(120, 255, 200)
	frost := RGB(200, 225, 245)
	twilight := RGB(90, 60, 130)

	layers := u.Noise.Noise3D(p.X*80, p.Y*80, p.Z*80+t)
	cracks := math.Abs(u.Noise.Noise3D(p.X*120+t, p.Y*120, p.Z*120))
	crystals := math.Abs(u.Noise.Noise3D(p.X*200, p.Y*200, p.Z*200))
	sky := math.Abs(u.Noise.Noise3D(p.X*15, p.Y*15, t*3))
	frosting := math.Abs(u.Noise.Noise3D(p.X*300, p.Y*300, p.Z*300))

	c := ice.Lerp(deepIce, math.Abs(layers))
	c = c.Lerp(glacier, remapUnit(layers)*0.3)

	// Independent overlays, applied in a fixed order; a fragment can
	// pick up several at once.
	c = overlay(c, crack, cracks, 0.7, 2)
	c = overlay(c, crystal, crystals, 0.8, 5)
	c = overlay(c, auroraTint, sky, 0.6, 0.8)
	c = overlay(c, frost, frosting, 0.75, 1.5)

	// Polar twilight band.
	c = overlay(c, twilight, math.Abs(p.Y), 0.7, 1.5)

	depthFade := 1 / (1 + math.Abs(p.Z)*0.35)
	return c.MulScalar(f.Intensity * depthFade)
}

func shadeColorPlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.01

	color1 := RGB(245, 56, 121)
	color2 := RGB(245, 140, 105)
	color3 := RGB(245, 115, 105)
	color4 := RGB(245, 105, 238)
	color5 := RGB(245, 159, 95)

	ring1 := RGB(245, 7, 123)
	ring2 := RGB(245, 166, 195)

	curve := remapUnit(u.Noise.Noise3D(p.X*5+t*1.5, p.Y*5, p.Z*5))
	wave := math.Sin(p.X*15+p.Y*15+t)*0.5 + 0.5

	c := color1.Lerp(color2, curve)
	c = c.Lerp(color3, wave*0.7)

	if curve > 0.6 {
		c = c.Lerp(color4, curve-0.3)
	} else if wave > 0.5 {
		c = c.Lerp(color5, wave-0.3)
	}

	// High-frequency secondary rings, blended on both branches.
	ringPattern := math.Abs(u.Noise.Noise3D(p.X*200+t, p.Y*200, p.Z*200))
	if ringPattern > 0.5 {
		c = c.Lerp(ring1, ringPattern-0.5)
	} else {
		c = c.Lerp(ring2, 0.5-ringPattern)
	}

	return c.MulScalar(f.Intensity)
}

func shadeMoon(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.001

	base := RGB(180, 180, 180)
	crater := RGB(100, 100, 100)
	dust := RGB(150, 150, 150)

	craters := math.Abs(u.Noise.Noise3D(p.X*150, p.Y*150, p.Z*150))
	dustDrift := u.Noise.Noise3D(p.X*80+t, p.Y*80, p.Z*80)
	details := math.Abs(u.Noise.Noise3D(p.X*200, p.Y*200, p.Z*200))

	c := base
	c = overlay(c, crater, craters, 0.7, 2)
	c = c.Lerp(dust, math.Abs(dustDrift)*0.2)
	c = overlay(c, crater, details, 0.8, 0.5)

	return c.MulScalar(f.Intensity)
}

func shadeOceanPlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.004

	deep := RGB(10, 40, 90)
	shallow := RGB(40, 150, 180)
	reef := RGB(60, 180, 150)
	foam := RGB(235, 245, 250)

	// Continental-scale depth field banded into deep/shallow/reef.
	depth := remapUnit(u.Noise.Noise3D(p.X*6, p.Y*6, p.Z*6))
	c := deep.Lerp(shallow, depth)
	c = overlay(c, reef, depth, 0.55, 1.5)

	waves := math.Abs(u.Noise.Noise3D(p.X*80+t, p.Y*80+t*0.5, p.Z*80))
	c = overlay(c, foam, waves, 0.6, 2.5)

	return c.MulScalar(f.Intensity)
}

func shadeNaturePlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.003

	soil := RGB(110, 85, 50)
	canopy := RGB(40, 130, 60)
	forest := RGB(20, 80, 40)
	tundra := RGB(150, 160, 140)
	bark := RGB(90, 60, 35)
	fungi := RGB(170, 90, 200)
	glow := RGB(80, 230, 200)
	pollen := RGB(230, 220, 120)
	river := RGB(50, 120, 200)
	fog := RGB(200, 210, 205)

	// Latitude-driven biome mix: equatorial canopy fading into tundra
	// toward the poles.
	biome := remapUnit(u.Noise.Noise3D(p.X*20, p.Y*20, p.Z*20))
	lat := math.Abs(p.Y)
	c := soil.Lerp(canopy, biome)
	c = c.Lerp(forest, biome*0.5)
	c = c.Lerp(tundra, lat*lat*0.8)

	barkLines := math.Abs(u.Noise.Noise3D(p.X*150, p.Y*150, p.Z*150))
	c = overlay(c, bark, barkLines, 0.65, 2)

	fungiLines := math.Abs(u.Noise.Noise3D(p.X*90+t, p.Y*90, p.Z*90))
	c = overlay(c, fungi, fungiLines, 0.8, 3)

	biolum := math.Abs(u.Noise.Noise3D(p.X*250, p.Y*250, p.Z*250+t*4))
	c = overlay(c, glow, biolum, 0.85, 4)

	pollenDrift := math.Abs(u.Noise.Noise3D(p.X*350+t, p.Y*350, p.Z*350))
	c = overlay(c, pollen, pollenDrift, 0.9, 5)

	// Rivers follow the ridges of a coarse field.
	ridges := 1 - math.Abs(u.Noise.Noise3D(p.X*12, p.Y*12, p.Z*12))
	c = overlay(c, river, ridges, 0.94, 12)

	// Fog rolls in and out over time.
	fogAmount := (math.Sin(u.Time*0.01)*0.5 + 0.5) * 0.3
	c = c.Lerp(fog, fogAmount*remapUnit(u.Noise.Noise3D(p.X*8+t, p.Y*8, p.Z*8)))

	return c.MulScalar(f.Intensity)
}

func shadeAuroraPlanet(f Fragment, u *Uniforms) Color {
	p := f.Position
	t := u.Time * 0.008

	skyDeep := RGB(10, 15, 40)
	skyHigh := RGB(30, 40, 80)
	curtainGreen := RGB(60, 255, 140)
	curtainViolet := RGB(150, 80, 255)
	ringPink := RGB(255, 120, 200)
	glowTeal := RGB(0, 200, 220)
	shimmer := RGB(200, 240, 255)
	dusk := RGB(90, 50, 120)

	r := p.Length()
	angle := math.Atan2(p.Y, p.X)

	// No threshold ladder here: the whole surface is overlay stacking
	// over a slowly drifting sky.
	c := skyDeep.Lerp(skyHigh, remapUnit(u.Noise.Noise3D(p.X*4, p.Y*4, p.Z*4+t)))

	spiral := math.Sin(angle*3+r*12-t*4)*0.5 + 0.5
	c = c.Lerp(curtainGreen, spiral*0.6)

	curtain := remapUnit(u.Noise.Noise3D(p.X*25+t*2, p.Y*25, p.Z*25))
	c = c.Lerp(curtainViolet, curtain*0.4)

	rings := math.Sin(r*20+t*3)*0.5 + 0.5
	c = c.Lerp(ringPink, rings*0.25)

	band := math.Abs(u.Noise.Noise3D(p.X*10, p.Y*10+t, p.Z*10))
	c = c.Lerp(glowTeal, band*0.2)

	sparkle := math.Abs(u.Noise.Noise3D(p.X*400, p.Y*400, p.Z*400+t*6))
	c = overlay(c, shimmer, sparkle, 0.9, 8)

	c = c.Lerp(dusk, math.Abs(p.Y)*0.3)

	return c.MulScalar(f.Intensity * 1.2)
}
