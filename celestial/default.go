package celestial

// DefaultStar returns the sun used when a table does not describe one.
func DefaultStar() StarDescriptor {
	return StarDescriptor{
		Name:    "Sun",
		Scale:   1.8,
		Texture: SunTexture,
		Color:   0xffcc33,
	}
}

// Default returns a fresh copy of the built-in table: the sun, the four inner
// planets, the Moon, Phobos and Deimos.
func Default() System {
	return System{
		Star: DefaultStar(),
		Planets: []BodyDescriptor{
			{
				Name:     "Mercury",
				Radius:   0.25,
				Distance: 15,
				Speed:    0.065,
				Texture:  MercuryTexture,
				Color:    0x9e9e9e,
			},
			{
				Name:     "Venus",
				Radius:   0.5,
				Distance: 30,
				Speed:    0.07,
				Texture:  VenusTexture,
				Color:    0xe3bb76,
			},
			{
				Name:     "Earth",
				Radius:   0.6,
				Distance: 45,
				Speed:    0.05,
				Texture:  EarthTexture,
				Color:    0x2f6fdf,
				Moons: []MoonDescriptor{
					{Name: "Moon", Radius: 0.5, Distance: 15, Speed: 0.015},
				},
			},
			{
				Name:     "Mars",
				Radius:   0.45,
				Distance: 60,
				Speed:    0.03,
				Texture:  MarsTexture,
				Color:    0xc1440e,
				Moons: []MoonDescriptor{
					{Name: "Phobos", Radius: 0.3, Distance: 15, Speed: 0.02},
					{Name: "Deimos", Radius: 0.4, Distance: 25, Speed: 0.015, Color: 0xffffff},
				},
			},
		},
	}
}
