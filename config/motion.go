package config

import "time"

// TiltConfig maps a normalized offset to rotation (degrees) and shift (px)
type TiltConfig struct {
	RotateY  float64
	RotateX  float64
	ShiftX   float64
	ShiftY   float64
	Duration time.Duration
	Ease     string
}

// SettleConfig is how an element returns to rest after the pointer leaves
type SettleConfig struct {
	Duration time.Duration
	Ease     string
}

// HoverConfig contains a hover lift: scale and vertical offset on enter,
// back to rest on leave
type HoverConfig struct {
	Scale         float64
	Lift          float64
	Shadow        string // CSS box-shadow on enter; empty keeps the shadow untouched
	EnterDuration time.Duration
	LeaveDuration time.Duration
	Ease          string
}

// EntranceConfig describes the staggered fade-up of the skill cards
type EntranceConfig struct {
	OffsetY  float64
	Scale    float64
	Opacity  float64
	Duration time.Duration
	Stagger  time.Duration
	Ease     string
}

// ShadowGeometry is the offset and blur of one shadow layer
type ShadowGeometry struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// MotionConfig contains every animation constant on the page
type MotionConfig struct {
	Perspective float64

	HeroPointer     TiltConfig
	HeroOrientation TiltConfig
	HeroSettle      SettleConfig

	ProjectPointer     TiltConfig
	ProjectOrientation TiltConfig
	ProjectSettle      SettleConfig

	SocialOrientation TiltConfig
	SocialHover       HoverConfig

	SkillEntrance   EntranceConfig
	SkillHover      HoverConfig
	SkillRestShadow string
	SkillPrimary    ShadowGeometry // Downward layer in the hover color
	SkillGlow       ShadowGeometry // Upward layer at reduced alpha

	CTAHover HoverConfig
}

var Motion MotionConfig

func init() {
	Motion = MotionConfig{
		Perspective: 250,

		HeroPointer: TiltConfig{
			RotateY:  15,
			RotateX:  15,
			Duration: 400 * time.Millisecond,
			Ease:     "power3.out",
		},
		HeroOrientation: TiltConfig{
			RotateY:  5, // Reduced intensity for handheld tilt
			RotateX:  5,
			Duration: 600 * time.Millisecond,
			Ease:     "power2.out",
		},
		HeroSettle: SettleConfig{Duration: 600 * time.Millisecond, Ease: "power3.out"},

		ProjectPointer: TiltConfig{
			RotateY:  6,
			RotateX:  4,
			ShiftX:   8,
			ShiftY:   6,
			Duration: 350 * time.Millisecond,
			Ease:     "power3.out",
		},
		ProjectOrientation: TiltConfig{
			RotateY:  3,
			RotateX:  3,
			Duration: 600 * time.Millisecond,
			Ease:     "power2.out",
		},
		ProjectSettle: SettleConfig{Duration: 600 * time.Millisecond, Ease: "power3.out"},

		SocialOrientation: TiltConfig{
			RotateY:  2,
			RotateX:  2,
			Duration: 600 * time.Millisecond,
			Ease:     "power2.out",
		},
		SocialHover: HoverConfig{
			Scale:         1.06,
			Lift:          -6,
			Shadow:        "0 18px 40px rgba(14,165,233,0.12)",
			EnterDuration: 280 * time.Millisecond,
			LeaveDuration: 350 * time.Millisecond,
			Ease:          "power2.out",
		},

		SkillEntrance: EntranceConfig{
			OffsetY:  30,
			Scale:    0.96,
			Opacity:  0,
			Duration: 600 * time.Millisecond,
			Stagger:  30 * time.Millisecond,
			Ease:     "power3.out",
		},
		SkillHover: HoverConfig{
			Scale:         1.05,
			EnterDuration: 180 * time.Millisecond,
			LeaveDuration: 250 * time.Millisecond,
			Ease:          "power2.out",
		},
		SkillRestShadow: "0 0 0 rgba(0,0,0,0)",
		SkillPrimary:    ShadowGeometry{OffsetY: 75, Blur: 130},
		SkillGlow:       ShadowGeometry{OffsetY: -32, Blur: 60},

		CTAHover: HoverConfig{
			Scale:         1.05,
			EnterDuration: 300 * time.Millisecond,
			LeaveDuration: 300 * time.Millisecond,
			Ease:          "power2.out",
		},
	}
}
