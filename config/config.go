package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	LayerOverlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PageConfig contains layout metrics for the document, in pixels
type PageConfig struct {
	MaxWidth      float64 // Content column cap (max-w-7xl)
	SidePadding   float64 // Horizontal page gutter
	HeaderTop     float64 // Gap above the floating header
	HeaderHeight  float64
	SectionGap    float64 // Vertical padding around each section
	TitleHeight   float64 // Section heading block
	WideBreak     float64 // Two-column hero and four-column stats from here
	LargeBreak    float64 // Three-column project grid from here
	HeroHeight    float64 // Hero card height at WideBreak and above
	HeroHeightSm  float64
	HeroTextH     float64 // Height reserved for the intro column
	CTAWidth      float64
	CTAHeight     float64
	CTAGap        float64
	CTABottom     float64 // Distance from the hero card's bottom edge
	StatHeight    float64
	StatGap       float64
	SkillWidth    float64
	SkillHeight   float64
	SkillGap      float64
	StripPadding  float64 // Inner padding of the strip viewport (p-10)
	StripInsetY   float64 // Vertical padding of the card row (py-6)
	TipHeight     float64
	ProjectHeight float64
	ProjectGap    float64
	NotesHeight   float64
	SocialHeight  float64
	SocialGap     float64
	FooterHeight  float64
	ToTopSize     float64 // Scroll-to-top button edge
	ToTopMargin   float64
	ProgressH     float64 // Reading progress bar height
	Corner        float64 // Card outline inset used for rounded look
	IconSize      int
}

// ThemeConfig holds the page palette
type ThemeConfig struct {
	BackgroundTop    color.NRGBA
	BackgroundMid    color.NRGBA
	BackgroundBottom color.NRGBA
	Header           color.NRGBA
	Card             color.NRGBA
	CardBorder       color.NRGBA
	Text             color.NRGBA
	TextMuted        color.NRGBA
	Accent           color.NRGBA
	AccentAlt        color.NRGBA
	ProgressFrom     color.NRGBA
	ProgressTo       color.NRGBA
	ProgressTrack    color.NRGBA
	NavIdle          color.NRGBA
	NavHover         color.NRGBA
	NavActive        color.NRGBA
	ToTop            color.NRGBA
	Badge            color.NRGBA
}

// TypingConfig contains typewriter step delays
type TypingConfig struct {
	Type        time.Duration // Per typed character
	HoldAtEnd   time.Duration // After the line is complete
	ResumeErase time.Duration // Before the first erased character
	Erase       time.Duration // Per erased character
	HoldAtStart time.Duration // Before typing the next line
}

// ScrollConfig contains document scrolling behavior
type ScrollConfig struct {
	ScrubLag        float64 // Seconds the skills strip trails the scrollbar
	WheelStep       float64 // Pixels per wheel notch
	KeyStep         float64 // Pixels per arrow key press
	PageFraction    float64 // Fraction of the viewport per PageUp/PageDown
	SmoothDuration  time.Duration
	SmoothEase      string
	ToTopThreshold  float64 // Show scroll-to-top past this offset
	GamepadSpeed    float64 // Pixels per frame at full stick deflection
	AnalogDeadzone  float64
	TouchMultiplier float64 // Document pixels per dragged pixel
}

// IconConfig contains the icon CDN endpoints
type IconConfig struct {
	PrimaryBase  string // Resolved as PrimaryBase + "/" + slug
	FallbackBase string // Resolved as FallbackBase + "/" + slug + ".svg"
	Timeout      time.Duration
	UserAgent    string
}

// DownloadConfig names where saved files go
type DownloadConfig struct {
	AppName    string
	ResumeItem string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool // Outline hover targets
	Offline      bool // Skip icon fetching
}

// Global configuration instances
var C *Config
var Page PageConfig
var Theme ThemeConfig
var Typing TypingConfig
var Scroll ScrollConfig
var Icons IconConfig
var Download DownloadConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 800,
		Title:  "Krish Mishra",
		TPS:    60,
	}

	Page = PageConfig{
		MaxWidth:      1280,
		SidePadding:   24,
		HeaderTop:     16,
		HeaderHeight:  64,
		SectionGap:    64,
		TitleHeight:   96,
		WideBreak:     768,
		LargeBreak:    1024,
		HeroHeight:    512,
		HeroHeightSm:  320,
		HeroTextH:     560,
		CTAWidth:      150,
		CTAHeight:     48,
		CTAGap:        16,
		CTABottom:     24,
		StatHeight:    128,
		StatGap:       24,
		SkillWidth:    256,
		SkillHeight:   128,
		SkillGap:      32,
		StripPadding:  40,
		StripInsetY:   24,
		TipHeight:     88,
		ProjectHeight: 360,
		ProjectGap:    32,
		NotesHeight:   220,
		SocialHeight:  72,
		SocialGap:     16,
		FooterHeight:  120,
		ToTopSize:     56,
		ToTopMargin:   24,
		ProgressH:     6,
		Corner:        12,
		IconSize:      48,
	}

	Theme = ThemeConfig{
		BackgroundTop:    color.NRGBA{R: 236, G: 254, B: 255, A: 255}, // cyan-50
		BackgroundMid:    color.NRGBA{R: 253, G: 242, B: 248, A: 255}, // pink-50
		BackgroundBottom: color.NRGBA{R: 236, G: 253, B: 245, A: 255}, // emerald-50
		Header:           color.NRGBA{R: 217, G: 217, B: 217, A: 242},
		Card:             color.NRGBA{R: 255, G: 255, B: 255, A: 200},
		CardBorder:       color.NRGBA{R: 255, G: 255, B: 255, A: 128},
		Text:             color.NRGBA{R: 15, G: 23, B: 42, A: 255},
		TextMuted:        color.NRGBA{R: 51, G: 65, B: 85, A: 255},
		Accent:           color.NRGBA{R: 8, G: 145, B: 178, A: 255},
		AccentAlt:        color.NRGBA{R: 219, G: 39, B: 119, A: 255},
		ProgressFrom:     color.NRGBA{R: 16, G: 185, B: 129, A: 255},
		ProgressTo:       color.NRGBA{R: 236, G: 72, B: 153, A: 255},
		ProgressTrack:    color.NRGBA{R: 255, G: 255, B: 255, A: 77},
		NavIdle:          color.NRGBA{R: 0, G: 0, B: 0, A: 0},
		NavHover:         color.NRGBA{R: 255, G: 255, B: 255, A: 140},
		NavActive:        color.NRGBA{R: 255, G: 255, B: 255, A: 230},
		ToTop:            color.NRGBA{R: 6, G: 182, B: 212, A: 235},
		Badge:            color.NRGBA{R: 167, G: 243, B: 208, A: 120},
	}

	Typing = TypingConfig{
		Type:        40 * time.Millisecond,
		HoldAtEnd:   900 * time.Millisecond,
		ResumeErase: 60 * time.Millisecond,
		Erase:       20 * time.Millisecond,
		HoldAtStart: 200 * time.Millisecond,
	}

	Scroll = ScrollConfig{
		ScrubLag:        0.7,
		WheelStep:       60,
		KeyStep:         48,
		PageFraction:    0.9,
		SmoothDuration:  800 * time.Millisecond,
		SmoothEase:      "power2.inOut",
		ToTopThreshold:  300,
		GamepadSpeed:    18,
		AnalogDeadzone:  0.25,
		TouchMultiplier: 1,
	}

	Icons = IconConfig{
		PrimaryBase:  "https://cdn.simpleicons.org",
		FallbackBase: "https://cdn.jsdelivr.net/npm/simple-icons@latest/icons",
		Timeout:      8 * time.Second,
		UserAgent:    "krish-portfolio/1.0",
	}

	Download = DownloadConfig{
		AppName:    "krish_portfolio",
		ResumeItem: "resume.pdf",
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		Offline:      false,
	}
}
