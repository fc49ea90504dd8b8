package tags

import "github.com/yohamta/donburi"

var (
	Page        = donburi.NewTag().SetName("Page")
	Section     = donburi.NewTag().SetName("Section")
	Hero        = donburi.NewTag().SetName("Hero")
	CTA         = donburi.NewTag().SetName("CTA")
	Stat        = donburi.NewTag().SetName("Stat")
	Strip       = donburi.NewTag().SetName("Strip")
	SkillCard   = donburi.NewTag().SetName("SkillCard")
	ProjectCard = donburi.NewTag().SetName("ProjectCard")
	SocialLink  = donburi.NewTag().SetName("SocialLink")
	ToTop       = donburi.NewTag().SetName("ToTop")
)

// Resolv tags for pointer hit-testing
const (
	ResolvHoverable = "hoverable"
	ResolvPointer   = "pointer"
)
