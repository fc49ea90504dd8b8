package components

import (
	"github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/motion"
	"github.com/yohamta/donburi"
)

type HeroData struct {
	Label string
}

var Hero = donburi.NewComponentType[HeroData]()

// CTAData is a hero call-to-action button.
type CTAData struct {
	Link config.Link
}

var CTA = donburi.NewComponentType[CTAData]()

type StatData struct {
	Index int
	Stat  config.Stat
}

var Stat = donburi.NewComponentType[StatData]()

type SkillCardData struct {
	Index   int
	Skill   config.Skill
	Palette config.ShadowPair
	Rest    motion.Shadow // Resting shadow, restored on leave
	Hover   motion.Shadow // Primary plus glow layer
}

var SkillCard = donburi.NewComponentType[SkillCardData]()

type ProjectCardData struct {
	Index   int
	Project config.Project
}

var ProjectCard = donburi.NewComponentType[ProjectCardData]()

type SocialLinkData struct {
	Index  int
	Social config.Social
}

var SocialLink = donburi.NewComponentType[SocialLinkData]()

type SectionData struct {
	Index   int
	Section config.Section
}

var Section = donburi.NewComponentType[SectionData]()
