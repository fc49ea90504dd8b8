package factory

import (
	"github.com/automoto/portfolio/archetypes"
	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/motion"
	"github.com/automoto/portfolio/scroll"
	"github.com/automoto/portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	spaceSize = 4096
	spaceCell = 64
)

// CreatePage spawns every element of the page from content. Rects are left
// empty; the layout system fills them in.
func CreatePage(ecs *ecs.ECS, content *cfg.ContentData) *donburi.Entry {
	page := archetypes.Page.Spawn(ecs)
	scrollState := motion.Neutral()
	components.Page.SetValue(page, components.PageData{Scroll: &scrollState})
	components.Arena.SetValue(page, components.ArenaData{})
	arena := components.Arena.Get(page)

	spaceEntry := CreateSpace(ecs, spaceSize, spaceSize, spaceCell, spaceCell)
	space := components.Space.Get(spaceEntry)

	add := func(e *donburi.Entry, key string) {
		arena.Put(key, e.Entity())
		el := components.Element.Get(e)
		el.Key = key
		if el.Object == nil {
			obj := resolv.NewObject(-spaceSize, -spaceSize, 1, 1, tags.ResolvHoverable)
			obj.Data = e
			space.Add(obj)
			el.Object = obj
		}
	}

	for i, s := range content.Sections {
		e := archetypes.Section.Spawn(ecs)
		components.Section.SetValue(e, components.SectionData{Index: i, Section: s})
		components.Element.SetValue(e, components.ElementData{Kind: components.KindSection})
		add(e, SectionKey(s.ID))
	}

	hero := archetypes.Hero.Spawn(ecs)
	components.Hero.SetValue(hero, components.HeroData{Label: content.HeroLabel})
	components.Element.SetValue(hero, components.ElementData{Kind: components.KindHero})
	heroTransform := motion.Neutral()
	heroTransform.Perspective = cfg.Motion.Perspective
	components.Transform.SetValue(hero, components.TransformData{Transform: &heroTransform})
	add(hero, KeyHero)

	for _, link := range content.CTAs {
		e := archetypes.CTA.Spawn(ecs)
		components.CTA.SetValue(e, components.CTAData{Link: link})
		components.Element.SetValue(e, components.ElementData{Kind: components.KindCTA, Clickable: true})
		newTransform(e)
		add(e, CTAKey(link.Key))
	}

	for i, s := range content.Stats {
		e := archetypes.Stat.Spawn(ecs)
		components.Stat.SetValue(e, components.StatData{Index: i, Stat: s})
		components.Element.SetValue(e, components.ElementData{Kind: components.KindStat})
		add(e, StatKey(i))
	}

	CreateStrip(ecs, add)

	for i, s := range content.Skills {
		CreateSkillCard(ecs, i, s, content.PaletteFor(s.Slug), add)
	}

	for i, p := range content.Projects {
		e := archetypes.ProjectCard.Spawn(ecs)
		components.ProjectCard.SetValue(e, components.ProjectCardData{Index: i, Project: p})
		components.Element.SetValue(e, components.ElementData{Kind: components.KindProject})
		newTransform(e)
		add(e, ProjectKey(i))
	}

	for i, s := range content.Socials {
		e := archetypes.SocialLink.Spawn(ecs)
		components.SocialLink.SetValue(e, components.SocialLinkData{Index: i, Social: s})
		components.Element.SetValue(e, components.ElementData{Kind: components.KindSocial, Clickable: true})
		components.Icon.SetValue(e, components.IconData{Slug: s.Slug})
		newTransform(e)
		add(e, SocialKey(i))
	}

	toTop := archetypes.ToTop.Spawn(ecs)
	components.Element.SetValue(toTop, components.ElementData{
		Kind:      components.KindToTop,
		Placement: components.PlaceFixed,
		Hidden:    true,
		Clickable: true,
	})
	add(toTop, KeyToTop)

	return page
}

// CreateStrip spawns the pinned skills row. The pin measures the strip
// through the entity each time it is refreshed.
func CreateStrip(ecs *ecs.ECS, add func(*donburi.Entry, string)) *donburi.Entry {
	strip := archetypes.Strip.Spawn(ecs)
	components.Element.SetValue(strip, components.ElementData{
		Kind:      components.KindStrip,
		Placement: components.PlacePinned,
	})
	data := components.Strip.Get(strip)
	data.Pin = scroll.NewPin(0, func() float64 {
		s := components.Strip.Get(strip)
		return scroll.ScrollDistance(s.ContentWidth, s.ClientWidth, s.PaddingX, s.PaddingX)
	})
	data.Scrubber = scroll.NewScrubber(cfg.C.TPS, cfg.Scroll.ScrubLag)
	add(strip, KeyStrip)
	return strip
}

func CreateSkillCard(ecs *ecs.ECS, index int, skill cfg.Skill, palette cfg.ShadowPair, add func(*donburi.Entry, string)) *donburi.Entry {
	card := archetypes.SkillCard.Spawn(ecs)
	primary, glow := cfg.Motion.SkillPrimary, cfg.Motion.SkillGlow
	components.SkillCard.SetValue(card, components.SkillCardData{
		Index:   index,
		Skill:   skill,
		Palette: palette,
		Rest:    motion.ParseShadow(cfg.Motion.SkillRestShadow),
		Hover: motion.GlowShadow(palette.Hover,
			motion.ShadowLayer{OffsetX: primary.OffsetX, OffsetY: primary.OffsetY, Blur: primary.Blur},
			motion.ShadowLayer{OffsetX: glow.OffsetX, OffsetY: glow.OffsetY, Blur: glow.Blur},
		),
	})
	components.Element.SetValue(card, components.ElementData{
		Kind:      components.KindSkill,
		Placement: components.PlaceStrip,
	})
	components.Icon.SetValue(card, components.IconData{Slug: skill.Slug, UseFallback: true})
	newTransform(card)
	add(card, SkillKey(skill.Slug))
	return card
}

func newTransform(e *donburi.Entry) *motion.Transform {
	t := motion.Neutral()
	components.Transform.SetValue(e, components.TransformData{Transform: &t})
	return &t
}
