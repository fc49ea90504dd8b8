package archetypes

import (
	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/automoto/portfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Page = newArchetype(
		tags.Page,
		components.Page,
		components.Arena,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
		components.Element,
	)
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Element,
		components.Transform,
	)
	CTA = newArchetype(
		tags.CTA,
		components.CTA,
		components.Element,
		components.Transform,
	)
	Stat = newArchetype(
		tags.Stat,
		components.Stat,
		components.Element,
	)
	Strip = newArchetype(
		tags.Strip,
		components.Strip,
		components.Element,
	)
	SkillCard = newArchetype(
		tags.SkillCard,
		components.SkillCard,
		components.Element,
		components.Transform,
		components.Icon,
	)
	ProjectCard = newArchetype(
		tags.ProjectCard,
		components.ProjectCard,
		components.Element,
		components.Transform,
	)
	SocialLink = newArchetype(
		tags.SocialLink,
		components.SocialLink,
		components.Element,
		components.Transform,
		components.Icon,
	)
	ToTop = newArchetype(
		tags.ToTop,
		components.Element,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
