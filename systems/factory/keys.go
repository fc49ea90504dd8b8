package factory

import "fmt"

// Element keys. Handlers resolve entities through these instead of holding
// entity handles across reflows.
const (
	KeyHero  = "hero"
	KeyStrip = "strip"
	KeyToTop = "totop"
)

func SectionKey(id string) string { return "section/" + id }

func CTAKey(key string) string { return "cta/" + key }

func StatKey(i int) string { return fmt.Sprintf("stat/%d", i) }

func SkillKey(slug string) string { return "skill/" + slug }

func ProjectKey(i int) string { return fmt.Sprintf("project/%d", i) }

func SocialKey(i int) string { return fmt.Sprintf("social/%d", i) }
