package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Section is one navigable block of the page.
type Section struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Link is a call-to-action button on the hero card.
type Link struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Href     string   `yaml:"href"`
	Download bool     `yaml:"download"`
	Gradient []string `yaml:"gradient"`
}

type Stat struct {
	Value    string   `yaml:"value"`
	Label    string   `yaml:"label"`
	Caption  string   `yaml:"caption"`
	Gradient []string `yaml:"gradient"`
}

// Skill is one card in the horizontal strip. Slug names its icon.
type Skill struct {
	Name  string `yaml:"name"`
	Slug  string `yaml:"slug"`
	Color string `yaml:"color"`
}

// ShadowPair holds the resting and hover shadow colors for a skill.
type ShadowPair struct {
	Base  string `yaml:"base"`
	Hover string `yaml:"hover"`
}

type Project struct {
	Title    string   `yaml:"title"`
	Desc     string   `yaml:"desc"`
	Tags     []string `yaml:"tags"`
	Gradient []string `yaml:"gradient"`
}

type Social struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	Href string `yaml:"href"`
}

type Note struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type Blurb struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

// ContentData is everything the page displays.
type ContentData struct {
	Owner       string   `yaml:"owner"`
	Headline    string   `yaml:"headline"`
	Tagline     string   `yaml:"tagline"`
	Intro       string   `yaml:"intro"`
	HeroLabel   string   `yaml:"hero_label"`
	TypingLines []string `yaml:"typing_lines"`
	Badges      []string `yaml:"badges"`
	WhatIDo     Blurb    `yaml:"what_i_do"`

	Sections []Section `yaml:"sections"`
	CTAs     []Link    `yaml:"ctas"`
	Stats    []Stat    `yaml:"stats"`

	SkillsTitle    string                `yaml:"skills_title"`
	SkillsHint     string                `yaml:"skills_hint"`
	SkillsTip      string                `yaml:"skills_tip"`
	SkillBadge     string                `yaml:"skill_badge"`
	Skills         []Skill               `yaml:"skills"`
	DefaultPalette ShadowPair            `yaml:"default_palette"`
	Palette        map[string]ShadowPair `yaml:"palette"`

	ProjectsTitle string    `yaml:"projects_title"`
	ProjectsHint  string    `yaml:"projects_hint"`
	Projects      []Project `yaml:"projects"`

	ConnectTitle string   `yaml:"connect_title"`
	ConnectIntro string   `yaml:"connect_intro"`
	ConnectNotes []Note   `yaml:"connect_notes"`
	SocialsTitle string   `yaml:"socials_title"`
	Socials      []Social `yaml:"socials"`

	Footer string `yaml:"footer"`
}

// Content is the page content parsed from the embedded content.yaml.
var Content *ContentData

// LoadContent parses and validates page content.
func LoadContent(data []byte) (*ContentData, error) {
	var c ContentData
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &c, nil
}

func (c *ContentData) validate() error {
	if len(c.Sections) == 0 {
		return errors.New("no sections")
	}
	seen := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if s.ID == "" {
			return errors.New("section without id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section %q", s.ID)
		}
		seen[s.ID] = true
	}

	slugs := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s.Slug == "" {
			return fmt.Errorf("skill %q has no slug", s.Name)
		}
		if slugs[s.Slug] {
			return fmt.Errorf("duplicate skill slug %q", s.Slug)
		}
		slugs[s.Slug] = true
	}

	for _, p := range c.Projects {
		if len(p.Gradient) != 2 {
			return fmt.Errorf("project %q needs a two-stop gradient", p.Title)
		}
	}
	for _, s := range c.Socials {
		if s.Href == "" {
			return fmt.Errorf("social %q has no href", s.Name)
		}
	}
	return nil
}

// SectionIDs lists section ids in page order.
func (c *ContentData) SectionIDs() []string {
	ids := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		ids[i] = s.ID
	}
	return ids
}

// PaletteFor returns the shadow colors for a skill slug, falling back to
// the default palette.
func (c *ContentData) PaletteFor(slug string) ShadowPair {
	if p, ok := c.Palette[slug]; ok {
		return p
	}
	return c.DefaultPalette
}

// ParseHex reads "#rgb" or "#rrggbb". Anything else is an error.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex is ParseHex with a fallback for malformed input.
func Hex(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return fallback
	}
	return c
}

func init() {
	c, err := LoadContent(contentYAML)
	if err != nil {
		panic(err)
	}
	Content = c
}
