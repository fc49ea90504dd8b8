package components

import (
	"github.com/automoto/portfolio/interact"
	"github.com/automoto/portfolio/motion"
	"github.com/yohamta/donburi"
)

// PageData is the document-level state.
type PageData struct {
	Width, Height float64 // Viewport
	DocHeight     float64

	// Scroll's Y channel is the document scroll offset, so smooth scrolling
	// is just a tween on it.
	Scroll    *motion.Transform
	Published float64 // Last offset sent as a scroll event

	Active    string // Highlighted nav section
	Progress  float64
	ShowToTop bool
	Typed     string
	Notice    string // Transient status line, empty when hidden

	Blocks Blocks
}

// Blocks are the text areas that are not elements, in document
// coordinates.
type Blocks struct {
	Intro         interact.Rect
	SkillsTitle   interact.Rect // Pinned with the skills section
	SkillsTip     interact.Rect // Pinned with the skills section
	ProjectsTitle interact.Rect
	ConnectTitle  interact.Rect
	ConnectNotes  interact.Rect
	SocialsTitle  interact.Rect
	Footer        interact.Rect
}

var Page = donburi.NewComponentType[PageData]()

// ArenaData maps stable element keys to entities.
type ArenaData struct {
	byKey map[string]donburi.Entity
}

var Arena = donburi.NewComponentType[ArenaData]()

func (a *ArenaData) Put(key string, e donburi.Entity) {
	if a.byKey == nil {
		a.byKey = make(map[string]donburi.Entity)
	}
	a.byKey[key] = e
}

// Lookup resolves key to a live entry.
func (a *ArenaData) Lookup(w donburi.World, key string) (*donburi.Entry, bool) {
	e, ok := a.byKey[key]
	if !ok || !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}

func (a *ArenaData) Len() int {
	return len(a.byKey)
}
