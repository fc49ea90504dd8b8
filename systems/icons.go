package systems

import (
	"context"
	"errors"

	"github.com/automoto/portfolio/assets"
	"github.com/automoto/portfolio/components"
	cfg "github.com/automoto/portfolio/config"
	"github.com/yohamta/donburi"
)

// requestIcons starts a load for every element with an icon. Loads are
// cancelled with the mount.
func (c *Controller) requestIcons() {
	for _, e := range c.elements {
		if !e.HasComponent(components.Icon) {
			continue
		}
		icon := components.Icon.Get(e)
		if c.opts.Icons == nil || cfg.Debug.Offline {
			icon.State = components.IconHidden
			continue
		}
		icon.State = components.IconLoading
		c.opts.Icons.Fetch(c.Scope.Context(), assets.IconRequest{
			Key:         components.Element.Get(e).Key,
			Slug:        icon.Slug,
			UseFallback: icon.UseFallback,
		})
	}
}

// drainIcons applies every finished load without blocking.
func (c *Controller) drainIcons() {
	if c.opts.Icons == nil {
		return
	}
	results := c.opts.Icons.Results()
	for {
		select {
		case res := <-results:
			c.applyIcon(res)
		default:
			return
		}
	}
}

func (c *Controller) applyIcon(res assets.IconResult) {
	if errors.Is(res.Err, context.Canceled) {
		return
	}
	e, ok := c.lookup(res.Key)
	if !ok || !e.HasComponent(components.Icon) {
		return
	}
	icon := components.Icon.Get(e)
	if res.Err != nil || res.Image == nil {
		icon.State = components.IconHidden
		return
	}
	icon.Image = c.newImage(res.Image)
	icon.Source = res.Source
	icon.State = components.IconReady
}

// iconOf returns the icon of e when it is ready to draw.
func iconOf(e *donburi.Entry) (*components.IconData, bool) {
	if !e.HasComponent(components.Icon) {
		return nil, false
	}
	icon := components.Icon.Get(e)
	return icon, icon.State == components.IconReady && icon.Image != nil
}
