package systems

import (
	"github.com/automoto/portfolio/events"
	"github.com/automoto/portfolio/interact"
)

// pollOrientation attaches the device listener once permission is granted
// and forwards the latest sample to the bus. Samples older than the newest
// are dropped.
func (c *Controller) pollOrientation() {
	if c.opts.Platform == nil {
		return
	}
	if p, ok := c.opts.Platform.(interact.Poller); ok {
		p.Poll()
	}

	if c.Gate != nil {
		if state, ok := c.Gate.Poll(); ok && state == interact.PermissionGranted {
			detach := c.opts.Platform.ListenOrientation(c.offerSample)
			c.on(detach)
		}
	}

	select {
	case s := <-c.samples:
		c.Bus.Orientation.Publish(events.Orientation{Sample: s})
	default:
	}
}

// offerSample keeps only the most recent sample. It may be called from the
// platform's event goroutine.
func (c *Controller) offerSample(s interact.OrientationSample) {
	for {
		select {
		case c.samples <- s:
			return
		default:
		}
		select {
		case <-c.samples:
		default:
		}
	}
}
