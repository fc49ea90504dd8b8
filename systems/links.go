//go:build !js

package systems

import "github.com/pkg/browser"

// OpenLink hands url to the system browser or mail client.
func OpenLink(url string) error {
	return browser.OpenURL(url)
}
