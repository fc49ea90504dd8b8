//go:build js

package systems

import "syscall/js"

// OpenLink opens url in a new tab. With noopener the browser does not hand
// back the window, so a blocked popup cannot be detected.
func OpenLink(url string) error {
	js.Global().Call("open", url, "_blank", "noopener")
	return nil
}
