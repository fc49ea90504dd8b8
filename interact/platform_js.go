//go:build js

package interact

import (
	"context"
	"fmt"
	"syscall/js"
)

// BrowserPlatform reads deviceorientation events from the page.
type BrowserPlatform struct{}

func DefaultPlatform() Platform {
	return BrowserPlatform{}
}

func (BrowserPlatform) HasOrientationPermissionAPI() bool {
	ev := js.Global().Get("DeviceOrientationEvent")
	return ev.Truthy() && ev.Get("requestPermission").Type() == js.TypeFunction
}

func (BrowserPlatform) RequestOrientationPermission(ctx context.Context) (PermissionState, error) {
	ev := js.Global().Get("DeviceOrientationEvent")
	answer := make(chan PermissionState, 1)
	failed := make(chan error, 1)

	onThen := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].String() == "granted" {
			answer <- PermissionGranted
		} else {
			answer <- PermissionDenied
		}
		return nil
	})
	onCatch := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		failed <- fmt.Errorf("requestPermission: %s", msg)
		return nil
	})
	release := func() {
		onThen.Release()
		onCatch.Release()
	}

	ev.Call("requestPermission").Call("then", onThen).Call("catch", onCatch)

	select {
	case s := <-answer:
		release()
		if s != PermissionGranted {
			return s, ErrPermissionDenied
		}
		return s, nil
	case err := <-failed:
		release()
		return PermissionDenied, err
	case <-ctx.Done():
		// The promise may still settle; keep the callbacks alive until it does.
		go func() {
			select {
			case <-answer:
			case <-failed:
			}
			release()
		}()
		return PermissionDenied, ctx.Err()
	}
}

func (BrowserPlatform) ListenOrientation(fn func(OrientationSample)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		fn(OrientationSample{
			Beta:  number(args[0].Get("beta")),
			Gamma: number(args[0].Get("gamma")),
		})
		return nil
	})
	js.Global().Call("addEventListener", "deviceorientation", cb)
	return func() {
		js.Global().Call("removeEventListener", "deviceorientation", cb)
		cb.Release()
	}
}

func number(v js.Value) *float64 {
	if v.Type() != js.TypeNumber {
		return nil
	}
	f := v.Float()
	return &f
}
