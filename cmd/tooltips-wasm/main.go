//go:build js && wasm

// Command tooltips-wasm is the browser runtime. Build it with
//
//	GOOS=js GOARCH=wasm go build -o dist/tooltips.wasm ./cmd/tooltips-wasm
//
// and load it with wasm_exec.js. Once the document is parsed it starts a
// tooltips.System and installs window.shinyTooltips:
//
//	shinyTooltips.version      // "0.1.0"
//	shinyTooltips.registry()   // {id: {visible, placement, trigger}}
//	shinyTooltips.remove(id)
package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/vango-dev/tooltips"
	"github.com/vango-dev/tooltips/pkg/dom/jsdom"
	"github.com/vango-dev/tooltips/pkg/sched"
	"github.com/vango-dev/tooltips/pkg/tooltip"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := tooltips.DefaultConfig()
	cfg.Logger = logger

	sys := tooltips.New(jsdom.New(), sched.JS{}, cfg)
	install(sys)

	doc := js.Global().Get("document")
	if doc.Get("readyState").String() == "loading" {
		var onReady js.Func
		onReady = js.FuncOf(func(this js.Value, args []js.Value) any {
			onReady.Release()
			start(sys)
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", onReady)
	} else {
		start(sys)
	}

	// Callbacks run on the main thread; keep the program alive for them.
	select {}
}

func start(sys *tooltips.System) {
	// Errors are already logged; a page without a root stays inert.
	_ = sys.Start(context.Background())
}

// install exposes the system as window.shinyTooltips.
func install(sys *tooltips.System) {
	handle := js.Global().Get("Object").New()
	handle.Set("version", tooltips.Version)

	handle.Set("registry", js.FuncOf(func(this js.Value, args []js.Value) any {
		out := js.Global().Get("Object").New()
		reg := sys.Registry()
		if reg == nil {
			return out
		}
		reg.Each(func(s *tooltip.State) bool {
			def := s.Definition()
			entry := js.Global().Get("Object").New()
			entry.Set("visible", s.Visible())
			entry.Set("placement", string(def.Placement))
			entry.Set("trigger", string(def.Trigger))
			out.Set(def.ID, entry)
			return true
		})
		return out
	}))

	handle.Set("remove", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Type() == js.TypeString {
			sys.Remove(args[0].String())
		}
		return nil
	}))

	js.Global().Set("shinyTooltips", handle)
}
