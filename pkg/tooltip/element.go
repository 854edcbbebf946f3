package tooltip

import (
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/dom"
)

// Attributes set on every display element.
const (
	AttrTooltipID = "data-tooltip-id"
	AttrPlacement = "data-placement"
)

// buildElement creates the display element for def and appends it, hidden,
// to the root container:
//
//	<div class="shiny-tooltip shiny-tooltip-fade [shiny-tooltip-<size>] [shiny-tooltip-interactive]"
//	     data-tooltip-id="..." data-placement="...">
//	  <div class="shiny-tooltip-content">markup</div>
//	  <div class="shiny-tooltip-arrow"></div>
//	</div>
func (r *Registry) buildElement(def definition.Definition) dom.Element {
	el := r.doc.CreateElement("div")
	el.AddClass(r.class(""))
	el.AddClass(r.class(def.Animation))
	el.SetAttribute(AttrTooltipID, def.ID)
	el.SetAttribute(AttrPlacement, string(def.Placement))

	if def.HasSizeClass() {
		el.AddClass(r.class(def.Size))
	}

	if def.Width != "" {
		el.SetStyle("width", def.Width)
	}
	if def.MaxWidth != "" {
		el.SetStyle("maxWidth", def.MaxWidth)
		// Without an explicit width, let the content size the tooltip up
		// to the max width.
		if def.Width == "" {
			el.SetStyle("width", "auto")
		}
	}

	if def.Interactive {
		el.AddClass(r.class("interactive"))
		el.SetStyle("pointerEvents", "auto")
	}

	for _, d := range definition.ParseStyle(def.CustomStyle) {
		el.SetStyle(d.Property, d.Value)
	}

	content := r.doc.CreateElement("div")
	content.AddClass(r.class("content"))
	content.SetInnerHTML(def.Content)

	arrow := r.doc.CreateElement("div")
	arrow.AddClass(r.class("arrow"))

	el.AppendChild(content)
	el.AppendChild(arrow)
	r.root.AppendChild(el)
	return el
}
