package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-timer/config"
	"github.com/lixenwraith/vi-timer/render"
	"github.com/lixenwraith/vi-timer/render/renderers"
)

// NewOrchestrator creates the render orchestrator and registers the timer renderers
func NewOrchestrator(screen tcell.Screen, display config.DisplayConfig) *render.RenderOrchestrator {
	palette := render.NewPalette(display)
	orchestrator := render.NewRenderOrchestrator(screen, palette)

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{renderers.NewPengerRenderer(render.NewPengerSheet(), display.Penger), render.PriorityWalker},
		{renderers.NewDigitsRenderer(render.NewDigitSheet(), palette), render.PriorityDigits},
	}

	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	if display.HintLine {
		orchestrator.SetStatusLine(renderers.NewStatusBarRenderer(palette))
	}

	return orchestrator
}
