package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	palette   Palette
	renderers []rendererEntry
	regCount  int

	status    LineRenderer // Optional bottom row, hidden in fullscreen
	lastTitle string
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen, palette Palette) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		canvas:    NewCanvas(w, h),
		palette:   palette,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// SetStatusLine installs the bottom row renderer
func (o *RenderOrchestrator) SetStatusLine(l LineRenderer) {
	o.status = l
}

// Resize syncs the screen after a terminal resize, the canvas follows on the next frame
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// Canvas exposes the pixel buffer of the last frame
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// RenderFrame executes the render pipeline: clear, render all, flush, title, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	w, h := o.screen.Size()
	rows := h
	showStatus := o.status != nil && !ctx.Fullscreen && h > 1
	if showStatus {
		rows = h - 1
	}

	o.canvas.Resize(w, rows)
	o.canvas.Clear(o.palette.Background)

	ctx.ScreenWidth, ctx.ScreenHeight = w, h
	ctx.CanvasWidth, ctx.CanvasHeight = o.canvas.Size()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.canvas.FlushToScreen(o.screen)
	if showStatus {
		o.status.RenderLine(ctx, o.screen, h-1)
	}

	o.updateTitle(ctx.Title)
	o.screen.Show()
}

// updateTitle sets the terminal title only when it changed
func (o *RenderOrchestrator) updateTitle(title string) {
	if title == o.lastTitle {
		return
	}
	o.screen.SetTitle(title)
	o.lastTitle = title
}

// LastTitle returns the most recently set terminal title
func (o *RenderOrchestrator) LastTitle() string {
	return o.lastTitle
}
