package render

import "github.com/gdamore/tcell/v2"

// SystemRenderer draws one layer of the frame onto the pixel canvas
type SystemRenderer interface {
	Render(ctx RenderContext, canvas *Canvas)
}

// LineRenderer draws a single text row below the canvas
type LineRenderer interface {
	RenderLine(ctx RenderContext, screen tcell.Screen, row int)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
