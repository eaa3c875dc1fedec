package canvas

import "fmt"

// Tool is the active pointer tool.
type Tool uint8

// Tools.
const (
	ToolMove Tool = iota
	ToolRect
	ToolDraw
	ToolChangeCanvas

	toolCount
)

// Tools lists every tool in sidebar order.
var Tools = []Tool{ToolChangeCanvas, ToolMove, ToolRect, ToolDraw}

// String returns the label shown on the tool's button.
func (t Tool) String() string {
	switch t {
	case ToolMove:
		return "Move"
	case ToolRect:
		return "Rectangle"
	case ToolDraw:
		return "Draw"
	case ToolChangeCanvas:
		return "Change Canvas"
	default:
		panic(fmt.Sprintf("canvas: invalid tool %d", t))
	}
}
