package encode

import (
	"github.com/fatih/color"
)

// Colors holds the sprintf-style color functions used for each part of
// the rendered output.
type Colors struct {
	Leaf func(string, ...any) string
	Tag  func(string, ...any) string
	Sep  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Leaf: color.RGB(128, 216, 236).SprintfFunc(),
		Tag:  color.RGB(74, 92, 138).SprintfFunc(),
		Sep:  color.RGB(255, 0, 196).SprintfFunc(),
	}
}
