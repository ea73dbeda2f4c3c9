// Package caps declares the built-in capability types. A capability is an
// empty marker type; its identity is what matters. Manifests reference them
// by their qualified type name, e.g. "caps.Audio".
package caps

import (
	"github.com/vk/nodewire/tag"
)

// Audio marks ports carrying an audio signal.
type Audio struct{}

// Control marks ports carrying a low-rate control signal.
type Control struct{}

// Trigger marks ports carrying discrete trigger events.
type Trigger struct{}

// Float marks parameter ports backed by a numeric widget.
type Float struct{}

// Text marks parameter ports backed by a text widget.
type Text struct{}

// RegisterAll registers every built-in capability with the applicator.
func RegisterAll(a *tag.Applicator) {
	tag.RegisterTag[Audio](a)
	tag.RegisterTag[Control](a)
	tag.RegisterTag[Trigger](a)
	tag.RegisterTag[Float](a)
	tag.RegisterTag[Text](a)
}
