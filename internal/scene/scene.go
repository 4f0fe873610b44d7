// Package scene builds ready-to-run worlds: a registry of built-in demo
// scenes plus declarative assembly from a config file.
package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/kinetic/internal/engine"
	"github.com/san-kum/kinetic/internal/world"
)

// Builder assembles a fresh world for one run. Builders must be pure:
// calling one twice with the same config gives independent worlds that
// step identically.
type Builder func(cfg engine.Config) *world.World

type Scene struct {
	Name        string
	Description string
	Build       Builder
}

type Registry struct {
	scenes map[string]Scene
}

func NewRegistry() *Registry {
	r := &Registry{scenes: make(map[string]Scene)}

	r.register(Scene{Name: "bounce", Description: "two balls dropped and colliding inside a walled box", Build: Bounce})
	r.register(Scene{Name: "rope", Description: "anchored chain of rigid links swinging under gravity", Build: Rope})
	r.register(Scene{Name: "snapgrid", Description: "beads snapping back onto lattice points after a seeded kick", Build: SnapGrid})
	r.register(Scene{Name: "bead", Description: "bead gliding along a circular wire under gravity", Build: Bead})
	r.register(Scene{Name: "orbit", Description: "satellite held on a circular path by a rigid tether", Build: Orbit})

	return r
}

func (r *Registry) register(s Scene) { r.scenes[s.Name] = s }

func (r *Registry) Get(name string) (Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("unknown scene: %s", name)
	}
	return s, nil
}

// List returns every scene sorted by name.
func (r *Registry) List() []Scene {
	scenes := make([]Scene, 0, len(r.scenes))
	for _, s := range r.scenes {
		scenes = append(scenes, s)
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes
}
