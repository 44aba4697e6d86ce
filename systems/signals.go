package systems

import (
	"github.com/automoto/puffball/components"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateSignal(e *ecs.ECS) *components.SignalData {
	entry, ok := components.Signal.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Signal))
	}
	return components.Signal.Get(entry)
}

// RaiseSignal asks the scene for a transition once the frame is over.
// A restart outranks advancing to the next level.
func RaiseSignal(e *ecs.ECS, kind components.SignalKind) {
	s := getOrCreateSignal(e)
	if kind > s.Kind {
		s.Kind = kind
	}
}

// TakeSignal returns the pending signal and clears it.
func TakeSignal(e *ecs.ECS) components.SignalKind {
	s := getOrCreateSignal(e)
	kind := s.Kind
	s.Kind = components.SignalNone
	return kind
}
