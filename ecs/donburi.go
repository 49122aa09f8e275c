package ecs

import (
	"github.com/phanxgames/carousel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for carousel selection events.
// Subscribe to this in your ECS systems to receive changes and settles.
var SelectionEventType = events.NewEventType[carousel.SelectionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Selection events are published to SelectionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) carousel.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event carousel.SelectionEvent) {
	SelectionEventType.Publish(s.world, event)
}

// Selection is the latest known selection of one carousel.
type Selection struct {
	Carousel string
	Index    int
	ItemID   string
	Settled  bool
}

// SelectionComponent holds a carousel's selection on its entity.
var SelectionComponent = donburi.NewComponentType[Selection]()

// Tracker keeps one SelectionComponent entity per carousel name in sync with
// SelectionEventType. Entities are created on the first event for a name.
type Tracker struct {
	entities map[string]donburi.Entity
}

// NewTracker subscribes a tracker to world's selection events.
func NewTracker(world donburi.World) *Tracker {
	t := &Tracker{entities: make(map[string]donburi.Entity)}
	SelectionEventType.Subscribe(world, t.handle)
	return t
}

func (t *Tracker) handle(w donburi.World, e carousel.SelectionEvent) {
	ent, ok := t.entities[e.Carousel]
	if !ok || !w.Valid(ent) {
		ent = w.Create(SelectionComponent)
		t.entities[e.Carousel] = ent
	}
	SelectionComponent.SetValue(w.Entry(ent), Selection{
		Carousel: e.Carousel,
		Index:    e.Index,
		ItemID:   e.ItemID,
		Settled:  e.Settled,
	})
}

// Selection returns the tracked selection for a carousel name.
func (t *Tracker) Selection(w donburi.World, name string) (Selection, bool) {
	ent, ok := t.entities[name]
	if !ok || !w.Valid(ent) {
		return Selection{}, false
	}
	return *SelectionComponent.Get(w.Entry(ent)), true
}
