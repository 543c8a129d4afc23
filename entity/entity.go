// Package entity layers an ordered behavior list on top of donburi entries.
// Behaviors are ordinary donburi components; the list records which kinds an
// entity carries and in what order they update and draw.
package entity

import (
	"image/color"
	"log/slog"

	"github.com/automoto/ridgerunner/collision"
	"github.com/automoto/ridgerunner/components"
	"github.com/yohamta/donburi"
)

// BehaviorsData is the ordered list of behavior kinds on one entity.
type BehaviorsData struct {
	Order  []Kind
	Active bool
}

var Behaviors = donburi.NewComponentType[BehaviorsData]()

// Context is everything a behavior may read during one frame.
type Context struct {
	World   donburi.World
	Dt      float64
	Elapsed float64
	Input   *components.InputData
	Log     *slog.Logger
}

// Renderer draws world-space rectangles through a camera.
type Renderer interface {
	Clear(clr color.Color)
	FillRect(r collision.Rect, cam *components.CameraData, clr color.Color)
}

// New creates an active entity with a Body plus any extra components and
// appends it to the scene order.
func New(w donburi.World, body components.BodyData, cs ...donburi.IComponentType) *donburi.Entry {
	base := []donburi.IComponentType{components.Body}
	e := w.Entry(w.Create(append(base, cs...)...))
	return Init(e, body)
}

// Init prepares an entry spawned elsewhere (usually from an archetype): it sets
// the Body, starts an empty active behavior list and registers the entity in
// the scene order.
func Init(e *donburi.Entry, body components.BodyData) *donburi.Entry {
	if e.HasComponent(components.Body) {
		components.Body.SetValue(e, body)
	} else {
		donburi.Add(e, components.Body, &body)
	}
	if !e.HasComponent(Behaviors) {
		donburi.Add(e, Behaviors, &BehaviorsData{Active: true})
	}

	if scene, ok := components.Scene.First(e.World); ok {
		s := components.Scene.Get(scene)
		s.Entities = append(s.Entities, e.Entity())
	}
	return e
}

// Add attaches a behavior or replaces its data. A replaced behavior keeps its
// original position in the update order. The returned pointer is valid until
// the entity's component set changes.
func Add[T any](e *donburi.Entry, b Behavior[T], value T) *T {
	if e.HasComponent(b.Type) {
		b.Type.SetValue(e, value)
		return b.Type.Get(e)
	}
	donburi.Add(e, b.Type, &value)
	if list := behaviorsOf(e); list != nil {
		list.Order = append(list.Order, b.Kind)
	}
	return b.Type.Get(e)
}

// Mark attaches a data-less marker behavior such as Solid or Hazard.
func Mark(e *donburi.Entry, b Behavior[donburi.Tag]) {
	if e.HasComponent(b.Type) {
		return
	}
	var tag donburi.Tag
	donburi.Add(e, b.Type, &tag)
	if list := behaviorsOf(e); list != nil {
		list.Order = append(list.Order, b.Kind)
	}
}

// Get returns the behavior data or nil if the entity lacks it.
func Get[T any](e *donburi.Entry, b Behavior[T]) *T {
	if e == nil || !e.Valid() || !e.HasComponent(b.Type) {
		return nil
	}
	return b.Type.Get(e)
}

// Has reports whether the entity carries the behavior.
func Has[T any](e *donburi.Entry, b Behavior[T]) bool {
	return e != nil && e.Valid() && e.HasComponent(b.Type)
}

// Kinds returns the entity's behavior kinds in update order.
func Kinds(e *donburi.Entry) []Kind {
	list := behaviorsOf(e)
	if list == nil {
		return nil
	}
	return append([]Kind(nil), list.Order...)
}

// Active reports whether the entity takes part in update and draw.
func Active(e *donburi.Entry) bool {
	list := behaviorsOf(e)
	return list != nil && list.Active
}

// SetActive toggles update and draw without destroying the entity.
func SetActive(e *donburi.Entry, active bool) {
	if list := behaviorsOf(e); list != nil {
		list.Active = active
	}
}

// Body returns the entity's Body or nil.
func Body(e *donburi.Entry) *components.BodyData {
	if e == nil || !e.Valid() || !e.HasComponent(components.Body) {
		return nil
	}
	return components.Body.Get(e)
}

// Update captures the previous position and runs every behavior in order.
// Behaviors need a Body; without one the entity is skipped.
func Update(ctx *Context, e *donburi.Entry) {
	if !Active(e) {
		return
	}
	body := Body(e)
	if body == nil {
		return
	}
	body.Previous = body.Position

	for _, k := range behaviorsOf(e).Order {
		if fn := updaters[k]; fn != nil {
			fn(ctx, e, body)
		}
	}
}

// Draw runs every drawing behavior in order.
func Draw(e *donburi.Entry, r Renderer, cam *components.CameraData) {
	if !Active(e) {
		return
	}
	body := Body(e)
	for _, k := range behaviorsOf(e).Order {
		if fn := drawers[k]; fn != nil {
			fn(e, body, r, cam)
		}
	}
}

func behaviorsOf(e *donburi.Entry) *BehaviorsData {
	if e == nil || !e.Valid() || !e.HasComponent(Behaviors) {
		return nil
	}
	return Behaviors.Get(e)
}
