package systems

import (
	"github.com/automoto/ridgerunner/collision"
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/controller"
	"github.com/automoto/ridgerunner/entity"
	"github.com/automoto/ridgerunner/tags"
	"github.com/yohamta/donburi"
)

// checkOffsets widen the broad-phase lookup by a pixel on each side so a body
// resting exactly on a cell boundary still finds what it stands on. The last
// offset reaches the furthest a descending platform can be and still hold its rider.
var checkOffsets = [...][2]float64{{0, 0}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}, {0, collision.MaxStickReach}}

// UpdateCollisions resolves the player against every solid and hazard in scene
// order and feeds the contacts back into the controller.
func UpdateCollisions(ctx *entity.Context) {
	w := ctx.World
	scene := sceneOf(w)
	if scene == nil {
		return
	}
	player, ok := PlayerEntry(w)
	if !ok {
		return // no player, skip collisions this frame
	}
	body := entity.Body(player)
	c := entity.Get(player, entity.Controller)
	if body == nil || c == nil || !entity.Active(player) {
		return
	}

	candidates := broadPhase(w, player)

	controller.BeginContact(c)
	for _, id := range scene.Entities {
		if id == scene.Player || !w.Valid(id) {
			continue
		}
		if candidates != nil {
			if _, ok := candidates[id]; !ok {
				continue
			}
		}
		e := w.Entry(id)
		if !entity.Active(e) {
			continue
		}
		other := entity.Body(e)
		if other == nil {
			continue
		}
		rect := collision.FromBody(other)

		if entity.Has(e, entity.Hazard) {
			if collision.Overlaps(collision.FromBody(body), rect) {
				controller.Kill(body, c, controller.CauseHazard, ctx.Log)
				syncObject(player)
				return
			}
			continue
		}
		if !entity.Has(e, entity.Solid) {
			continue
		}

		moving := e.HasComponent(tags.Platform)
		dx := other.Displacement().X
		if moving && c.AttachedPlatform == id {
			// The controller already followed this platform during its update.
			dx = 0
		}
		landed := collision.Resolve(body, rect, dx)
		if !landed {
			landed = collision.Stick(body, rect, collision.StickReach(other.Displacement().Y), dx)
		}
		if landed {
			if moving {
				controller.SetOnPlatform(c, id, other.Position.X)
			} else {
				controller.Land(c)
			}
		}
	}
	controller.EndContact(c)
	syncObject(player)
}

// broadPhase returns the entities sharing space cells with the player, or nil
// when there is no space and every entity must be tested.
func broadPhase(w donburi.World, player *donburi.Entry) map[donburi.Entity]struct{} {
	if _, ok := components.Space.First(w); !ok || !player.HasComponent(components.Object) {
		return nil
	}
	obj := components.Object.Get(player)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}

	found := make(map[donburi.Entity]struct{})
	for _, p := range checkOffsets {
		check := obj.Check(p[0], p[1], tags.ResolvSolid, tags.ResolvHazard)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			if id, ok := o.Data.(donburi.Entity); ok {
				found[id] = struct{}{}
			}
		}
	}
	return found
}
