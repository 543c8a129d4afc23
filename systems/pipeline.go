package systems

import (
	"github.com/automoto/ridgerunner/entity"
)

// Step runs one frame: input, behaviors, broad-phase sync, collisions,
// camera. Every stage finishes before the next starts. A paused frame only
// advances input, so scripted motion and elapsed time stay frozen.
func Step(ctx *entity.Context, src InputSource) {
	ctx.Input = UpdateInput(ctx.World, src)
	if UpdatePause(ctx.World, ctx.Input) {
		return
	}
	UpdateEntities(ctx)
	UpdateObjects(ctx.World)
	UpdateCollisions(ctx)
	UpdateCamera(ctx.World)
	ctx.Elapsed += ctx.Dt
}
