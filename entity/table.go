package entity

import (
	"github.com/automoto/ridgerunner/collision"
	"github.com/automoto/ridgerunner/components"
	"github.com/automoto/ridgerunner/controller"
	"github.com/automoto/ridgerunner/motion"
	"github.com/yohamta/donburi"
)

type updateFunc func(ctx *Context, e *donburi.Entry, body *components.BodyData)

type drawFunc func(e *donburi.Entry, body *components.BodyData, r Renderer, cam *components.CameraData)

// Markers have no entry here.
var updaters = [KindCount]updateFunc{
	KindGravity: func(ctx *Context, e *donburi.Entry, body *components.BodyData) {
		motion.Gravity(body, Gravity.Type.Get(e), ctx.Dt)
	},
	KindPatrol: func(ctx *Context, e *donburi.Entry, body *components.BodyData) {
		motion.Patrol(body, Patrol.Type.Get(e), ctx.Dt)
	},
	KindBounce: func(ctx *Context, e *donburi.Entry, body *components.BodyData) {
		motion.Bounce(body, Bounce.Type.Get(e), ctx.Dt)
	},
	KindShuttle: func(ctx *Context, e *donburi.Entry, body *components.BodyData) {
		motion.Shuttle(body, Shuttle.Type.Get(e), ctx.Dt)
	},
	KindPath: func(ctx *Context, e *donburi.Entry, body *components.BodyData) {
		motion.Path(body, Path.Type.Get(e), ctx.Dt)
	},
	KindController: func(ctx *Context, e *donburi.Entry, body *components.BodyData) {
		var in controller.Input
		if ctx.Input != nil {
			in = ctx.Input
		}
		controller.Update(ctx.World, body, Controller.Type.Get(e), in, ctx.Dt, ctx.Log)
	},
}

var drawers = [KindCount]drawFunc{
	KindSprite: func(e *donburi.Entry, body *components.BodyData, r Renderer, cam *components.CameraData) {
		if body == nil {
			return
		}
		r.FillRect(collision.FromBody(body), cam, Sprite.Type.Get(e).Color)
	},
	KindBackground: func(e *donburi.Entry, body *components.BodyData, r Renderer, cam *components.CameraData) {
		r.Clear(Background.Type.Get(e).Color)
	},
}
