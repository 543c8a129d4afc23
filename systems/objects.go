package systems

import (
	"github.com/automoto/ridgerunner/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every broad-phase object to its Body and re-buckets it.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		syncObject(e)
	}
}

func syncObject(e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil || !e.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(e)
	obj.X = body.Position.X
	obj.Y = body.Position.Y
	obj.Update()
}
