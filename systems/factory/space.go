package factory

import (
	"github.com/automoto/ridgerunner/archetypes"
	"github.com/automoto/ridgerunner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives the entity a broad-phase object matching its Body and
// adds it to the space if one exists.
func attachObject(w donburi.World, e *donburi.Entry, resolvTags ...string) *resolv.Object {
	body := components.Body.Get(e)
	obj := resolv.NewObject(body.Position.X, body.Position.Y, body.Size.X, body.Size.Y, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, body.Size.X, body.Size.Y))
	obj.Data = e.Entity()

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
