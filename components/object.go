package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a Body into the broad-phase space. The Body stays
// authoritative; the object is re-synced every frame.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase grid shared by all objects.
var Space = donburi.NewComponentType[resolv.Space]()
