package components

import "github.com/yohamta/donburi"

// NameData labels an entity for logs and lookups.
type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()
