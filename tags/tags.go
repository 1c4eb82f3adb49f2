package tags

import "github.com/yohamta/donburi"

var (
	Subject = donburi.NewTag().SetName("Subject")
	Viewer  = donburi.NewTag().SetName("Viewer")
)
