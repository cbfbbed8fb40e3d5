package tags

import "github.com/yohamta/donburi"

var (
	LocalPlayer = donburi.NewTag().SetName("LocalPlayer")
)
