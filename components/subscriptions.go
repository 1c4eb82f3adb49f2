package components

import "github.com/yohamta/donburi"

// SubscriptionsData records which world event handlers are registered.
type SubscriptionsData struct {
	ViewersUpdated bool
}

var Subscriptions = donburi.NewComponentType[SubscriptionsData]()
