// +build !js

package cards

func defaultScheduler() Scheduler {
	return NewLoop()
}
