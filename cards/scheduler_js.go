// +build js

package cards

// The browser runs every callback on its one event loop.
func defaultScheduler() Scheduler {
	return timeScheduler{}
}
