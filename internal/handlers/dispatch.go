package handlers

import "log"

// dispatch runs fn on its own goroutine, detached from the request. A panic
// inside a notification or broadcast must never reach the caller, so it is
// recovered and logged at the task boundary.
func dispatch(tag string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[%s] background task panic: %v", tag, r)
			}
		}()
		fn()
	}()
}
