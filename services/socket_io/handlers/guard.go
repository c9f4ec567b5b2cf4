package handlers

import "log"

// Guard wraps an event handler so that an unexpected fault in it is logged
// and contained to that command/connection instead of crashing the shared
// process. Every inbound event goes through it.
func Guard(event, clientID string, handler func(args ...interface{})) func(args ...interface{}) {
	return func(args ...interface{}) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[HANDLER-ERROR] Error no capturado en evento %q de %s: %v", event, clientID, r)
			}
		}()
		handler(args...)
	}
}
