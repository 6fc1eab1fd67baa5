package middleware

import (
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// Recover is deferred by the update worker. It logs the panic with the
// update's fields and calls onPanic, if set, so the user gets an answer.
func Recover(fields log.Fields, onPanic func()) {
	r := recover()
	if r == nil {
		return
	}
	log.WithFields(fields).WithFields(log.Fields{
		"panic": fmt.Sprint(r),
		"stack": string(debug.Stack()),
	}).Error("Update handler panicked")
	if onPanic != nil {
		onPanic()
	}
}
