package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/chimera/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type RecoverableGoOptions struct {
	name           string
	logger         log.Logger
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

// WithName tags the panic log entry, e.g. with the background loop's name
func WithName(name string) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.name = name
	}
}

// WithLogger reports panics through l so request or session fields are kept
func WithLogger(l log.Logger) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.logger = l
	}
}

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(o *RecoverableGoOptions) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a goroutine. The returned channel yields the recovered panic,
// or is closed when f returns normally.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) <-chan *PanicEvent {
	opts := RecoverableGoOptions{logger: log.Log()}
	for _, fn := range fns {
		fn(&opts)
	}

	done := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			p := recover()
			if p == nil {
				close(done)
				return
			}

			stack := debug.Stack()
			opts.logger.WithFields(log.Fields{
				"err":       p,
				"goroutine": opts.name,
				"stack":     string(stack),
			}).Error("panic")
			if opts.afterRecovered != nil {
				opts.afterRecovered(p, stack)
			}
			done <- &PanicEvent{p, stack}
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}
		f()
	}()
	return done
}
