package widget

// Trigger is anything that can fire the add action: an add button, the Enter
// key on the input, a script.
type Trigger interface {
	OnActivate(fn func())
}

// Button is a Trigger fired by calling Press.
type Button struct {
	handlers []func()
}

func (b *Button) OnActivate(fn func()) {
	b.handlers = append(b.handlers, fn)
}

// Press runs the bound handlers in registration order.
func (b *Button) Press() {
	for _, fn := range b.handlers {
		fn()
	}
}

// Notifier presents a blocking, user-facing message. The host decides how.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
