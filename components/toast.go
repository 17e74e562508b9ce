package components

import "github.com/yohamta/donburi"

// ToastKind selects the toast text color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastWarning
)

// ToastLine is one visible toast message with a frame countdown.
type ToastLine struct {
	Text   string
	Kind   ToastKind
	Frames int
}

// ToastStateData is the singleton queue of visible toasts.
type ToastStateData struct {
	Lines []ToastLine
}

var ToastState = donburi.NewComponentType[ToastStateData]()
