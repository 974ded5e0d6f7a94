package verify

// User identifies the sender of an inbound event.
type User struct {
	ID          int64
	DisplayName string
}

// Input is an inbound chat event mapped to the engine's boundary by the
// transport adapter.
type Input interface {
	isInput()
}

// TextInput is a plain text message.
type TextInput struct {
	Text string
}

// PhotoInput is a photo message with an optional caption.
type PhotoInput struct {
	Caption string
}

func (TextInput) isInput()  {}
func (PhotoInput) isInput() {}

// Reply is the single outbound message produced by a transition.
type Reply struct {
	Text string
}
