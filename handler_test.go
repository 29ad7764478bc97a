package strata

import "testing"

type handlerDamageMsg struct{ Amount int }

func TestRunHandlerInvokesOncePerMessageInLogOrder(t *testing.T) {
	resetGlobalComponentRegistry()
	reg := NewRegistry(Options{})
	RegisterMessage[handlerDamageMsg](reg.Messages())

	Send(reg.Messages(), handlerDamageMsg{Amount: 1})
	Send(reg.Messages(), handlerDamageMsg{Amount: 2})
	Send(reg.Messages(), handlerDamageMsg{Amount: 3})

	var seen []int
	RunHandler(reg, MessageHandler[handlerDamageMsg]{
		Handle: func(msg handlerDamageMsg, acc *Accessor, reg *Registry) {
			seen = append(seen, msg.Amount)
		},
	})

	want := []int{1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i, v := range want {
		if seen[i] != v {
			t.Fatalf("got %v, want %v", seen, want)
		}
	}
}
