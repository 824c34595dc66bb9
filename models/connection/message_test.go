package connection

import "testing"

func TestMessageAddError(t *testing.T) {
	msg := NewMessage[RespAttack](CodeInvalidSignal)
	msg.AddError("invalid input: bad token", "try again")

	if msg.Code != CodeInvalidSignal {
		t.Fatalf("expected code: %d\tgot: %d", CodeInvalidSignal, msg.Code)
	}
	if msg.Error == nil || msg.Error.Message != "try again" || msg.Error.ErrorDetails != "invalid input: bad token" {
		t.Fatalf("expected error to be set\tgot: %+v", msg.Error)
	}
	if msg.Payload.ShipName != "" || msg.Payload.Sunk {
		t.Fatalf("expected zero payload on a rejected line\tgot: %+v", msg.Payload)
	}
}

func TestMessageAddPayload(t *testing.T) {
	msg := NewMessage[RespRevealToggle](CodeRevealToggle)
	msg.AddPayload(RespRevealToggle{RevealMode: true})

	if !msg.Payload.RevealMode || msg.Error != nil {
		t.Fatalf("expected reveal payload without error\tgot: %+v", msg)
	}
}
