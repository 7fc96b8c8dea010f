package mail

import (
	"strings"
	"testing"

	"github.com/whelansws/booking-system/internal/core/ports"
)

func TestConfirmationBody(t *testing.T) {
	body := confirmationBody(ports.ConfirmationInput{
		To:      "a@b.com",
		Name:    "A",
		Service: "Haircut",
		Date:    "2024-01-01",
		Time:    "10:00",
	})

	want := "Hi A, your Haircut on 2024-01-01 at 10:00 is confirmed."
	if body != want {
		t.Fatalf("unexpected body:\n got: %s\nwant: %s", body, want)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("bookings@example.com", "a@b.com", "Booking Confirmation", "hello"))

	for _, want := range []string{
		"From: bookings@example.com\r\n",
		"To: a@b.com\r\n",
		"Subject: Booking Confirmation\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	headerEnd := strings.Index(msg, "\r\n\r\n")
	if headerEnd < 0 {
		t.Fatalf("message has no header/body separator")
	}
	if !strings.Contains(msg[headerEnd:], "hello") {
		t.Fatalf("body not found after headers")
	}
}
