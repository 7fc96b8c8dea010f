package ports

import "context"

// ConfirmationInput holds the booking details rendered into the
// confirmation message.
type ConfirmationInput struct {
	To      string
	Name    string
	Service string
	Date    string
	Time    string
}

// Notifier delivers a booking confirmation to the customer's address.
type Notifier interface {
	SendConfirmation(ctx context.Context, input ConfirmationInput) error
}
