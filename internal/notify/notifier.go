package notify

import (
	"fmt"

	"github.com/rs/zerolog"
)

// WarnNotificationFailed is attached to a successful response when mail
// delivery failed. Delivery problems never roll back the state change.
const WarnNotificationFailed = "notification_failed"

type Notifier struct {
	sender Sender
	log    zerolog.Logger
}

func NewNotifier(sender Sender, log zerolog.Logger) *Notifier {
	return &Notifier{sender: sender, log: log}
}

// DoctorWelcome mails login credentials to a newly created doctor account.
// Returns a soft warning on failure, never an error.
func (n *Notifier) DoctorWelcome(email, name, password string) []string {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour doctor account has been created.\n\nLogin email: %s\nPassword: %s\n\nPlease change your password after the first login.\n",
		name, email, password,
	)
	return n.deliver(email, "Your hospital account", body)
}

// BookingConfirmed mails the patient after a successful booking.
func (n *Notifier) BookingConfirmed(email, patientName, doctorName, date, clock string) []string {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment with Dr. %s on %s at %s is confirmed.\n",
		patientName, doctorName, date, clock,
	)
	return n.deliver(email, "Appointment confirmed", body)
}

func (n *Notifier) deliver(to, subject, body string) []string {
	if err := n.sender.Send(to, subject, body); err != nil {
		n.log.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("notification failed")
		return []string{WarnNotificationFailed}
	}
	return nil
}
