package ports

import "context"

// Message template names known to the renderer.
const (
	MsgReservationConfirmed   = "reservation_confirmed"
	MsgReservationRescheduled = "reservation_rescheduled"
	MsgReservationCancelled   = "reservation_cancelled"
	MsgProgramInvite          = "program_invite"
	MsgRentalStarted          = "rental_started"
	MsgDonorStory             = "donor_story"
	MsgReturnVisit            = "return_visit"
	MsgReturnMail             = "return_mail"
	MsgOverdueReminder        = "overdue_reminder"
)

// MessageRenderer renders a named plain-text template with placeholder data.
// Templating is an external collaborator, not part of the core.
type MessageRenderer interface {
	Render(name string, data map[string]any) (string, error)
}

// MessageSender dispatches an SMS-like text. Like notifications, sends happen
// only after commit and failures are logged, never propagated.
type MessageSender interface {
	Send(ctx context.Context, phone, text string) error
}
