package email

// Email is one outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string // text/html
}

// Provider sends notification emails. The pipeline only consumes it as
// a trigger point: delivery success or failure is reported back through
// the returned error and recorded on the notification.
type Provider interface {
	Send(email *Email) error
}
