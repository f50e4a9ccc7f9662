package email

import "fmt"

// NewCraftNotification renders the message sent to a matched agency.
// Rendering stays deliberately minimal; richer templating belongs to the
// email-rendering system outside this pipeline.
func NewCraftNotification(projectName, tradeName string, workerCount int) (subject, body string) {
	subject = fmt.Sprintf("New labor request: %s", projectName)
	body = fmt.Sprintf(
		"<p>A contractor is looking for <b>%d</b> worker(s) for <b>%s</b> on project <b>%s</b>.</p>"+
			"<p>Log in to your CrewLink inbox to view and respond.</p>",
		workerCount, tradeName, projectName,
	)
	return subject, body
}
