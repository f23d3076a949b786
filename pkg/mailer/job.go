package mailer

// EmailJob is the JSON payload put on the email queue. Bodies are rendered
// before publishing so the worker only has to deliver them.
type EmailJob struct {
	To      string `json:"to"`
	ToName  string `json:"to_name,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
