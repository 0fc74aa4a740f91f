package email

// SendWelcomeEmail sends the signup welcome email. Name may be empty
// when the user registered without one; the template handles both.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to MediaLog!",
		TemplateWelcome,
		data,
	)
}
