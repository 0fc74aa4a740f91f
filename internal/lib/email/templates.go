package email

// Template names an embedded HTML email template.
type Template string

const (
	// TemplateWelcome corresponds to templates/welcome.html.
	TemplateWelcome Template = "welcome"
)
