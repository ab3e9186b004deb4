package email

// Template names an HTML file under templates/.
type Template string

const (
	// TemplateProjectPaid corresponds to templates/project_paid.html
	TemplateProjectPaid Template = "project_paid"
)
