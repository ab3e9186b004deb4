package email

// PreviewData holds sample template data, keyed by template name, for
// rendering emails locally.
var PreviewData = map[Template]map[string]string{
	TemplateProjectPaid: ProjectPaidData{
		ProjectID:  42,
		Title:      "Website redesign",
		AssignedTo: "Ana",
		Category:   "Design",
		Cost:       "1500.00",
		DueDate:    "2024-01-01",
	}.templateData(),
}
