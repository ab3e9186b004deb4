package email

import (
	"fmt"
	"strconv"
)

// ProjectPaidData describes a project that was just marked as paid.
type ProjectPaidData struct {
	ProjectID  int64
	Title      string
	AssignedTo string
	Category   string
	Cost       string
	DueDate    string
}

func (d ProjectPaidData) templateData() map[string]string {
	return map[string]string{
		"ProjectID":  strconv.FormatInt(d.ProjectID, 10),
		"Title":      d.Title,
		"AssignedTo": d.AssignedTo,
		"Category":   d.Category,
		"Cost":       d.Cost,
		"DueDate":    d.DueDate,
	}
}

// SendProjectPaidEmail notifies the billing contact about a paid project.
func (c *Client) SendProjectPaidEmail(to string, data ProjectPaidData) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("Project #%d marked as paid", data.ProjectID),
		TemplateProjectPaid,
		data.templateData(),
	)
}
