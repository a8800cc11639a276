package domain

import "time"

type EmailTemplateCategory string

const (
	EmailTemplateCategoryWelcome  EmailTemplateCategory = "welcome"
	EmailTemplateCategoryFollowUp EmailTemplateCategory = "follow_up"
	EmailTemplateCategoryProposal EmailTemplateCategory = "proposal"
	EmailTemplateCategoryThankYou EmailTemplateCategory = "thank_you"
	EmailTemplateCategoryMeeting  EmailTemplateCategory = "meeting"
	EmailTemplateCategoryReminder EmailTemplateCategory = "reminder"
	EmailTemplateCategoryOther    EmailTemplateCategory = "other"
)

// DefaultTemplateVariables são as variáveis de substituição suportadas
const DefaultTemplateVariables = "{{contact_name}}, {{contact_email}}, {{account_name}}, {{user_name}}"

type EmailTemplate struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Subject            string                `json:"subject"`
	BodyHTML           string                `json:"body_html"`
	BodyText           *string               `json:"body_text"`
	Category           EmailTemplateCategory `json:"category"`
	AvailableVariables string                `json:"available_variables"`
	Active             bool                  `json:"is_active"`
	CreatedBy          *int                  `json:"created_by"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// RenderedEmail é o resultado da renderização de um template para um contato
type RenderedEmail struct {
	TemplateID string `json:"template_id"`
	Subject    string `json:"subject"`
	BodyHTML   string `json:"body_html"`
	BodyText   string `json:"body_text"`
}
