package domain

import "time"

type DocumentType string

const (
	DocumentTypeContract     DocumentType = "contract"
	DocumentTypeProposal     DocumentType = "proposal"
	DocumentTypeInvoice      DocumentType = "invoice"
	DocumentTypeQuote        DocumentType = "quote"
	DocumentTypeReport       DocumentType = "report"
	DocumentTypePresentation DocumentType = "presentation"
	DocumentTypeOther        DocumentType = "other"
)

// Document guarda apenas os metadados do arquivo. O armazenamento do
// binário em si é responsabilidade de um serviço externo.
type Document struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Type        DocumentType `json:"document_type"`
	FileName    string       `json:"file_name"`
	FileSize    *int64       `json:"file_size"`
	AccountID   *string      `json:"account_id"`
	ContactID   *string      `json:"contact_id"`
	DealID      *string      `json:"deal_id"`
	UploadedBy  *int         `json:"uploaded_by"`
	CreatedAt   time.Time    `json:"created_at"`
}
