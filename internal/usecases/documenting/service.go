package documenting

import (
	"errors"
	"fmt"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

// Erros específicos do contexto de documentos
var (
	ErrInvalidDocument  = errors.New("document name and file name are required")
	ErrDocumentNotFound = errors.New("document not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeleteForbidden  = errors.New("delete not allowed for this role")

	ErrFetchDocument = errors.New("error fetching document")
	ErrSaveDocument  = errors.New("error saving document")
)

// DocumentService guarda metadados de arquivos anexados a contas,
// contatos e deals. O binário mora fora, num object storage.
type DocumentService interface {
	RegisterDocument(grant *domain.Grant, document *domain.Document) (*domain.Document, error)
	GetDocument(grant *domain.Grant, documentID string) (*domain.Document, error)
	ListDocuments(grant *domain.Grant) ([]*domain.Document, error)
	ListByDeal(grant *domain.Grant, dealID string) ([]*domain.Document, error)
	DeleteDocument(grant *domain.Grant, documentID string) error
}

type Service struct {
	documentRepository   repository.DocumentRepository
	authorizationService authorizing.AuthorizationService
}

func NewService(
	documentRepository repository.DocumentRepository,
	authorizationService authorizing.AuthorizationService,
) DocumentService {
	return &Service{
		documentRepository:   documentRepository,
		authorizationService: authorizationService,
	}
}

func (s *Service) RegisterDocument(grant *domain.Grant, document *domain.Document) (*domain.Document, error) {
	if document.Name == "" || document.FileName == "" {
		return nil, ErrInvalidDocument
	}

	if !s.authorizationService.CanChange(grant, domain.KindDocument, nil) {
		return nil, ErrPermissionDenied
	}

	if document.UploadedBy == nil {
		document.UploadedBy = &grant.UserID
	}

	created, err := s.documentRepository.CreateDocument(document)
	if err != nil {
		return nil, wrap(ErrSaveDocument, err)
	}

	return created, nil
}

func (s *Service) GetDocument(grant *domain.Grant, documentID string) (*domain.Document, error) {
	document, err := s.documentRepository.GetDocumentByID(documentID)
	if err != nil {
		return nil, wrap(ErrFetchDocument, err)
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}

	return document, nil
}

func (s *Service) ListDocuments(grant *domain.Grant) ([]*domain.Document, error) {
	documents, err := s.documentRepository.ListDocuments()
	if err != nil {
		return nil, wrap(ErrFetchDocument, err)
	}

	return documents, nil
}

func (s *Service) ListByDeal(grant *domain.Grant, dealID string) ([]*domain.Document, error) {
	documents, err := s.documentRepository.ListDocumentsByDeal(dealID)
	if err != nil {
		return nil, wrap(ErrFetchDocument, err)
	}

	return documents, nil
}

func (s *Service) DeleteDocument(grant *domain.Grant, documentID string) error {
	document, err := s.documentRepository.GetDocumentByID(documentID)
	if err != nil {
		return wrap(ErrFetchDocument, err)
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	record := &domain.RecordRef{CreatedBy: document.UploadedBy}
	if !s.authorizationService.CanDelete(grant, record) {
		return ErrDeleteForbidden
	}

	return s.documentRepository.DeleteDocument(documentID)
}

func wrap(err error, cause error) error {
	return fmt.Errorf("%w: %v", err, cause)
}
