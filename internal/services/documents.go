package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/gestorinmo/internal/media"
	"github.com/localnerve/gestorinmo/internal/models"
	"gorm.io/gorm"
)

type documentOwner interface {
	DocumentList() *models.Documents
}

// AddPropertyDocument attaches a document to a property
func (s *DataService) AddPropertyDocument(ctx context.Context, propertyID string, doc models.Document) (models.Document, error) {
	return s.addDocument(ctx, &models.Property{}, propertyID, doc)
}

// DeletePropertyDocument detaches a document from a property
func (s *DataService) DeletePropertyDocument(ctx context.Context, propertyID, documentID string) error {
	return s.deleteDocument(ctx, &models.Property{}, propertyID, documentID)
}

// AddTenantDocument attaches a document to a tenant
func (s *DataService) AddTenantDocument(ctx context.Context, tenantID string, doc models.Document) (models.Document, error) {
	return s.addDocument(ctx, &models.Tenant{}, tenantID, doc)
}

// DeleteTenantDocument detaches a document from a tenant
func (s *DataService) DeleteTenantDocument(ctx context.Context, tenantID, documentID string) error {
	return s.deleteDocument(ctx, &models.Tenant{}, tenantID, documentID)
}

func (s *DataService) addDocument(ctx context.Context, owner documentOwner, ownerID string, doc models.Document) (models.Document, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Date == "" {
		doc.Date = time.Now().Format(DateLayout)
	}
	if err := ValidateDocument(doc); err != nil {
		return models.Document{}, err
	}
	url, err := s.prepareContent(doc.URL)
	if err != nil {
		return models.Document{}, err
	}
	doc.URL = url

	err = s.updateDocuments(ctx, owner, ownerID, func(docs models.Documents) (models.Documents, error) {
		return append(docs, doc), nil
	})
	if err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (s *DataService) deleteDocument(ctx context.Context, owner documentOwner, ownerID, documentID string) error {
	return s.updateDocuments(ctx, owner, ownerID, func(docs models.Documents) (models.Documents, error) {
		rest, removed := docs.Without(documentID)
		if !removed {
			return nil, ErrNotFound
		}
		return rest, nil
	})
}

// updateDocuments rewrites the document list of one record inside a transaction
func (s *DataService) updateDocuments(ctx context.Context, owner documentOwner, ownerID string, edit func(models.Documents) (models.Documents, error)) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(owner, "id = ?", ownerID).Error; err != nil {
			return notFound(err)
		}
		docs, err := edit(*owner.DocumentList())
		if err != nil {
			return err
		}
		return tx.Model(owner).Update("documents", docs).Error
	})
}

func (s *DataService) prepareDocuments(docs models.Documents) error {
	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.NewString()
		}
		url, err := s.prepareContent(docs[i].URL)
		if err != nil {
			return err
		}
		docs[i].URL = url
	}
	return nil
}

// prepareContent compresses embedded images and enforces the embedded size limit
func (s *DataService) prepareContent(url string) (string, error) {
	compressed, err := media.CompressDataURL(url)
	if err != nil {
		return "", invalidf("document content: %v", err)
	}
	if len(compressed) > s.MaxDocumentBytes {
		return "", invalidf("document content exceeds %d bytes", s.MaxDocumentBytes)
	}
	return compressed, nil
}
