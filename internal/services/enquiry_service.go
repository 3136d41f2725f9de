package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wanderlust/backend/internal/models"
)

// IEnquiryService defines the interface for enquiry persistence.
type IEnquiryService interface {
	CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error)
}

const enquiriesCollection = "contactenquiries"

// enquiryService implements IEnquiryService.
type enquiryService struct {
	db *mongo.Database
}

// NewEnquiryService creates a new EnquiryService. A nil database is allowed
// at startup (missing MONGODB_URI); persistence then fails per-request.
func NewEnquiryService(db *mongo.Database) IEnquiryService {
	return &enquiryService{db: db}
}

// CreateEnquiry stamps and inserts a new enquiry document, returning the
// persisted snapshot with its store-assigned ID. Identical submissions are
// never deduplicated; each call creates a distinct document.
func (s *enquiryService) CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("mongo database is not configured")
	}

	now := time.Now().UTC()
	enquiry.CreatedAt = now
	enquiry.UpdatedAt = now

	res, err := s.db.Collection(enquiriesCollection).InsertOne(ctx, enquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to insert enquiry: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		enquiry.ID = oid
	}

	return enquiry, nil
}
