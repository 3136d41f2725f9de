package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enquiry is a single travel enquiry submitted through the contact form.
// Only Name and Email are required; every other field is optional and kept
// verbatim as submitted. Documents are immutable once created: the service
// never updates or deletes them after insertion.
type Enquiry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Mobile      string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Dates       string             `bson:"dates,omitempty" json:"dates,omitempty"`
	Travellers  string             `bson:"travellers,omitempty" json:"travellers,omitempty"`
	Budget      string             `bson:"budget,omitempty" json:"budget,omitempty"`
	Destination string             `bson:"destination,omitempty" json:"destination,omitempty"`
	TripType    string             `bson:"tripType,omitempty" json:"tripType,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Package     string             `bson:"package,omitempty" json:"package,omitempty"`
	Nights      string             `bson:"nights,omitempty" json:"nights,omitempty"`
	SourcePage  string             `bson:"sourcePage,omitempty" json:"sourcePage,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
