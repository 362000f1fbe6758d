package models

import (
	"time"
)

type InquiryType string

const (
	InquiryGeneral     InquiryType = "general"
	InquiryParts       InquiryType = "parts"
	InquiryOrder       InquiryType = "order"
	InquiryWarranty    InquiryType = "warranty"
	InquiryInstitution InquiryType = "business"
)

// ContactMessage is one submitted contact-form entry.
type ContactMessage struct {
	ID          ObjectID    `bson:"_id,omitempty" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Email       string      `bson:"email" json:"email"`
	Phone       string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject     string      `bson:"subject" json:"subject"`
	Message     string      `bson:"message" json:"message"`
	InquiryType InquiryType `bson:"inquiry_type" json:"inquiryType"`
	CreatedAt   time.Time   `bson:"created_at,omitempty" json:"submittedAt"`
}

func (ContactMessage) CollectionName() string {
	return "contact_messages"
}

func (m ContactMessage) GetObjectID() ObjectID {
	return m.ID
}

func (m ContactMessage) GetUpdates() any {
	m.ID = ""
	return m
}

// ContactRequest is the inbound contact-form payload.
type ContactRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty"`
	Subject     string `json:"subject" validate:"required,min=3"`
	Message     string `json:"message" validate:"required,min=10"`
	InquiryType string `json:"inquiryType" validate:"omitempty,oneof=general parts order warranty business"`
}
