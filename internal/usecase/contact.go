package usecase

import (
	"context"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/repo/mongodb"
	"github.com/partshub/catalog-service/internal/repo/resend"
)

type ContactUsecase interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
}

type contactUsecase struct {
	contactsRepo mongodb.ContactsRepo
	mailer       resend.Client
}

func NewContactUsecase(contactsRepo mongodb.ContactsRepo, mailer resend.Client) ContactUsecase {
	return &contactUsecase{
		contactsRepo: contactsRepo,
		mailer:       mailer,
	}
}

func (uc *contactUsecase) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	inquiryType := models.InquiryType(req.InquiryType)
	if inquiryType == "" {
		inquiryType = models.InquiryGeneral
	}

	msg := models.ContactMessage{
		ID:          models.NewObjectID(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		InquiryType: inquiryType,
		CreatedAt:   time.Now(),
	}

	if _, err := uc.contactsRepo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	// mail delivery is best-effort; the submission is already stored
	if err := uc.mailer.SendContactNotification(ctx, msg); err != nil {
		log.Warnf(ctx, "Failed to send contact notification: %v", err)
	}
	if err := uc.mailer.SendContactAutoReply(ctx, msg); err != nil {
		log.Warnf(ctx, "Failed to send contact auto-reply: %v", err)
	}

	return &msg, nil
}
