package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fieldesk/internal/application/session"
	"fieldesk/internal/domain/ticket"
	"fieldesk/internal/infrastructure/storage"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/errors"
	"fieldesk/internal/shared/logger"
)

// BlobStore is the slice of the file store the usecase needs.
type BlobStore interface {
	Save(reader io.Reader, originalFilename string) (*storage.SaveResult, error)
}

type AttachImageCommand struct {
	Session  session.Session
	TicketID uint
	Filename string
	Reader   io.Reader
}

type AttachImageResult struct {
	ImageURL string
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type AttachImageUseCase struct {
	ticketRepo ticket.Repository
	blobs      BlobStore
	logger     logger.Interface
}

func NewAttachImageUseCase(ticketRepo ticket.Repository, blobs BlobStore, log logger.Interface) *AttachImageUseCase {
	return &AttachImageUseCase{
		ticketRepo: ticketRepo,
		blobs:      blobs,
		logger:     log,
	}
}

func (uc *AttachImageUseCase) Execute(ctx context.Context, cmd AttachImageCommand) (*AttachImageResult, error) {
	if err := requireMutation(cmd.Session, authorization.ActionTicketComment); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(cmd.Filename))
	if !allowedImageExtensions[ext] {
		return nil, errors.NewValidationError("unsupported image type")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if err := requireVisible(cmd.Session, t); err != nil {
		return nil, err
	}

	saved, err := uc.blobs.Save(cmd.Reader, cmd.Filename)
	if err != nil {
		uc.logger.Errorw("failed to store image", "error", err, "ticket_id", t.ID())
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.AttachImage(saved.PublicURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("image attached", "ticket_id", t.ID(), "url", saved.PublicURL)

	return &AttachImageResult{ImageURL: saved.PublicURL}, nil
}
