package service

import (
	"context"

	"fotoscavet-backend/internal/domains/card/model"
)

// =====================================================
// CARD SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// GetAllCards lists the catalog in seed order
	GetAllCards(ctx context.Context) ([]model.Card, error)

	// GetCard gets one card by id
	GetCard(ctx context.Context, cardID string) (*model.Card, error)

	// SaveCard edits a card, adopting it when it is free
	SaveCard(ctx context.Context, in model.SaveCardInput) (*model.SaveCardResult, error)

	// UnadoptCard releases a card held by username
	UnadoptCard(ctx context.Context, cardID, username string) (*model.UnadoptResult, error)

	// SetupCards (re)seeds the Cards table
	SetupCards(ctx context.Context) (*model.SetupResult, error)
}
