package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fotoscavet-backend/internal/domains/card/model"
	"fotoscavet-backend/internal/domains/card/repository"
	usermodel "fotoscavet-backend/internal/domains/user/model"
	userrepo "fotoscavet-backend/internal/domains/user/repository"
	"fotoscavet-backend/internal/shared"
	"fotoscavet-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

// cardService is the adoption manager. The read-check-write steps of a
// save or release are not atomic across calls: two concurrent adoptions
// of one card can both pass the "card is free" check.
type cardService struct {
	cardRepo repository.Repository
	userRepo userrepo.Repository
	now      func() time.Time
}

type Option func(*cardService)

// WithClock overrides the time source used for lastModified.
func WithClock(now func() time.Time) Option {
	return func(s *cardService) {
		s.now = now
	}
}

func NewCardService(
	cardRepo repository.Repository,
	userRepo userrepo.Repository,
	opts ...Option,
) ServiceInterface {
	s := &cardService{
		cardRepo: cardRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =====================================================
// READS
// =====================================================

func (s *cardService) GetAllCards(ctx context.Context) ([]model.Card, error) {
	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrTableNotFound) {
			return nil, model.NewStorageUnavailableError(model.MsgCardsTableMissing)
		}
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (s *cardService) GetCard(ctx context.Context, cardID string) (*model.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCardNotFound):
			return nil, model.NewUnknownCardError()
		case errors.Is(err, shared.ErrTableNotFound):
			return nil, model.NewStorageUnavailableError(model.MsgCardsTableMissing)
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// =====================================================
// SAVE / ADOPT
// =====================================================

func (s *cardService) SaveCard(ctx context.Context, in model.SaveCardInput) (*model.SaveCardResult, error) {
	// Step 1: Locate the card
	card, err := s.cardRepo.GetByID(ctx, in.CardID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCardNotFound):
			return nil, model.NewCardNotFoundError(in.CardID)
		case errors.Is(err, shared.ErrTableNotFound):
			return nil, model.NewStorageUnavailableError(model.MsgCardsTableMissingSetup)
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	users, err := s.listUsers(ctx)
	if err != nil {
		return nil, err
	}
	caller, ref := findUser(users, in.Username)

	// Step 2: Only the current author may edit an adopted card
	existingAuthor := card.CardAuthor
	incomingAuthor := deref(in.CardAuthor)
	if existingAuthor != "" && existingAuthor != incomingAuthor && !ref.Matches(existingAuthor) {
		return nil, model.NewAlreadyAdoptedError(existingAuthor)
	}

	newAuthor := existingAuthor
	if in.CardAuthor != nil {
		newAuthor = incomingAuthor
	}
	isNewAdoption := existingAuthor == "" && newAuthor != ""
	isRelease := existingAuthor != "" && newAuthor == ""

	// Step 3: One adopted card per user
	if isNewAdoption && caller != nil && caller.HasAdoptedCard() {
		return nil, model.NewUserHasCardError(caller.AdoptedCard)
	}

	// Step 4: Write the editable fields, omitted ones keep their value
	stamp := model.FormatTimestamp(s.now())
	upd := model.CardUpdate{
		CommonName:   in.CommonName,
		Comment:      in.Comment,
		CardAuthor:   in.CardAuthor,
		LastModified: &stamp,
	}
	if err := s.cardRepo.Update(ctx, in.CardID, upd); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	// Step 5: Keep the user row in sync
	switch {
	case isNewAdoption && in.Username != "":
		if err := s.setAdoptedCard(ctx, in.Username, in.CardID); err != nil {
			return nil, err
		}
		logger.Info("card adopted", map[string]interface{}{
			"card_id":  in.CardID,
			"username": in.Username,
			"author":   newAuthor,
		})
	case isRelease:
		// A save that blanks the author releases the card.
		if err := s.releaseHolders(ctx, users, in.CardID); err != nil {
			return nil, err
		}
		logger.Info("card released by save", map[string]interface{}{
			"card_id":  in.CardID,
			"username": in.Username,
		})
	default:
		logger.Info("card saved", map[string]interface{}{
			"card_id":  in.CardID,
			"username": in.Username,
		})
	}

	message := model.MsgSaved
	if isNewAdoption {
		message = model.MsgAdopted
	}
	return &model.SaveCardResult{
		CardID:  in.CardID,
		Adopted: isNewAdoption,
		Message: message,
	}, nil
}

// =====================================================
// UNADOPT
// =====================================================

func (s *cardService) UnadoptCard(ctx context.Context, cardID, username string) (*model.UnadoptResult, error) {
	// Step 1: Resolve the caller to the forms a stored author may take
	users, err := s.listUsers(ctx)
	if err != nil {
		return nil, err
	}
	_, ref := findUser(users, username)

	// Step 2: Locate the card
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCardNotFound):
			return nil, model.NewCardNotFoundError(cardID)
		case errors.Is(err, shared.ErrTableNotFound):
			return nil, model.NewStorageUnavailableError(model.MsgCardsTableMissing)
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	// Step 3: Only the author may release
	if !ref.Matches(card.CardAuthor) {
		return nil, model.NewNotAuthorError()
	}

	// Step 4: Clear the editable fields. lastModified is left as is.
	blank := ""
	upd := model.CardUpdate{
		CommonName: &blank,
		Comment:    &blank,
		CardAuthor: &blank,
	}
	if err := s.cardRepo.Update(ctx, cardID, upd); err != nil {
		return nil, fmt.Errorf("failed to release card: %w", err)
	}

	// Step 5: Clear the user's adopted card, and any row still holding this one
	if err := s.setAdoptedCard(ctx, username, ""); err != nil {
		return nil, err
	}
	if err := s.releaseHolders(ctx, users, cardID); err != nil {
		return nil, err
	}

	logger.Info("card released", map[string]interface{}{
		"card_id":  cardID,
		"username": username,
	})

	return &model.UnadoptResult{
		CardID:  cardID,
		Message: model.MsgReleased,
	}, nil
}

// =====================================================
// SETUP
// =====================================================

func (s *cardService) SetupCards(ctx context.Context) (*model.SetupResult, error) {
	if err := s.cardRepo.Seed(ctx, model.SeedData); err != nil {
		return nil, fmt.Errorf("failed to seed cards: %w", err)
	}

	logger.Info("cards table seeded", map[string]interface{}{
		"count": len(model.SeedData),
	})

	return &model.SetupResult{
		Message: fmt.Sprintf("Cards sheet created with %d pre-populated cards", len(model.SeedData)),
		Headers: shared.CardHeaders,
		Count:   len(model.SeedData),
	}, nil
}

// =====================================================
// HELPERS
// =====================================================

// listUsers treats a missing Users table as empty.
func (s *cardService) listUsers(ctx context.Context) ([]usermodel.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrTableNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// setAdoptedCard ignores a missing Users table and an anonymous caller.
func (s *cardService) setAdoptedCard(ctx context.Context, username, cardID string) error {
	if username == "" {
		return nil
	}
	err := s.userRepo.SetAdoptedCard(ctx, username, cardID)
	if err != nil && !errors.Is(err, shared.ErrTableNotFound) {
		return fmt.Errorf("failed to update user adopted card: %w", err)
	}
	return nil
}

// releaseHolders clears adoptedCard on every row that holds cardID, so a
// release through a display name still frees the holder's row.
func (s *cardService) releaseHolders(ctx context.Context, users []usermodel.User, cardID string) error {
	for _, u := range users {
		if u.AdoptedCard != cardID {
			continue
		}
		if err := s.setAdoptedCard(ctx, u.Username, ""); err != nil {
			return err
		}
	}
	return nil
}

// findUser returns the first row for username, or nil and a bare ref.
func findUser(users []usermodel.User, username string) (*usermodel.User, usermodel.UserRef) {
	if username == "" {
		return nil, usermodel.RefForUsername(username)
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], users[i].Ref()
		}
	}
	return nil, usermodel.RefForUsername(username)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
