package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fotoscavet-backend/internal/domains/card/model"
	"fotoscavet-backend/internal/domains/card/service"
	"fotoscavet-backend/internal/shared/middleware"
	"fotoscavet-backend/internal/shared/response"
)

// =====================================================
// CARD HANDLER
// =====================================================

type CardHandler struct {
	cardService service.ServiceInterface
}

func NewCardHandler(cardService service.ServiceInterface) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// GetCards lists the catalog
// GET /exec?action=getCards
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.cardService.GetAllCards(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"cards": cards,
		"count": len(cards),
	})
}

// GetCard gets one card
// GET /exec?action=getCard&cardId=
func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.cardService.GetCard(c.Request.Context(), c.Query("cardId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{"card": card})
}

// SaveCardFromQuery saves a card; omitted parameters keep their stored value
// GET /exec?action=saveCard&cardId=&commonName=&comment=&cardAuthor=&username=
func (h *CardHandler) SaveCardFromQuery(c *gin.Context) {
	in := model.SaveCardInputFromQuery(c.Request.URL.Query())
	h.saveCard(c, in)
}

// SaveCardFromBody saves a card; absent body fields are written as blanks
// POST /exec
func (h *CardHandler) SaveCardFromBody(c *gin.Context) {
	var req model.SaveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewMalformedRequestError(err))
		return
	}

	h.saveCard(c, req.ToInput())
}

func (h *CardHandler) saveCard(c *gin.Context, in model.SaveCardInput) {
	result, err := h.cardService.SaveCard(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": result.Message,
		"cardId":  result.CardID,
		"adopted": result.Adopted,
	})
}

// UnadoptCard releases a card
// GET /exec?action=unadoptCard&cardId=&username=
func (h *CardHandler) UnadoptCard(c *gin.Context) {
	result, err := h.cardService.UnadoptCard(c.Request.Context(), c.Query("cardId"), c.Query("username"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": result.Message,
		"cardId":  result.CardID,
	})
}

// SetupCards reseeds the Cards table
// GET /exec?action=setupCardsSheet
func (h *CardHandler) SetupCards(c *gin.Context) {
	result, err := h.cardService.SetupCards(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": result.Message,
		"headers": result.Headers,
	})
}

// handleError turns a service error into an error envelope.
func (h *CardHandler) handleError(c *gin.Context, err error) {
	var cardErr *model.CardError
	if errors.As(err, &cardErr) {
		log.Warn().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("code", cardErr.Code).
			Str("card_id", c.Query("cardId")).
			Msg(cardErr.Message)
		response.Error(c, cardErr.Message)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg("card request failed")
	response.Error(c, response.MsgInternalError)
}
