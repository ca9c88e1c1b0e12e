package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/domains/user/service"
	"fotoscavet-backend/internal/shared/middleware"
	"fotoscavet-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Login checks credentials
// GET /exec?action=login&username=&password=
func (h *UserHandler) Login(c *gin.Context) {
	profile, err := h.userService.Authenticate(c.Request.Context(), c.Query("username"), c.Query("password"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{"user": profile})
}

// TestUsers reports on the Users table
// GET /exec?action=testUsers
func (h *UserHandler) TestUsers(c *gin.Context) {
	diag, err := h.userService.Diagnostics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message":     diag.Message,
		"sheetName":   diag.SheetName,
		"headers":     diag.Headers,
		"userCount":   diag.UserCount,
		"sampleUsers": diag.SampleUsers,
	})
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	var authErr *model.AuthError
	if errors.As(err, &authErr) {
		log.Warn().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("code", authErr.Code).
			Msg(authErr.Message)
		response.Error(c, authErr.Message)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg("user request failed")
	response.Error(c, response.MsgInternalError)
}
