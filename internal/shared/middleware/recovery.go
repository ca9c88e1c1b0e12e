package middleware

import (
	"fotoscavet-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery turns panics into the regular error envelope so clients always
// receive {"status":"error"} instead of a dropped connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("error", err).
					Msg("Panic recovered")

				response.Error(c, response.MsgInternalError)
				c.Abort()
			}
		}()

		c.Next()
	}
}
