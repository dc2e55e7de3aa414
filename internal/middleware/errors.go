package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/logger"
)

// ErrorHandler renders the last error pushed with c.Error as a JSON ErrorResponse when the
// handler did not write a response itself.
//
// Behavior:
//   - A dto.ErrorResponse error is rendered as is.
//   - Any other error becomes "Internal server error" with the error text as details.
//   - The status already set on the writer is kept when it is an error status, otherwise 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	logger.Ctx(c.Request.Context()).Error().Err(last).Int("status", status).Msg("request failed")

	var resp dto.ErrorResponse
	if !errors.As(last, &resp) {
		resp = dto.NewErrorResponse("Internal server error", last)
	}
	c.JSON(status, resp)
}

// AbortWithError stops the handler chain and writes a JSON ErrorResponse.
//
// Parameters:
//   - c (*gin.Context): The request context.
//   - status (int): HTTP status code to send.
//   - message (string): Summary shown to the client.
//   - err (error): Optional cause, recorded on the context and sent as details.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
