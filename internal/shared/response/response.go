package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body of every non-entity response: a single
// human-readable message, no structured error codes.
type Message struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Message{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Message{Message: message})
}

func InternalServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Message{Message: message})
}
