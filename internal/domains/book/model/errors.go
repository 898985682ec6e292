package model

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/shared/response"
)

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrInvalidBookID      = errors.New("invalid book id format")
	ErrISBNAlreadyExists  = errors.New("isbn already exists")
	ErrValidation         = errors.New("validation failed")
	ErrImageTooLarge      = errors.New("image must not exceed 5MB")
	ErrInvalidImageFormat = errors.New("only JPG, JPEG and PNG images are allowed")
)

// HandleBookError writes the HTTP response for a domain error and reports
// whether one was written. A nil error writes nothing.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, ErrInvalidBookID):
		response.BadRequest(c, ErrInvalidBookID.Error())
	case errors.Is(err, ErrBookNotFound):
		response.NotFound(c, ErrBookNotFound.Error())
	case errors.Is(err, ErrISBNAlreadyExists):
		response.BadRequest(c, ErrISBNAlreadyExists.Error())
	case errors.Is(err, ErrImageTooLarge):
		response.BadRequest(c, ErrImageTooLarge.Error())
	case errors.Is(err, ErrInvalidImageFormat):
		response.BadRequest(c, ErrInvalidImageFormat.Error())
	case errors.Is(err, ErrValidation):
		response.BadRequest(c, err.Error())
	default:
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("unhandled book error")
		response.InternalServerError(c, "internal server error")
	}

	return true
}
