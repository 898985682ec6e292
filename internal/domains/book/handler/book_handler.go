package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/book/model"
	"bookcatalog-backend/internal/domains/book/service"
	"bookcatalog-backend/internal/shared/response"
)

// MaxImageSize is the upload cap for cover images.
const MaxImageSize = 5 << 20 // 5 MiB

// allowedImageTypes mirrors the declared MIME allow-list of the upload
// middleware: JPEG and PNG covers only.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /api/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list books")
		response.InternalServerError(c, "failed to list books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook - GET /api/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook - POST /api/books (multipart form)
func (h *Handler) CreateBook(c *gin.Context) {
	form := bookFormFromRequest(c)

	upload, err := h.readImageUpload(c)
	if model.HandleBookError(c, err) {
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), form, upload)
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook - PUT /api/books/:id (multipart form, all fields optional)
func (h *Handler) UpdateBook(c *gin.Context) {
	form := bookFormFromRequest(c)

	upload, err := h.readImageUpload(c)
	if model.HandleBookError(c, err) {
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), form, upload)
	if model.HandleBookError(c, err) {
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook - DELETE /api/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	err := h.service.DeleteBook(c.Request.Context(), c.Param("id"))
	if model.HandleBookError(c, err) {
		return
	}

	response.OK(c, "book deleted successfully")
}

// bookFormFromRequest reads the book fields from a multipart/urlencoded
// form, or from a JSON body for image-less requests.
func bookFormFromRequest(c *gin.Context) model.BookForm {
	if c.ContentType() == "application/json" {
		var body struct {
			Title  string      `json:"title"`
			Author string      `json:"author"`
			ISBN   string      `json:"isbn"`
			Price  json.Number `json:"price"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			return model.BookForm{}
		}
		return model.BookForm{
			Title:  body.Title,
			Author: body.Author,
			ISBN:   body.ISBN,
			Price:  body.Price.String(),
		}
	}

	return model.BookForm{
		Title:  c.PostForm("title"),
		Author: c.PostForm("author"),
		ISBN:   c.PostForm("isbn"),
		Price:  c.PostForm("price"),
	}
}

// readImageUpload extracts the optional "image" file field. Size and type
// constraints are enforced here, before any bytes reach the image store.
func (h *Handler) readImageUpload(c *gin.Context) (*model.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if fileHeader.Size > MaxImageSize {
		return nil, model.ErrImageTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, model.ErrInvalidImageFormat
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &model.ImageUpload{
		Data:     data,
		Filename: fileHeader.Filename,
	}, nil
}
