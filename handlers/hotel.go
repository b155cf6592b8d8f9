package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"lustrio/models"
	"lustrio/services/hotel"
	"lustrio/utils"

	"github.com/gin-gonic/gin"
)

// GetHotelsHandler handles GET /hotels.
func (hb *HandlerBundle) GetHotelsHandler(c *gin.Context) {
	hotels, err := hb.Hotels.ListHotels(c.Request.Context())
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

// GetHotelHandler handles GET /hotel/:id.
func (hb *HandlerBundle) GetHotelHandler(c *gin.Context) {
	h, err := hb.Hotels.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}

// CreateHotelHandler handles the multipart POST /hotels.
func (hb *HandlerBundle) CreateHotelHandler(c *gin.Context) {
	if hb.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, hb.MaxUploadBytes+multipartOverhead)
	}

	var in models.HotelInput
	if err := c.ShouldBind(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image too large", err.Error())
			return
		}
		hb.badRequest(c, err)
		return
	}

	img, err := hb.readImage(c)
	if err != nil {
		if errors.Is(err, errImageTooLarge) {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, "Image too large", err.Error())
			return
		}
		hb.badRequest(c, err)
		return
	}

	res, err := hb.Hotels.CreateHotel(c.Request.Context(), in, img)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteHotelHandler handles DELETE /hotels/:id.
func (hb *HandlerBundle) DeleteHotelHandler(c *gin.Context) {
	res, err := hb.Hotels.DeleteHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

var errImageTooLarge = errors.New("image exceeds upload limit")

// multipartOverhead is the body allowance for form fields and part headers
// on top of the image itself.
const multipartOverhead = 64 << 10

func (hb *HandlerBundle) readImage(c *gin.Context) (hotel.ImageUpload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return hotel.ImageUpload{}, fmt.Errorf("image: %w", err)
	}
	if hb.MaxUploadBytes > 0 && fh.Size > hb.MaxUploadBytes {
		return hotel.ImageUpload{}, fmt.Errorf("%w: %d > %d bytes", errImageTooLarge, fh.Size, hb.MaxUploadBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return hotel.ImageUpload{}, fmt.Errorf("image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return hotel.ImageUpload{}, fmt.Errorf("image: %w", err)
	}
	return hotel.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
