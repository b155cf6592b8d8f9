package handlers

import (
	"net/http"

	"lustrio/models"

	"github.com/gin-gonic/gin"
)

func (hb *HandlerBundle) CreateFeedbackHandler(c *gin.Context) {
	var in models.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Feedbacks.CreateFeedback(c.Request.Context(), in)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (hb *HandlerBundle) GetFeedbacksHandler(c *gin.Context) {
	feedbacks, err := hb.Feedbacks.ListFeedbacks(c.Request.Context())
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}
