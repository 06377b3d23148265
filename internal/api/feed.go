package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/types"
)

// FeedHandler serves the main page
type FeedHandler struct {
	comments service.ICommentService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(comments service.ICommentService) *FeedHandler {
	return &FeedHandler{comments: comments}
}

// Show renders the feed, newest comment first
func (h *FeedHandler) Show(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	comments, err := h.comments.ListComments(c.Request.Context())
	if err != nil {
		pageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "main_page.html", gin.H{
		"Username": user.Username,
		"Comments": comments,
	})
}

// Post adds a feed comment
func (h *FeedHandler) Post(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req types.FeedCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	if _, err := h.comments.CreateComment(c.Request.Context(), user.ID, req.Contents); err != nil {
		pageError(c, err)
		return
	}
	redirect(c, "/")
}
