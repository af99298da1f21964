package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/model"
)

// recentReviewLimit caps the public listing.
const recentReviewLimit = 10

// ReviewHandler serves the public review listing and authenticated review
// creation.
type ReviewHandler struct {
	Reviews ReviewStore
	Users   UserStore
}

func NewReviewHandler(reviews ReviewStore, users UserStore) *ReviewHandler {
	if reviews == nil || users == nil {
		panic("nil store passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews, Users: users}
}

type createReviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// List handles GET /api/reviews: the ten most recent reviews, newest first.
// No authentication required.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	reviews, err := h.Reviews.ListRecent(ctx, recentReviewLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list reviews failed"})
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /api/reviews. The author's display name is read from
// the user record and denormalized onto the review.
func (h *ReviewHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}
	if strings.TrimSpace(req.Comment) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "comment is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	review, err := h.Reviews.Create(ctx, model.Review{
		UserID:  uid,
		Name:    u.Name,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "review submitted", "review": review})
}
