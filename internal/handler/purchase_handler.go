package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursebay/coursebay-backend/internal/middleware"
	"github.com/coursebay/coursebay-backend/internal/model"
	"github.com/coursebay/coursebay-backend/internal/response"
	"github.com/coursebay/coursebay-backend/internal/service"
)

// PurchaseHandler handles the user purchase endpoints.
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Purchase godoc
// POST /user/course/:id/purchase
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidID)
		return
	}

	purchase, err := h.purchaseService.Purchase(c.Request.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "Course purchased successfully", gin.H{"purchase": purchase})
}

// ListPurchases godoc
// GET /user/purchases
// An empty result is a 200 with an informational message, not an error.
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	userID, ok := middleware.GetSubjectID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	purchases, err := h.purchaseService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if purchases == nil {
		purchases = []model.Purchase{}
	}

	message := "Purchases fetched successfully"
	if len(purchases) == 0 {
		message = "No purchases yet"
	}
	response.Success(c, http.StatusOK, message, gin.H{"purchases": purchases})
}
