package httpserver

import (
	"net/http"

	"agathiya-store/internal/domain"
	"github.com/gin-gonic/gin"
)

type setStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// listOrdersHandler returns every order for the admin and only the
// purchaser's own orders for everyone else.
func listOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)
		var (
			result []domain.Order
			err    error
		)
		if session.Admin() {
			result, err = orders.List(c.Request.Context())
		} else {
			result, err = orders.ListByUser(c.Request.Context(), session.Name)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		if result == nil {
			result = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": result, "total": len(result)})
	}
}

func setOrderStatusHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in setStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		if err := orders.SetStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func analyticsHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := orders.Analytics(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
