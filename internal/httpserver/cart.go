package httpserver

import (
	"net/http"
	"strconv"

	"agathiya-store/internal/domain"
	cartsvc "agathiya-store/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type addLineRequest struct {
	ProductID string      `json:"productId" binding:"required"`
	Quantity  float64     `json:"quantity"`
	Unit      domain.Unit `json:"unit"`
}

type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{Lines: lines, Total: cartsvc.Total(cart)}
}

func getCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), sessionFrom(c).Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(*cart))
	}
}

func addCartLineHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in addLineRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		cart, err := carts.AddLine(c.Request.Context(), sessionFrom(c).Email, in.ProductID, in.Quantity, in.Unit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(*cart))
	}
}

func removeCartLineHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
			return
		}
		cart, err := carts.RemoveLine(c.Request.Context(), sessionFrom(c).Email, index)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(*cart))
	}
}

func checkoutHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)
		order, err := carts.Checkout(c.Request.Context(), session.Email, session)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
