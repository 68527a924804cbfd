package httpserver

import (
	"net/http"

	catalogsvc "agathiya-store/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

func createProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		product, err := catalog.Add(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		product, err := catalog.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type describeRequest struct {
	Name string `json:"name"`
}

func describeProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in describeRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		description, err := catalog.Describe(c.Request.Context(), in.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}
