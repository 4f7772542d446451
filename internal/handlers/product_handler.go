package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitness-catalog/internal/models"
	"fitness-catalog/internal/service"
)

type ProductHandler struct {
	service service.CatalogService
	logger  *zap.Logger
}

func NewProductHandler(svc service.CatalogService, logger *zap.Logger) *ProductHandler {
	registerValidators()
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

type listQuery struct {
	Category models.Category `form:"category" binding:"omitempty,enum"`
	Status   models.Status   `form:"status" binding:"omitempty,enum"`
	Skip     int64           `form:"skip,default=0" binding:"gte=0"`
	Limit    int64           `form:"limit,default=100" binding:"gt=0"`
}

type featuredQuery struct {
	Limit int64 `form:"limit,default=6" binding:"gt=0"`
}

type categoryURI struct {
	Category models.Category `uri:"category" binding:"required,enum"`
}

type seedResponse struct {
	Message  string   `json:"message"`
	Products []string `json:"products,omitempty"`
	Count    int64    `json:"count"`
}

// CreateProduct crea un nuevo producto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in models.ProductCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, locBody, err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProducts lista productos con filtros opcionales y paginación
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, locQuery, err)
		return
	}

	products, err := h.service.List(c.Request.Context(), service.ListParams{
		Category: q.Category,
		Status:   q.Status,
		Skip:     q.Skip,
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// FeaturedProducts devuelve los activos mejor valorados
func (h *ProductHandler) FeaturedProducts(c *gin.Context) {
	var q featuredQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, locQuery, err)
		return
	}

	products, err := h.service.Featured(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// ProductsByCategory devuelve los productos activos de una categoría
func (h *ProductHandler) ProductsByCategory(c *gin.Context) {
	var uri categoryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, locPath, err)
		return
	}

	products, err := h.service.ByCategory(c.Request.Context(), uri.Category)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct obtiene un producto por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct actualiza parcialmente un producto
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var in models.ProductUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, locBody, err)
		return
	}

	product, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct borra el producto de forma definitiva
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// SeedProducts carga el catálogo de ejemplo si la colección está vacía
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	result, err := h.service.Seed(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if !result.Seeded {
		c.JSON(http.StatusOK, seedResponse{Message: "Products already exist", Count: result.Count})
		return
	}

	c.JSON(http.StatusOK, seedResponse{
		Message:  fmt.Sprintf("Seeded %d products", result.Count),
		Products: result.Names,
		Count:    result.Count,
	})
}
