package handlers

import (
	"net/http"
	"strconv"

	"shop_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List products (paginated)
// @Tags         products
// @Produce      json
// @Param        page  query     int  false  "Page number (1-based)"
// @Success      200   {object}  map[string]interface{}  "data, links, meta"
// @Router       /v1/products [get]
func (h *Handler) listProducts(c *gin.Context) {
	// Anything non-numeric falls back to the first page.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.services.Catalog.List(c.Request.Context(), page)
	if err != nil {
		h.respondServiceError(c, err, "products_list_failed", "page", page)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  map[string]interface{}  "data"
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [get]
func (h *Handler) getProduct(c *gin.Context) {
	// A syntactically invalid id is indistinguishable from a missing product.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondServiceError(c, service.ErrProductNotFound, "")
		return
	}

	product, err := h.services.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "products_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}
