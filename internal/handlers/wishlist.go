package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shop_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Pointer so an absent field is distinguishable from product_id: 0.
type addToWishlistRequest struct {
	ProductID *int `json:"product_id"`
}

// @Summary      List the authenticated user's wishlist
// @Tags         wishlist
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "data"
// @Failure      401  {object}  map[string]string
// @Router       /v1/wishlist [get]
// @Security     BearerAuth
func (h *Handler) listWishlist(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	products, err := h.services.Wishlist.List(c.Request.Context(), user.ID)
	if err != nil {
		h.respondServiceError(c, err, "wishlist_list_failed", "user_id", user.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// @Summary      Add a product to the wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        body  body      addToWishlistRequest  true  "Product to add"
// @Success      201   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /v1/wishlist [post]
// @Security     BearerAuth
func (h *Handler) addToWishlist(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req addToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A product_id of the wrong type cannot resolve to any product,
		// so it reads as a validation failure, not a malformed request.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			ve := &service.ValidationError{Fields: map[string][]string{
				"product_id": {"The product you are trying to add to the wishlist does not exist."},
			}}
			h.respondServiceError(c, ve, "")
			return
		}
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed request body."})
		return
	}
	if req.ProductID == nil {
		ve := &service.ValidationError{Fields: map[string][]string{
			"product_id": {"The product ID is required."},
		}}
		h.respondServiceError(c, ve, "")
		return
	}

	if _, err := h.services.Wishlist.Add(c.Request.Context(), user.ID, *req.ProductID); err != nil {
		h.respondServiceError(c, err, "wishlist_add_failed", "user_id", user.ID, "product_id", *req.ProductID)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added to wishlist successfully."})
}

// @Summary      Remove a product from the wishlist
// @Tags         wishlist
// @Produce      json
// @Param        productId  path      int  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/wishlist/{productId} [delete]
// @Security     BearerAuth
func (h *Handler) removeFromWishlist(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	// Invalid ids cannot be in anyone's wishlist, so they read as absent.
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		h.respondServiceError(c, service.ErrNotInWishlist, "")
		return
	}

	if err := h.services.Wishlist.Remove(c.Request.Context(), user.ID, productID); err != nil {
		h.respondServiceError(c, err, "wishlist_remove_failed", "user_id", user.ID, "product_id", productID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist successfully."})
}
