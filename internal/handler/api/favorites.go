package api

import (
	"errors"
	"net/http"

	reqdto "arbitat/internal/handler/dto/request"
	resdto "arbitat/internal/handler/dto/response"
	"arbitat/internal/handler/middleware"
	"arbitat/internal/usecase/commands"
	"arbitat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteCommands commands.FavoriteCommands
	favoriteQueries  queries.FavoriteQueries
}

func NewFavoriteHandler(favoriteCommands commands.FavoriteCommands, favoriteQueries queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteCommands: favoriteCommands,
		favoriteQueries:  favoriteQueries,
	}
}

// @Summary List favorites
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ListingView
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	favorites, err := h.favoriteQueries.List(c.Request.Context(), renterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// @Summary Toggle a favorite
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleFavoriteRequest true "Favorite"
// @Success 200 {object} resdto.ToggleFavoriteResponse
// @Failure 404 {object} map[string]string
// @Router /favorites [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.favoriteCommands.Toggle(c.Request.Context(), renterID, req.ListingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToggleFavoriteResponse{
		ListingID: result.ListingID,
		Favorite:  result.Favorite,
	})
}
