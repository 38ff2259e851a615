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

type MatchHandler struct {
	decisionCommands commands.DecisionCommands
	matchQueries     queries.MatchQueries
}

func NewMatchHandler(decisionCommands commands.DecisionCommands, matchQueries queries.MatchQueries) *MatchHandler {
	return &MatchHandler{
		decisionCommands: decisionCommands,
		matchQueries:     matchQueries,
	}
}

// @Summary Browse feed
// @Description Get the undecided listings for the authenticated renter, in catalog order
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.FeedView
// @Router /feed [get]
func (h *MatchHandler) Feed(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	feed, err := h.matchQueries.Feed(c.Request.Context(), renterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, feed)
}

// @Summary Record a decision
// @Description Accept or reject a listing. Decisions are terminal; repeats report changed=false.
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.DecideRequest true "Decision"
// @Success 200 {object} resdto.DecideResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /decisions [post]
func (h *MatchHandler) Decide(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.decisionCommands.Decide(c.Request.Context(), renterID, req.ListingID, req.Direction)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDirection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Direction must be accept or reject",
			})
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

	c.JSON(http.StatusOK, resdto.DecideResponse{
		ListingID: result.ListingID,
		Status:    result.Status.String(),
		Changed:   result.Changed,
	})
}

// @Summary List matches
// @Description Get the renter's matched listings in acceptance order
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ListingView
// @Router /matches [get]
func (h *MatchHandler) Matches(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	matches, err := h.matchQueries.Matches(c.Request.Context(), renterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, matches)
}

// @Summary Toggle compare selection
// @Description Add or remove a matched listing from the bounded compare shortlist
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleCompareRequest true "Selection"
// @Success 200 {object} resdto.ToggleCompareResponse
// @Failure 422 {object} map[string]string
// @Router /compare/selection [post]
func (h *MatchHandler) ToggleCompare(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.ToggleCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.decisionCommands.ToggleCompare(c.Request.Context(), renterID, req.ListingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Only matched listings can be compared",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToggleCompareResponse{
		ListingID: result.ListingID,
		Selected:  result.Selected,
		Changed:   result.Changed,
		Size:      result.Size,
		Limit:     result.Limit,
	})
}

// @Summary Get compare selection
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SelectionView
// @Router /compare/selection [get]
func (h *MatchHandler) Selection(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	selection, err := h.matchQueries.Selection(c.Request.Context(), renterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, selection)
}

// @Summary Compare selected listings
// @Description Get the selected listings side by side, in selection order
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CompareResponse
// @Failure 422 {object} map[string]string
// @Router /compare [get]
func (h *MatchHandler) Compare(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	listings, err := h.matchQueries.Compare(c.Request.Context(), renterID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInsufficientSelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Select at least two listings to compare",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.CompareResponse{Listings: listings})
}
