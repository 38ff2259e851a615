package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "arbitat/internal/handler/dto/request"
	"arbitat/internal/handler/middleware"
	"arbitat/internal/usecase/commands"
	"arbitat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingCommands commands.ListingCommands
	listingQueries  queries.ListingQueries
}

func NewListingHandler(listingCommands commands.ListingCommands, listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		listingCommands: listingCommands,
		listingQueries:  listingQueries,
	}
}

// @Summary List all listings
// @Description Get the full catalog in stable catalog order
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ListingView
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.listingQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// @Summary Get a listing
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} queries.ListingView
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) GetByID(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	listing, err := h.listingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
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
	c.JSON(http.StatusOK, listing)
}

// @Summary Quote a lease
// @Description Derive the price breakdown for a listing and lease term
// @Tags listings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Listing ID"
// @Param lease_term query string true "Lease term" Enums(short-term, standard-term, flexible)
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/quote [get]
func (h *ListingHandler) Quote(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	quote, err := h.listingQueries.Quote(c.Request.Context(), id, c.Query("lease_term"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidLeaseTerm):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid lease term",
			})
		case errors.Is(err, queries.ErrListingNotFound):
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
	c.JSON(http.StatusOK, quote)
}

// @Summary Create a listing
// @Description Publish a new listing for the authenticated owner
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 201 {object} queries.ListingView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.listingCommands.CreateListing(c.Request.Context(), req, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid listing data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := queries.NewListingView(created)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func parseListingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing id",
		})
		return 0, false
	}
	return id, true
}
