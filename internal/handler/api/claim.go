package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	reqdto "flightclaims/internal/handler/dto/request"
	resdto "flightclaims/internal/handler/dto/response"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"
	"flightclaims/internal/usecase/commands"
	"flightclaims/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimCommands commands.ClaimCommands
	claimQueries  queries.ClaimQueries
	retryAfterSec int
}

func NewClaimHandler(
	claimCommands commands.ClaimCommands,
	claimQueries queries.ClaimQueries,
	cfg config.RateLimitConfig,
) *ClaimHandler {
	retryAfter := int(math.Ceil(cfg.MinInterval.Seconds()))
	if retryAfter < 1 {
		retryAfter = 1
	}
	return &ClaimHandler{
		claimCommands: claimCommands,
		claimQueries:  claimQueries,
		retryAfterSec: retryAfter,
	}
}

// @Summary Submit compensation claim
// @Description Evaluate a flight disruption claim and return the decision. Re-submitting the same (flight, date, claimant) returns the stored decision unchanged.
// @Tags claims
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitClaimRequest true "Claim request"
// @Success 200 {object} resdto.ClaimResponse "Previously decided claim"
// @Success 201 {object} resdto.ClaimResponse "Newly decided claim"
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /claims [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var req reqdto.SubmitClaimRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.claimCommands.Submit(c.Request.Context(), commands.SubmitClaim{
		ClaimantEmail:     req.ClaimantEmail,
		FlightNumber:      req.FlightNumber,
		Origin:            req.Origin,
		Destination:       req.Destination,
		Date:              date,
		ExtraordinaryHint: req.ExtraordinaryCircumstance,
		DeniedBoarding:    req.DeniedBoarding,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRateLimitExceeded):
			c.Header("Retry-After", strconv.Itoa(h.retryAfterSec))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Flight data lookups are saturated, retry later",
			})
		case errors.Is(err, errs.ErrProviderRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Flight data provider rejected the lookup",
			})
		case errors.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromClaimView(result.Claim))
}

// @Summary Get claim
// @Description Get claim decision by ID
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim ID format",
		})
		return
	}

	view, err := h.claimQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrClaimNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Claim not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}

// @Summary List claims by claimant
// @Description List decided claims for one claimant email, newest first
// @Tags claims
// @Produce json
// @Param email query string true "Claimant email"
// @Param limit query int false "Maximum rows returned"
// @Success 200 {array} resdto.ClaimListResponse
// @Failure 400 {object} map[string]string
// @Router /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "email query parameter is required",
		})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	items, err := h.claimQueries.ListByClaimant(c.Request.Context(), email, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ClaimListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromClaimListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
