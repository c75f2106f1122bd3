package generate

import (
	"context"
	"errors"
	"net/http"

	"codeberg.org/adforge/server/internal/adgen"
	"codeberg.org/adforge/server/internal/auth"
	"codeberg.org/adforge/server/internal/copywriter"
	apierrors "codeberg.org/adforge/server/internal/errors"
	"codeberg.org/adforge/server/internal/llm"
	"codeberg.org/adforge/server/internal/logger"
	"github.com/gin-gonic/gin"
)

type CopyGenerator interface {
	Generate(ctx context.Context, accountID, email string, raw copywriter.Request) (*adgen.Result, error)
}

// @Summary Generate ad copy
// @Description Generates platform-tuned ad copy from a product brief, counted against the account's monthly quota
// @Tags generate
// @Accept json
// @Produce json
// @Param request body Request true "Product brief"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Ad limit reached"
// @Failure 502 {object} map[string]string "Upstream generation failure"
// @Failure 504 {object} map[string]string "Upstream timeout"
// @Router /api/v1/generate [post]
// @Security BearerAuth
func Handler(service CopyGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "Unauthorized")
			return
		}

		email := auth.GetUserEmail(c)

		result, err := service.Generate(c.Request.Context(), userID, email, req.toCopywriterRequest())
		if err != nil {
			respondGenerateError(c, userID, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Headline:          result.Copy.Headline,
			Body:              result.Copy.Body,
			CallToAction:      result.Copy.CallToAction,
			Targeting:         result.Copy.Targeting,
			RecommendedBudget: result.Copy.RecommendedBudget,
			AdsRemaining:      result.AdsRemaining,
		})
	}
}

// maps the orchestrator's error taxonomy onto HTTP statuses. Quota and
// validation failures are expected business outcomes and logged at debug,
// upstream faults at warn, everything else is a server fault.
func respondGenerateError(c *gin.Context, userID string, err error) {
	var (
		validationErr *copywriter.ValidationError
		formatErr     *copywriter.FormatError
		quotaErr      *adgen.QuotaError
	)

	switch {
	case errors.As(err, &validationErr):
		apierrors.MissingFields(c, validationErr.FieldDetails())

	case errors.As(err, &quotaErr):
		logger.Debug("generation denied, quota exhausted",
			"user_id", userID,
			"plan", quotaErr.Plan,
			"limit", quotaErr.Limit,
		)
		apierrors.AdLimitReached(c, string(quotaErr.Plan),
			"You have reached your monthly ad generation limit. Upgrade your plan to generate more ads.")

	case errors.As(err, &formatErr):
		logger.Warn("generation produced unusable output",
			"user_id", userID,
			"missing", formatErr.Missing,
		)
		apierrors.Upstream(c, http.StatusBadGateway, "upstream_error",
			"the generator returned an unusable response, please try again")

	case errors.Is(err, llm.ErrThrottled):
		logger.Warn("generation throttled upstream", "user_id", userID)
		apierrors.Upstream(c, http.StatusBadGateway, "upstream_throttled",
			"the generation service is busy, please try again shortly")

	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("generation timed out", "user_id", userID)
		apierrors.Upstream(c, http.StatusGatewayTimeout, "upstream_timeout",
			"the generation service took too long to respond")

	case errors.Is(err, llm.ErrUnavailable):
		logger.Warn("generation service unavailable", "user_id", userID, "error", err)
		apierrors.Upstream(c, http.StatusBadGateway, "upstream_error",
			"the generation service is unavailable, please try again")

	default:
		apierrors.InternalError(c, "failed to generate ad copy", err)
	}
}
