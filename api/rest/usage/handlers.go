package usage

import (
	"context"
	"net/http"

	"codeberg.org/adforge/server/adforge/accounts"
	"codeberg.org/adforge/server/internal/adgen"
	"codeberg.org/adforge/server/internal/auth"
	apierrors "codeberg.org/adforge/server/internal/errors"
	"github.com/gin-gonic/gin"
)

type UsageReader interface {
	Usage(ctx context.Context, accountID, email string) (*adgen.Usage, error)
}

// @Summary Current quota usage
// @Description Returns the authenticated account's plan, monthly counter and remaining budget
// @Tags usage
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/usage [get]
// @Security BearerAuth
func Handler(service UsageReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "Unauthorized")
			return
		}

		usage, err := service.Usage(c.Request.Context(), userID, auth.GetUserEmail(c))
		if err != nil {
			apierrors.InternalError(c, "failed to load usage", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Plan:         string(usage.Plan),
			AdsGenerated: usage.AdsGenerated,
			Limit:        usage.Limit,
			Remaining:    usage.Remaining,
			Unlimited:    usage.Limit == accounts.Unlimited,
			LastReset:    usage.LastReset,
		})
	}
}
