package copies

import (
	"context"
	"net/http"

	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/api/rest/pagination"
	"codeberg.org/adforge/server/internal/auth"
	apierrors "codeberg.org/adforge/server/internal/errors"
	"github.com/gin-gonic/gin"
)

type CopyLister interface {
	ListCopies(ctx context.Context, accountID string, limit, offset int) ([]copies.Copy, int, error)
}

// @Summary List generated copies
// @Description Returns the authenticated account's stored ad copies, newest first
// @Tags copies
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} Response
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/copies [get]
// @Security BearerAuth
func ListHandler(service CopyLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "Unauthorized")
			return
		}

		params := pagination.FromQuery(c, defaultListLimit, maxListLimit)

		stored, total, err := service.ListCopies(c.Request.Context(), userID, params.Limit, params.Offset)
		if err != nil {
			apierrors.InternalError(c, "failed to list copies", err)
			return
		}

		if stored == nil {
			stored = []copies.Copy{}
		}

		c.JSON(http.StatusOK, Response{
			Copies:     stored,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}
