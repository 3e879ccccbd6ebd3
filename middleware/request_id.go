package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Shiva-026/Samvidhaan/utils"
)

// RequestID assigns every request a uuid, honoring an inbound X-Request-ID
// when present. The id is echoed back and picked up by the access logger.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(utils.ContextRequestIDKey, rid)
		ctx.Header("X-Request-ID", rid)
		ctx.Next()
	}
}
