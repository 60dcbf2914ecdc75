package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/config"
	"github.com/saintecare/sainte/utils"
)

const userIDKey = "currentUserID"

// CurrentUser resolves the request identity and stores it in the context.
// There is no session stack; an X-User-ID header selects a user, otherwise
// the configured default applies. Handlers read the id via UserID, never
// from a package-level global.
func CurrentUser() gin.HandlerFunc {
	defaultID := uint(config.Get().DefaultUserID)
	return func(ctx *gin.Context) {
		id := defaultID
		if raw := ctx.GetHeader("X-User-ID"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || parsed == 0 {
				utils.ErrorMessage(ctx, http.StatusBadRequest, "Invalid user id")
				ctx.Abort()
				return
			}
			id = uint(parsed)
		}
		ctx.Set(userIDKey, id)
		ctx.Next()
	}
}

// UserID returns the identity resolved by CurrentUser.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
