package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// accountIDKey is the key used to store the authenticated account's ID.
const accountIDKey = contextKey("accountID")

// WithAccountID returns a copy of ctx carrying the authenticated account ID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromCtx retrieves the authenticated account ID from a standard context.
func AccountIDFromCtx(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountIDKey).(string)
	return accountID, ok && accountID != ""
}

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(accountIDKey)); exists {
		if accountID, ok := v.(string); ok && accountID != "" {
			return accountID, true
		}
	}
	// check in the request context as well
	return AccountIDFromCtx(c.Request.Context())
}
