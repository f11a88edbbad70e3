package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1/"

// routesToSkip are route templates never reported to PostHog. The live feed is a single
// long request and presence already tracks it.
var routesToSkip = map[string]bool{
	"/health":      true,
	"/metrics":     true,
	"/api/v1/live": true,
}

// actionByMethod names what a successful request did.
var actionByMethod = map[string]string{
	http.MethodGet:    "viewed",
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodPatch:  "updated",
	http.MethodDelete: "deleted",
}

// analyticsEvent derives the event name and feature area from a route template.
// Path parameters are dropped so one event covers every id:
//
//	DELETE /api/v1/leave/transactions/:id -> "leave_transactions_deleted", area "leave"
//	PUT    /api/v1/accounts/:id/grants    -> "accounts_grants_updated", area "accounts"
func analyticsEvent(method, route string) (name, area string) {
	route = strings.TrimPrefix(route, apiPrefix)
	var parts []string
	for _, seg := range strings.Split(route, "/") {
		if seg == "" || strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(seg, "-", "_"))
	}
	action, ok := actionByMethod[method]
	if len(parts) == 0 || !ok {
		return "", ""
	}
	return strings.Join(append(parts, action), "_"), parts[0]
}

// PosthogMiddleware reports every successful authenticated request as a feature event
// keyed by the account id.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || routesToSkip[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		// failures are logged, not tracked
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		accountID, exists := GetAccountIDFromContext(c)
		if !exists {
			return
		}
		// empty for unmatched routes
		eventName, area := analyticsEvent(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := requestProperties(c, area)
		props["status_code"] = c.Writer.Status()
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		posthogClient.Enqueue(accountID, eventName, props)
	}
}

// PosthogEvent sends a domain event from a handler, such as a leave debit with its pool.
// Handler properties win over the request ones.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	accountID, exists := GetAccountIDFromContext(c)
	if !exists {
		return
	}
	_, area := analyticsEvent(c.Request.Method, c.FullPath())
	props := requestProperties(c, area)
	for k, v := range properties {
		props[k] = v
	}
	posthogClient.Enqueue(accountID, eventName, props)
}

func requestProperties(c *gin.Context, area string) map[string]any {
	props := map[string]any{
		"method": c.Request.Method,
		"route":  c.FullPath(),
	}
	if area != "" {
		props["area"] = area
	}
	if id := c.Writer.Header().Get(requestIDHeader); id != "" {
		props["request_id"] = id
	}
	return props
}
