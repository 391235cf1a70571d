package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized log line with module/action. The request id
// is only present on the HTTP path; Telegram-driven events pass "".
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		log.Printf("[%s] action=%s msg=%s", strings.ToUpper(module), action, message)
		return
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
