package handlers

import (
	"fmt"
	"time"

	"hostnhome/utils"

	"github.com/gin-gonic/gin"
)

// dateQuery parses an optional date query parameter. With endOfDay set, a
// plain YYYY-MM-DD value covers the whole day.
func dateQuery(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, ok := utils.ParseWizardDate(raw)
	if !ok {
		return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD)", key)
	}
	if endOfDay && len(raw) == len(utils.DateLayout) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
