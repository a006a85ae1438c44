package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// idParam parses a positive numeric path parameter, writing a 400 when it
// is not one.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// minuteOf converts "HH:MM" into minutes since midnight.
func minuteOf(c *gin.Context, hm string) (int, bool) {
	m, err := timezone.ParseMinute(hm)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "time must be formatted as HH:MM")
		return 0, false
	}
	return m, true
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, httperr.CodeInvalidRequest, err.Error())
}
