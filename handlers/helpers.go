package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"car-dealership-api/utils"
)

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, utils.BadRequest("Invalid id")
	}
	return uint(id), nil
}

// queryRange assembles a comparison filter from min/max query params.
func queryRange(c *gin.Context, minKey, maxKey string) (utils.Range, bool) {
	var r utils.Range
	found := false
	if v := c.Query(minKey); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			r.GTE = f
			found = true
		}
	}
	if v := c.Query(maxKey); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			r.LTE = f
			found = true
		}
	}
	return r, found
}
