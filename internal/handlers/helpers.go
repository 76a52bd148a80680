package handlers

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
)

// intParam reads an integer path parameter of any size, answering 400 when it
// is not a base-10 integer. The value comes back in canonical form ("+007" -> "7").
func intParam(c *gin.Context, name string) (json.Number, bool) {
	n, ok := new(big.Int).SetString(c.Param(name), 10)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return "", false
	}
	return json.Number(n.String()), true
}
