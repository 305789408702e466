package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const DefaultPerPage = 50

// PageQuery reads page and per_page from the query string. Missing or
// malformed values fall back to the first page and DefaultPerPage.
func PageQuery(c *gin.Context) (page, perPage int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(DefaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}
