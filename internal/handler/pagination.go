package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/pkg/query"
)

// requestLookup adapts a gin request to the query.Lookup contract.
// Named pagination signals resolve from the query string first, then from
// a header of the same name; both arrive URL-decoded. This is what lets
// 'limit'/'offset' parameters and the 'Range' header share one parser.
func requestLookup(c *gin.Context) query.Lookup {
	return func(name string) string {
		if v := c.Query(name); v != "" {
			return v
		}
		return c.GetHeader(name)
	}
}

// negotiateRange resolves the requested pagination window, seeding the
// default limit so requests without pagination info still get a sane page.
func negotiateRange(c *gin.Context, defaultLimit int) (*query.Range, error) {
	return query.ParseWithDefault(requestLookup(c), defaultLimit)
}

// writeContentRange reports the returned span and the total match count,
// clamped by the Range itself.
func writeContentRange(c *gin.Context, rng *query.Range, total int) {
	c.Header("Content-Range", rng.ContentRange(int64(total)))
}
