package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// OKWithWarnings attaches soft warnings (e.g. a failed notification) to an
// otherwise successful result.
func OKWithWarnings(c *gin.Context, status int, data any, warnings []string) {
	if len(warnings) == 0 {
		c.JSON(status, data)
		return
	}
	c.JSON(status, gin.H{
		"data":     data,
		"warnings": warnings,
	})
}
