package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Only the
// listing is public; everything else runs behind guard.
func (h *Handler) Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("/all-projects", h.getAll)

	private := rg.Group("", guard)
	private.GET("/:id", h.getByID)
	private.POST("/new-project", h.create)
	private.PUT("/update/:id", h.update)
	private.DELETE("/delete/:id", h.delete)
}
