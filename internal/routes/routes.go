package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"clientapi/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	rootHandler *handlers.RootHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	docsEnabled bool,
) *gin.Engine {

	r.GET("/", rootHandler.Welcome)
	r.GET("/healthz", rootHandler.Health)

	if docsEnabled {
		r.GET(handlers.DocsPath+"/*any", swaggerUI())
		r.GET(handlers.RedocPath, rootHandler.Redoc)
	}

	// USERS
	users := r.Group("/users")
	{
		users.GET("/:user_id", userHandler.GetUserByID)
	}

	// CLIENTS
	clients := r.Group("/clients")
	{
		clients.GET("/:client_id/objects", clientHandler.GetObjects)
	}

	return r
}

// swaggerUI serves Swagger UI under DocsPath. gin-swagger only knows its
// asset names, so the bare directory is sent on to index.html.
func swaggerUI() gin.HandlerFunc {
	serve := ginSwagger.WrapHandler(swaggerFiles.Handler)
	return func(c *gin.Context) {
		if p := c.Param("any"); p == "" || p == "/" {
			c.Redirect(http.StatusMovedPermanently, handlers.DocsPath+"/index.html")
			return
		}
		serve(c)
	}
}
