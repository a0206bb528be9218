package handler

import (
	"github.com/gin-gonic/gin"

	"blog-cms/internal/content"
	"blog-cms/internal/middleware"
)

// Routes bundles the handlers mounted by RegisterRoutes. LoginLimit and
// PublicLimit may be nil to disable rate limiting.
type Routes struct {
	Posts    *PostHandler
	Taxonomy *TaxonomyHandler
	Authors  *AuthorHandler
	Contact  *ContactHandler
	Auth     *AuthHandler
	Panel    *PanelHandler

	LoginLimit  gin.HandlerFunc
	PublicLimit gin.HandlerFunc
}

func optional(h gin.HandlerFunc) []gin.HandlerFunc {
	if h == nil {
		return nil
	}
	return []gin.HandlerFunc{h}
}

// RegisterRoutes mounts the public API and both panels on router.
func RegisterRoutes(router gin.IRouter, r Routes) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", append(optional(r.LoginLimit), r.Auth.Login)...)
		auth.POST("/signout", r.Auth.Signout)
		auth.GET("/session", r.Auth.Me)

		api.GET("/posts", r.Posts.ListPosts)
		api.GET("/posts/:slug", r.Posts.GetPost)
		api.POST("/posts/:slug/comments", append(optional(r.PublicLimit), r.Posts.AddComment)...)

		api.GET("/categories", r.Taxonomy.ListCategories)
		api.GET("/category/:slug", r.Taxonomy.GetCategory)
		api.GET("/tags", r.Taxonomy.ListTags)
		api.GET("/tags/:slug", r.Taxonomy.GetTag)

		api.GET("/authors", r.Authors.ListAuthors)
		api.GET("/authors/:id", r.Authors.GetAuthor)

		api.POST("/contact", append(optional(r.PublicLimit), r.Contact.Submit)...)
	}

	author := router.Group("/author-panel", middleware.RequireScope(content.ScopeAuthor))
	{
		author.GET("", r.Panel.ListPosts)
		author.GET("/posts", r.Panel.ListPosts)
		author.POST("/posts", r.Panel.CreatePost)
		author.GET("/posts/:id", r.Panel.GetPost)
		author.PUT("/posts/:id", r.Panel.UpdatePost)
		author.DELETE("/posts/:id", r.Panel.DeletePost)
	}

	admin := router.Group("/admin-panel", middleware.RequireScope(content.ScopeAdmin))
	{
		admin.GET("", r.Panel.Dashboard)

		admin.GET("/posts", r.Panel.ListPosts)
		admin.POST("/posts", r.Panel.CreatePost)
		admin.GET("/posts/:id", r.Panel.GetPost)
		admin.PUT("/posts/:id", r.Panel.UpdatePost)
		admin.DELETE("/posts/:id", r.Panel.DeletePost)

		admin.GET("/categories", r.Panel.ListCategories)
		admin.POST("/categories", r.Panel.CreateCategory)
		admin.DELETE("/categories/:id", r.Panel.DeleteCategory)

		admin.GET("/tags", r.Panel.ListTags)
		admin.POST("/tags", r.Panel.CreateTag)
		admin.DELETE("/tags/:id", r.Panel.DeleteTag)

		admin.GET("/authors", r.Panel.ListAuthors)
		admin.POST("/authors", r.Panel.CreateAuthor)
		admin.DELETE("/authors/:id", r.Panel.DeleteAuthor)

		admin.GET("/comments", r.Panel.ListComments)
		admin.PUT("/comments/:id", r.Panel.ModerateComment)
		admin.DELETE("/comments/:id", r.Panel.DeleteComment)

		admin.GET("/messages", r.Panel.ListMessages)
	}
}
