package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medivance-backend/config"
	"medivance-backend/controllers"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/catalog/options", ctrl.GetCatalogOptions)

		// Rute otentikasi
		api.POST("/login", ctrl.Login)

		// Rute katalog publik
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:id", ctrl.GetProduct)
		api.GET("/products/:id/leaflet", ctrl.DownloadLeaflet)
		api.GET("/products/:id/pdf", ctrl.DownloadPDF)

		// Rute halaman perusahaan dan kontak
		api.GET("/company", ctrl.GetCompany)
		api.POST("/contact", ctrl.SubmitContact)

		// Rute carousel produk unggulan
		featured := api.Group("/featured")
		featured.GET("", ctrl.GetFeatured)
		featured.POST("/next", ctrl.NextSlide)
		featured.POST("/prev", ctrl.PrevSlide)
		featured.POST("/play", ctrl.PlayCarousel)
		featured.POST("/stop", ctrl.StopCarousel)
		featured.POST("/toggle", ctrl.ToggleCarousel)
		featured.POST("/hover", ctrl.HoverCarousel)
		featured.POST("/leave", ctrl.LeaveCarousel)
		featured.POST("/jump/:index", ctrl.JumpToSlide)
	}

	admin := api.Group("/admin", ctrl.RequireAdmin)
	{
		admin.GET("/stats", ctrl.GetStats)

		// Rute produk
		admin.GET("/products", ctrl.AdminGetProducts)
		admin.POST("/products", ctrl.CreateProduct)
		admin.PUT("/products/:id", ctrl.UpdateProduct)
		admin.DELETE("/products/:id", ctrl.DeleteProduct)

		// Rute pesan masuk
		admin.GET("/messages", ctrl.GetMessages)
		admin.GET("/messages/export.csv", ctrl.ExportMessages)
		admin.GET("/messages/:id", ctrl.GetMessage)
		admin.PUT("/messages/:id", ctrl.UpdateMessage)
		admin.POST("/messages/:id/reply", ctrl.ReplyMessage)
		admin.DELETE("/messages/:id", ctrl.DeleteMessage)

		// Rute perusahaan
		admin.PUT("/company", ctrl.UpdateCompanyInfo)
		admin.POST("/company/leadership", ctrl.CreateMember)
		admin.PUT("/company/leadership/:id", ctrl.UpdateMember)
		admin.DELETE("/company/leadership/:id", ctrl.DeleteMember)
		admin.POST("/company/facilities", ctrl.CreateFacility)
		admin.PUT("/company/facilities/:id", ctrl.UpdateFacility)
		admin.DELETE("/company/facilities/:id", ctrl.DeleteFacility)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
