package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medivance-backend/models"
)

// HealthCheck memeriksa status aplikasi dan koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbStatus := "not used"
	if ctrl.DB != nil {
		dbStatus = "connected"
		if err := ctrl.DB.Client().Ping(ctx, nil); err != nil {
			dbStatus = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"store":     ctrl.StoreMode,
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats mengambil data statistik untuk dashboard admin.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	total, active, categories, err := ctrl.Catalog.Counts(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := ctrl.Messages.Summary(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	stats := models.Stats{
		TotalProducts:   total,
		ActiveProducts:  active,
		UnreadMessages:  summary.Unread,
		TotalCategories: categories,
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetCatalogOptions mengembalikan pilihan selector kategori, bentuk sediaan dan jenis pertanyaan.
func (ctrl *Controller) GetCatalogOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":   models.CategoryOptions,
		"types":        models.TypeOptions,
		"inquiryTypes": models.InquiryOptions,
	})
}
