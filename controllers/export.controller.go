package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medivance-backend/export"
	"medivance-backend/models"
)

// DownloadLeaflet mengirim leaflet teks produk sebagai lampiran.
func (ctrl *Controller) DownloadLeaflet(c *gin.Context) {
	product, ok := ctrl.exportTarget(c)
	if !ok {
		return
	}

	leaflet := export.Leaflet(*product, ctrl.Branding, ctrl.now())
	c.Header("Content-Disposition", export.ContentDisposition(export.LeafletFilename(product.Name)))
	c.Data(http.StatusOK, export.LeafletContentType, []byte(leaflet))
}

// DownloadPDF mengirim lembar informasi produk dalam format PDF.
func (ctrl *Controller) DownloadPDF(c *gin.Context) {
	product, ok := ctrl.exportTarget(c)
	if !ok {
		return
	}

	data, err := export.PDF(*product, ctrl.Branding, ctrl.now())
	if err != nil {
		zap.L().Error("pdf export failed", zap.Int64("product_id", product.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}
	c.Header("Content-Disposition", export.ContentDisposition(export.PDFFilename(product.Name)))
	c.Data(http.StatusOK, export.PDFContentType, data)
}

func (ctrl *Controller) exportTarget(c *gin.Context) (*models.Product, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "product")
	if !ok {
		return nil, false
	}
	product, err := ctrl.Catalog.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return product, true
}
