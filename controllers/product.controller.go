package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medivance-backend/catalog"
	"medivance-backend/enrichment"
	"medivance-backend/media"
	"medivance-backend/models"
)

// GetProducts menangani pencarian katalog publik.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var crit catalog.Criteria
	if err := c.ShouldBindQuery(&crit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Katalog publik menampilkan semua status.
	crit.Status = ""

	productList, err := ctrl.Catalog.Search(ctx, crit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": productList, "count": len(productList)})
}

// GetProduct menangani pengambilan satu produk beserta informasi klinisnya.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "product")
	if !ok {
		return
	}

	product, err := ctrl.Catalog.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "details": enrichment.Resolve(*product)})
}

// AdminGetProducts menangani daftar produk di panel admin, termasuk filter status.
func (ctrl *Controller) AdminGetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var crit catalog.Criteria
	if err := c.ShouldBindQuery(&crit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productList, err := ctrl.Catalog.Search(ctx, crit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": productList, "count": len(productList)})
}

// CreateProduct menangani pembuatan produk baru.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ImageBase64 != "" {
		url, ok := ctrl.uploadImage(ctx, c, input.ImageBase64)
		if !ok {
			return
		}
		input.Image = url
	}

	product, err := ctrl.Catalog.Create(ctx, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct menangani pembaruan sebagian data produk.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "product")
	if !ok {
		return
	}

	var updateData models.ProductUpdate
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Jika ada gambar baru (imageBase64), upload dulu
	if updateData.ImageBase64 != "" {
		url, ok := ctrl.uploadImage(ctx, c, updateData.ImageBase64)
		if !ok {
			return
		}
		updateData.Image = &url
	}

	product, err := ctrl.Catalog.Update(ctx, id, updateData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct menangani penghapusan produk.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "product")
	if !ok {
		return
	}

	if err := ctrl.Catalog.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (ctrl *Controller) uploadImage(ctx context.Context, c *gin.Context, imageBase64 string) (string, bool) {
	url, err := ctrl.Uploader.Upload(ctx, imageBase64)
	if err != nil {
		if errors.Is(err, media.ErrUploadDisabled) {
			respondError(c, err)
			return "", false
		}
		zap.L().Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return "", false
	}
	return url, true
}
