package controllers

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"medivance-backend/auth"
	"medivance-backend/carousel"
	"medivance-backend/catalog"
	"medivance-backend/company"
	"medivance-backend/export"
	"medivance-backend/media"
	"medivance-backend/messages"
	"medivance-backend/models"
	"medivance-backend/notify"
)

// requestTimeout membatasi lama satu handler menunggu storage.
const requestTimeout = 10 * time.Second

// Controller menampung dependensi yang akan digunakan oleh semua handler.
type Controller struct {
	Catalog  *catalog.Service
	Messages *messages.Service
	Company  *company.Store
	Auth     *auth.Authenticator
	Uploader media.Uploader
	Sheets   *notify.SheetsClient

	Carousel *carousel.Scheduler
	Featured []models.FeaturedSlide

	Branding export.Branding

	// DB hanya terisi pada STORE_MODE=mongo.
	DB        *mongo.Database
	StoreMode string

	// Now dipakai untuk stempel tanggal dokumen; nil berarti time.Now.
	Now func() time.Time
}

func (ctrl *Controller) now() time.Time {
	if ctrl.Now != nil {
		return ctrl.Now()
	}
	return time.Now()
}
