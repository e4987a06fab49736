package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"medivance-backend/auth"
	"medivance-backend/carousel"
	"medivance-backend/catalog"
	"medivance-backend/company"
	"medivance-backend/media"
	"medivance-backend/messages"
)

// statusFor memetakan error domain ke kode HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, messages.ErrMessageNotFound),
		errors.Is(err, company.ErrMemberNotFound),
		errors.Is(err, company.ErrFacilityNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrProductNameRequired),
		errors.Is(err, catalog.ErrInvalidCategory),
		errors.Is(err, catalog.ErrTypeRequired),
		errors.Is(err, catalog.ErrInvalidStatus),
		errors.Is(err, messages.ErrInvalidStatus),
		errors.Is(err, messages.ErrInvalidPriority),
		errors.Is(err, company.ErrInvalidProfile),
		errors.Is(err, company.ErrInvalidMember),
		errors.Is(err, company.ErrInvalidFacility),
		errors.Is(err, carousel.ErrIndexOutOfRange),
		errors.Is(err, media.ErrUploadDisabled):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrDuplicateID), errors.Is(err, messages.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, messages.ErrReplyNotSent):
		return http.StatusBadGateway
	case errors.Is(err, carousel.ErrClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError menulis error dalam bentuk {"error": msg}.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

var errNotDecimal = errors.New("not a plain decimal number")

// parseDecimal hanya menerima digit desimal tanpa nol di depan, jadi "010" dan "0x10" ditolak.
func parseDecimal(s string) (int64, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, errNotDecimal
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errNotDecimal
		}
	}
	return cast.ToInt64E(s)
}

// paramID membaca parameter :id. Jika tidak valid, respon 400 sudah ditulis.
func paramID(c *gin.Context, what string) (int64, bool) {
	id, err := parseDecimal(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID"})
		return 0, false
	}
	return id, true
}
