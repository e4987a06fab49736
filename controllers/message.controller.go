package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medivance-backend/messages"
	"medivance-backend/models"
)

// SubmitContact menyimpan pesan dari form kontak publik dan meneruskannya ke spreadsheet.
func (ctrl *Controller) SubmitContact(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var payload models.ContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := ctrl.Messages.Receive(ctx, payload)
	if err != nil {
		respondError(c, err)
		return
	}

	if ctrl.Sheets != nil && ctrl.Sheets.Enabled() {
		if err := ctrl.Sheets.Append(ctx, payload); err != nil {
			zap.L().Warn("failed to forward contact message", zap.Int64("message_id", msg.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "Message saved but could not be forwarded: " + err.Error(),
				"messageId": msg.ID,
			})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message received", "messageId": msg.ID})
}

// GetMessages menangani daftar pesan masuk beserta ringkasannya.
func (ctrl *Controller) GetMessages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	messageList, ok := ctrl.searchMessages(ctx, c)
	if !ok {
		return
	}
	summary, err := ctrl.Messages.Summary(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messageList, "summary": summary})
}

// GetMessage membuka satu pesan; pesan unread ditandai read.
func (ctrl *Controller) GetMessage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "message")
	if !ok {
		return
	}
	msg, err := ctrl.Messages.Open(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// UpdateMessage mengubah status atau prioritas pesan.
func (ctrl *Controller) UpdateMessage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "message")
	if !ok {
		return
	}
	var upd models.MessageUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := ctrl.Messages.Update(ctx, id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ReplyMessage mengirim balasan lewat email dan menandai pesan replied.
func (ctrl *Controller) ReplyMessage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "message")
	if !ok {
		return
	}
	var req models.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := ctrl.Messages.Reply(ctx, id, req.Reply)
	if err != nil {
		if errors.Is(err, messages.ErrReplyNotSent) {
			zap.L().Warn("reply failed", zap.Int64("message_id", id), zap.Error(err))
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// DeleteMessage menangani penghapusan pesan.
func (ctrl *Controller) DeleteMessage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	id, ok := paramID(c, "message")
	if !ok {
		return
	}
	if err := ctrl.Messages.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

// ExportMessages mengunduh daftar pesan (setelah filter) sebagai CSV.
func (ctrl *Controller) ExportMessages(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	messageList, ok := ctrl.searchMessages(ctx, c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := messages.WriteCSV(&buf, messageList); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="messages.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (ctrl *Controller) searchMessages(ctx context.Context, c *gin.Context) ([]models.ContactMessage, bool) {
	var crit messages.Criteria
	if err := c.ShouldBindQuery(&crit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	messageList, err := ctrl.Messages.Search(ctx, crit)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return messageList, true
}
