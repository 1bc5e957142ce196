package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"contact-back/internal/apperrors"
	"contact-back/internal/model"
)

type InquiryService interface {
	Submit(ctx context.Context, req *model.InquiryCreateRequest) (*model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Inquiry, error)
}

type InquiryHandler struct {
	log *zap.Logger
	svc InquiryService
}

func NewInquiryHandler(log *zap.Logger, svc InquiryService) *InquiryHandler {
	return &InquiryHandler{
		log: log,
		svc: svc,
	}
}

// Submit handles POST /api/inquiries: validate, persist and notify the
// admin as one unit, then echo the stored row back.
func (h *InquiryHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.InquiryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Failure(MsgBadRequest))
		return
	}

	inquiry, err := h.svc.Submit(ctx, &req)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, Failure(msg))
			return
		}

		h.log.Error("failed to submit inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Failure(MsgServerError))

		return
	}

	c.JSON(http.StatusOK, Success(inquiry))
}

// List handles GET /api/inquiries: every inquiry, newest first.
func (h *InquiryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	inquiries, err := h.svc.List(ctx)
	if err != nil {
		h.log.Error("failed to list inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Failure(MsgServerError))

		return
	}

	c.JSON(http.StatusOK, Success(inquiries))
}

// UpdateStatus handles POST /api/inquiries/:id/status.
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var uri model.InquiryIDPathParam
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, Failure(MsgBadRequest))
		return
	}

	var req model.InquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Failure(MsgBadRequest))
		return
	}

	inquiry, err := h.svc.UpdateStatus(ctx, uri.ID, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrInquiryNotFound) {
			c.JSON(http.StatusNotFound, Failure(MsgInquiryMissing))
			return
		}

		h.log.Error("failed to update inquiry status",
			zap.Int64("inquiry_id", uri.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, Failure(MsgServerError))

		return
	}

	c.JSON(http.StatusOK, Success(inquiry))
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidName):
		return MsgInvalidName, true
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return MsgInvalidEmail, true
	case errors.Is(err, apperrors.ErrInvalidMessage):
		return MsgInvalidMessage, true
	default:
		return "", false
	}
}
