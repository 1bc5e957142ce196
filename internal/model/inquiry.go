package model

import (
	"time"
)

const StatusUnread = "unread"

// Inquiry is one contact-form submission. The id, timestamps and defaults
// are assigned by the database on insert; only status (and updated_at with
// it) ever changes afterwards.
type Inquiry struct {
	ID        int64     `json:"id" example:"42"`
	Name      string    `json:"name" example:"홍길동"`
	Email     string    `json:"email" example:"hong@example.com"`
	Message   string    `json:"message" example:"배송 문의드립니다."`
	Status    string    `json:"status" example:"unread"`
	IsRead    bool      `json:"is_read" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

type InquiryCreateRequest struct {
	Name    string `json:"name" example:"홍길동"`
	Email   string `json:"email" example:"hong@example.com"`
	Message string `json:"message" example:"배송 문의드립니다."`
}

type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required" example:"resolved"`
}

type InquiryIDPathParam struct {
	ID int64 `uri:"id" binding:"required"`
}
