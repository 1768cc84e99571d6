package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderAttachment is artwork or proof files attached to an order. The
// lifecycle core only counts them; upload and storage live elsewhere.
type OrderAttachment struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderID        uint           `json:"order_id" gorm:"not null;index"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	FileName       string         `json:"file_name" gorm:"not null"`
	ContentType    string         `json:"content_type"`
	SizeBytes      int64          `json:"size_bytes"`
	UploadedBy     uint           `json:"uploaded_by"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// ProductionJob is a scheduled press or finishing run for an order.
type ProductionJob struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderID        uint           `json:"order_id" gorm:"not null;index"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	JobType        string         `json:"job_type" gorm:"not null"`
	Status         string         `json:"status" gorm:"not null;default:'open'"` // open, done
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

const (
	JobOpen = "open"
	JobDone = "done"
)
