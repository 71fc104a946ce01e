package models

import "time"

type AlertStatus string

const (
	AlertStatusOpen   AlertStatus = "OPEN"
	AlertStatusClosed AlertStatus = "CLOSED"
)

// Organization is the root of the facility hierarchy, e.g. 'Corporate' or
// 'Warehouse'. Zones hang off organizations, cameras hang off zones.
type Organization struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `json:"name"`
	OrgType       string   `gorm:"type:varchar(100)" json:"org_type"`
	TotalCapacity uint     `json:"total_capacity"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Zones []Zone `gorm:"foreignKey:OrganizationID" json:"zones,omitempty"`
}

type Zone struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	OrganizationID uint     `gorm:"index" json:"organization_id"`
	Name           string   `json:"name"`
	ZoneType       string   `gorm:"type:varchar(100)" json:"zone_type"`
	Capacity       uint     `json:"capacity"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`

	Cameras []Camera `gorm:"foreignKey:ZoneID" json:"cameras,omitempty"`
}

type Camera struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ZoneID   uint   `gorm:"index" json:"zone_id"`
	Name     string `json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

// Alert rows are created by the detection pipeline on overcrowding and only
// ever move OPEN -> CLOSED through the alert update endpoint. CameraID is
// nullable: detections without a camera reference still raise alerts.
type Alert struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CameraID   *uint       `gorm:"index" json:"camera_id"`
	Heading    string      `json:"heading"`
	SubHeading string      `json:"sub_heading"`
	Status     AlertStatus `gorm:"type:varchar(10);check:status IN ('OPEN','CLOSED')" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarbonLog holds one derived saved-amount ratio per NORMAL-path detection.
// Consumers read most-recent-first, hence the composite timestamp index.
type CarbonLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ZoneID      uint      `gorm:"index:idx_carbon_logs_timestamp_zone" json:"zone_id"`
	SavedAmount float64   `json:"saved_amount"`
	Timestamp   time.Time `gorm:"autoCreateTime;index:idx_carbon_logs_timestamp_zone,sort:desc" json:"timestamp"`

	Zone Zone `gorm:"foreignKey:ZoneID" json:"-"`
}

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Heading string `json:"heading"`
	Message string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
