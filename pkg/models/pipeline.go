package models

// Pipeline payloads. These cross the service interfaces of the core, so they
// live here with the persisted models rather than in the core package.

// AlertOutcome reports whether a detection reused an existing open alert
// or raised a fresh one.
type AlertOutcome struct {
	AlertID uint
	Created bool
}

// AlertPatch carries a partial update; nil fields are left untouched.
type AlertPatch struct {
	Heading    *string
	SubHeading *string
	Status     *AlertStatus
}

type CarbonSaving struct {
	Ratio   float64
	Formula string
}

type CarbonStatsSummary struct {
	TotalSavedAllTime   float64 `json:"total_saved_all_time"`
	AveragePerDetection float64 `json:"average_per_detection"`
}

type CarbonHistoryEntry struct {
	Zone  string  `json:"zone"`
	Saved float64 `json:"saved"`
	Date  string  `json:"date"`
}

type CarbonStats struct {
	Summary       CarbonStatsSummary   `json:"summary"`
	RecentHistory []CarbonHistoryEntry `json:"recent_history"`
}

type DetectInput struct {
	ZoneID      uint
	CameraID    *uint
	Filename    string
	ContentType string
	Image       []byte
}

type CarbonData struct {
	Filename          string  `json:"filename"`
	SahiCount         int     `json:"sahi_count"`
	GeminiCount       int     `json:"gemini_count"`
	CalculationResult float64 `json:"calculation_result"`
	Formula           string  `json:"formula"`
	Message           string  `json:"message"`
}

// DetectResult is assembled fresh per request and discarded after the
// response is sent; nothing here is persisted as-is.
type DetectResult struct {
	Zone                string      `json:"zone"`
	Capacity            uint        `json:"capacity"`
	DetectedPeople      int         `json:"detected_people"`
	OccupancyPercentage string      `json:"occupancy_percentage"`
	Status              string      `json:"status"`
	AlertCreated        *bool       `json:"alert_created,omitempty"`
	AlertID             *uint       `json:"alert_id,omitempty"`
	AlertMessage        string      `json:"alert_message,omitempty"`
	CarbonMessage       string      `json:"carbon_message,omitempty"`
	CarbonData          *CarbonData `json:"carbon_data,omitempty"`
	CarbonError         string      `json:"carbon_error,omitempty"`
}
