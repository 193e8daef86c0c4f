package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type FormDraftStatus string

const (
	DraftInProgress FormDraftStatus = "draft"
	DraftSubmitted  FormDraftStatus = "submitted"
)

// FormDraft is a user's resumable copy of a multi-step form (passport,
// visa, booking). ProgressPercent is recomputed server-side from the
// filled-field ratio when the client does not supply it.
type FormDraft struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	UserID          *int64          `json:"user_id"`
	FormType        string          `json:"form_type"`
	FormData        datatypes.JSON  `json:"form_data"`
	ProgressPercent int             `json:"progress_percent"`
	Status          FormDraftStatus `json:"status"`
	LastSavedAt     time.Time       `json:"last_saved_at"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (FormDraft) TableName() string { return "form_drafts" }

// ComputeFormProgress returns the percentage of non-empty top-level
// fields in a form payload, rounded to the nearest integer.
func ComputeFormProgress(formData []byte) int {
	var fields map[string]any
	if err := json.Unmarshal(formData, &fields); err != nil || len(fields) == 0 {
		return 0
	}

	filled := 0
	for _, v := range fields {
		switch val := v.(type) {
		case nil:
		case string:
			if val != "" {
				filled++
			}
		default:
			filled++
		}
	}

	return int(float64(filled)/float64(len(fields))*100 + 0.5)
}
