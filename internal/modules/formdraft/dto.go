package formdraft

import "gorm.io/datatypes"

type CreateDraftRequest struct {
	UserID          *int64         `json:"userId"`
	FormType        string         `json:"formType" binding:"required"`
	FormData        datatypes.JSON `json:"formData" binding:"required"`
	ProgressPercent *int           `json:"progressPercent"`
	Status          *string        `json:"status"`
}

// UpdateDraftRequest is a partial save: absent fields keep their
// stored values.
type UpdateDraftRequest struct {
	FormData        datatypes.JSON `json:"formData"`
	ProgressPercent *int           `json:"progressPercent"`
	Status          *string        `json:"status"`
}
