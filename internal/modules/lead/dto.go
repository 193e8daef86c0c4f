package lead

type LeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	Service     string `json:"service"`
	Notes       string `json:"notes"`
	PackageCode string `json:"packageCode"`
}

type TravelPeriodRequest struct {
	StartDate        string `json:"startDate" binding:"required"`
	EndDate          string `json:"endDate"`
	TripType         string `json:"tripType"`
	DepartureAirport string `json:"departureAirport" binding:"required"`
	ArrivalAirport   string `json:"arrivalAirport" binding:"required"`
}

// SubmitResult reports the advisory outcome: the submission itself
// always succeeds, the flags say how far the side effects got.
type SubmitResult struct {
	EmailSent bool
	RequestID *int64
}

type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
	RequestID *int64 `json:"requestId"`
}
