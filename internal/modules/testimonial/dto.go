package testimonial

type CreateTestimonialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email"`
	Location *string `json:"location"`
	Text     string  `json:"text" binding:"required"`
	Rating   *int    `json:"rating"`
}

type ModerateRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"adminNotes"`
}
