package performance

import "time"

// Review entity. One review per employee per review date.
type Review struct {
	ID         string
	EmployeeID string
	Rating     int
	ReviewDate time.Time
	Reviewer   string
	Comments   string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// RatingLabel maps the 1-5 rating scale to its display name.
func RatingLabel(rating int) string {
	switch rating {
	case 1:
		return "Poor"
	case 2:
		return "Below Average"
	case 3:
		return "Average"
	case 4:
		return "Good"
	case 5:
		return "Excellent"
	}
	return "Unknown"
}
