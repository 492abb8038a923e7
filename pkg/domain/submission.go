package domain

// Viewing represents a request to schedule a property viewing
type Viewing struct {
	PropertyID  int64  `json:"propertyId"`
	DateTime    string `json:"dateTime"`
	ContactInfo string `json:"contactInfo"`
}

// Subscription represents a newsletter subscription with optional search filters
type Subscription struct {
	Email   string         `json:"email"`
	Filters FilterCriteria `json:"filters"`
}

// SubmitResult represents the outcome of a best-effort submission to the CRM
type SubmitResult struct {
	Delivered bool `json:"delivered"` // crm accepted the request and answered with JSON
	Stored    bool `json:"stored"`    // record appended to the local log
	Response  any  `json:"response,omitempty"`
}

// Success reports whether the CRM answered with {"success": true}
func (r SubmitResult) Success() bool {
	if !r.Delivered {
		return false
	}
	resp, ok := r.Response.(map[string]any)
	if !ok {
		return false
	}
	success, ok := resp["success"].(bool)
	return ok && success
}
