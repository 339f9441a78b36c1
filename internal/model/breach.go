package model

// BreachCheckRequest carries the candidate password. It is never logged.
type BreachCheckRequest struct {
	Password string `json:"password"`
}

// BreachCheckResponse reports a breach lookup. Breached is null when the
// lookup could not be completed.
type BreachCheckResponse struct {
	Breached *bool  `json:"breached"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}
