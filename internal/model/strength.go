package model

type StrengthRequest struct {
	Password string `json:"password"`
}

type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}
