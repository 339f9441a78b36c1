package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (use the default) from an explicit one.
type GenerateRequest struct {
	Length         *int  `json:"length"`
	IncludeUpper   *bool `json:"includeUpper"`
	IncludeLower   *bool `json:"includeLower"`
	IncludeDigits  *bool `json:"includeDigits"`
	IncludeSpecial *bool `json:"includeSpecial"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
