package request

type VerifyAccountRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

type VerifySignupRequest struct {
	Token string `json:"token" binding:"required"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

type ResendSignupCodeRequest struct {
	Token string `json:"token" binding:"required"`
}
