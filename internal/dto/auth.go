package dto

// Auth Request DTOs

// LoginRequest contains login credentials
type LoginRequest struct {
	UserName   string `json:"userName" validate:"required"`
	Password   string `json:"password,omitempty"`
	LoginType  string `json:"loginType,omitempty"`
	VerifyCode string `json:"verifyCode,omitempty"`
}

// RegisterRequest contains user registration data
type RegisterRequest struct {
	UserName     string `json:"userName,omitempty"`
	Password     string `json:"password" validate:"required,min=8"`
	MobilePrefix string `json:"mobilePrefix" validate:"required"`
	Mobile       string `json:"mobile" validate:"required"`
	VerifyCode   string `json:"verifyCode" validate:"required"`
}

// UpdatePasswordRequest changes the login password
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// UpdateTransactionPasswordRequest sets or changes the transaction password
type UpdateTransactionPasswordRequest struct {
	Password string `json:"password" validate:"required,len=6,numeric"`
}

// Auth Response DTOs

// LoginResponse is the payload of a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
	UserNo   string `json:"userNo,omitempty"`
}

// RegisterResponse is the payload of a successful registration
type RegisterResponse struct {
	UserID    string `json:"userId"`
	AccountID string `json:"accountId"`
	UserName  string `json:"userName"`
	Token     string `json:"token,omitempty"`
	UserNo    string `json:"userNo,omitempty"`
	Name      string `json:"name,omitempty"`
}

// UserProfileResponse carries the authenticated user's profile. The gateway
// still emits a number of legacy aliases for the same concepts; only the
// canonical fields are modeled, the mapping happens in the auth service.
type UserProfileResponse struct {
	UserID                 string `json:"userId,omitempty"`
	UserName               string `json:"userName,omitempty"`
	Name                   string `json:"name,omitempty"`
	Mobile                 string `json:"mobile,omitempty"`
	RealNameCn             string `json:"realNameCn,omitempty"`
	RealNameEn             string `json:"realNameEn,omitempty"`
	KycLevel               *int   `json:"kycLevel,omitempty"`
	KycLevelDesc           string `json:"kycLevelDesc,omitempty"`
	KycStatus              *int   `json:"kycStatus,omitempty"`
	IDCardNo               string `json:"idCardNo,omitempty"`
	Gender                 *int   `json:"gender,omitempty"`
	Nationality            string `json:"nationality,omitempty"`
	HasTransactionPassword bool   `json:"hasTransactionPassword,omitempty"`
}
