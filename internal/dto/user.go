package dto

// CertificationRequest is the KYC account-opening application.
type CertificationRequest struct {
	RealNameCn         string `json:"realNameCn" validate:"required"`
	RealNameEn         string `json:"realNameEn" validate:"required"`
	IDCardType         int    `json:"idCardType" validate:"required,min=1,max=4"`
	IDCardNo           string `json:"idCardNo" validate:"required"`
	IDCardExpiry       string `json:"idCardExpiry" validate:"required"`
	IDCardIssueCountry string `json:"idCardIssueCountry" validate:"required"`
	IDCardIssueOrg     string `json:"idCardIssueOrg,omitempty"`
	IDCardImgFront     string `json:"idCardImgFront" validate:"required"`
	IDCardImgBack      string `json:"idCardImgBack" validate:"required"`
	Gender             int    `json:"gender" validate:"required,oneof=1 2"`
	Birthday           string `json:"birthday" validate:"required"`
	Nationality        string `json:"nationality" validate:"required"`
	Occupation         string `json:"occupation" validate:"required"`
	EmploymentStatus   int    `json:"employmentStatus" validate:"required,min=1,max=5"`
	TaxID              string `json:"taxId,omitempty"`
	AddressRegion      string `json:"addressRegion" validate:"required"`
	AddressDetail      string `json:"addressDetail" validate:"required"`
}
