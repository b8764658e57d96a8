package services

import "github.com/go-playground/validator/v10"

// validate checks request DTOs before they go on the wire, so obviously
// malformed transfers and KYC submissions never reach the gateway.
var validate = validator.New()
