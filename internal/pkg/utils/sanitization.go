package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(request *requests.RegisterRequest) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FullName = strings.TrimSpace(request.FullName)
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
	request.Specialization = strings.TrimSpace(request.Specialization)
	request.ClinicName = strings.TrimSpace(request.ClinicName)
}

func SanitizeLoginRequest(request *requests.LoginRequest) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}
