package requests

type RegisterRequest struct {
	FullName        string  `json:"full_name" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,password"`
	Role            string  `json:"role" validate:"required,user_role"`
	Specialization  string  `json:"specialization,omitempty"`
	ClinicName      string  `json:"clinic_name,omitempty"`
	ConsultationFee float64 `json:"consultation_fee,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
