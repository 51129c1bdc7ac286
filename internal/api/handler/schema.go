package handler

// messageResponse is the error envelope returned on all 4xx/5xx responses.
// The client extracts the message field verbatim.
type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginResponse is the flat payload the client splits into a credential
// token and a persisted identity record.
type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserID   string `json:"userId"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN RM ANALYST"`
}

type userStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type contactRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

type clientRequest struct {
	CompanyName        string         `json:"companyName"        validate:"required"`
	Industry           string         `json:"industry"           validate:"required"`
	Address            string         `json:"address"            validate:"required"`
	PrimaryContact     contactRequest `json:"primaryContact"     validate:"required"`
	AnnualTurnover     float64        `json:"annualTurnover"     validate:"required,gt=0"`
	DocumentsSubmitted bool           `json:"documentsSubmitted"`
}

type creditRequestRequest struct {
	ClientID      string  `json:"clientId"      validate:"required"`
	RequestAmount float64 `json:"requestAmount" validate:"required,gt=0"`
	TenureMonths  int     `json:"tenureMonths"  validate:"required,gt=0"`
	Purpose       string  `json:"purpose"       validate:"required"`
}

type reviewRequest struct {
	Status  string  `json:"status" validate:"required,oneof=Pending Approved Rejected"`
	Remarks *string `json:"remarks"`
}
