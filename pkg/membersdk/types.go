package membersdk

import "time"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// Profile holds the personal details a member gives the gym.
type Profile struct {
	FullName              string `json:"full_name"`
	Email                 string `json:"email,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	Address               string `json:"address,omitempty"`
	Gender                string `json:"gender,omitempty"`
	DateOfBirth           string `json:"date_of_birth,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	MedicalNotes          string `json:"medical_notes,omitempty"`
}

// ============================================================================
// Users
// ============================================================================

type SignupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Profile  Profile `json:"profile"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by the login endpoint.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

// ============================================================================
// Plans and registrations
// ============================================================================

type PlanResponse struct {
	MembershipType  string `json:"membership_type"`
	DurationMonths  int    `json:"duration_months"`
	MonthlyPrice    int64  `json:"monthly_price"`
	DiscountPercent int64  `json:"discount_percent"`
	Price           int64  `json:"price"`
}

type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// CreateRegistrationRequest asks for a registration for the caller. The
// server prices it.
type CreateRegistrationRequest struct {
	MembershipType string `json:"membership_type"`
	DurationMonths int    `json:"duration_months"`
}

type RegistrationResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Username         string     `json:"username"`
	MembershipType   string     `json:"membership_type"`
	DurationMonths   int        `json:"duration_months"`
	Price            int64      `json:"price"`
	Profile          Profile    `json:"profile"`
	QRCode           string     `json:"qr_code"`
	RegistrationDate time.Time  `json:"registration_date"`
	ExpiryDate       time.Time  `json:"expiry_date"`
	Status           string     `json:"status"`
	IsActive         bool       `json:"is_active"`
	IsExpired        bool       `json:"is_expired"`
	ActivationDate   *time.Time `json:"activation_date,omitempty"`
	ActivatedBy      string     `json:"activated_by,omitempty"`
}

type ListRegistrationsResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

type ValidateRequest struct {
	QRCode string `json:"qr_code"`
}

type ActivationResponse struct {
	Member       MemberResponse       `json:"member"`
	Registration RegistrationResponse `json:"registration"`
	Message      string               `json:"message"`
}

// ============================================================================
// Members
// ============================================================================

type MemberResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	RegistrationID string    `json:"registration_id"`
	MembershipType string    `json:"membership_type"`
	JoinDate       time.Time `json:"join_date"`
	ExpiryDate     time.Time `json:"expiry_date"`
	Profile        Profile   `json:"profile"`
	QRCode         string    `json:"qr_code"`
	IsActive       bool      `json:"is_active"`
	IsCurrent      bool      `json:"is_current"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}
