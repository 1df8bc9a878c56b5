package domain

// User is an operator account for the back office. AuthProvider records how
// the account signs in (local password or Google).
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuthProvider string `json:"authProvider"` // "local" or "google"
	ProviderID   string `json:"-"`            // subject ID from the external provider

	AuditFields
}
