package domain

// AdminCredential holds the back-office password. Stored as plain text on
// purpose; hardening is out of scope for this application.
type AdminCredential struct {
	Password string `json:"password"`
}

const DefaultAdminPassword = "admin123"
