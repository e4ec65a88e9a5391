package schema

// AdminAccountsTable represents the 'admin_accounts' table
type AdminAccountsTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// AdminAccounts is the schema definition for the admin_accounts table
var AdminAccounts = AdminAccountsTable{
	Table:        "admin_accounts",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}
