package schema

// ContactSubmissionsTable represents the 'contact_submissions' table
type ContactSubmissionsTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Company   string
	Stage     string
	Message   string
	Priority  string
	Status    string
	CreatedAt string
}

// ContactSubmissions is the schema definition for the contact_submissions table
var ContactSubmissions = ContactSubmissionsTable{
	Table:     "contact_submissions",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Company:   "company",
	Stage:     "stage",
	Message:   "message",
	Priority:  "priority",
	Status:    "status",
	CreatedAt: "created_at",
}
