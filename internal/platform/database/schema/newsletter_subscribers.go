package schema

// NewsletterSubscribersTable represents the 'newsletter_subscribers' table
type NewsletterSubscribersTable struct {
	Table        string
	ID           string
	Email        string
	Confirmed    string
	SubscribedAt string
}

// NewsletterSubscribers is the schema definition for the newsletter_subscribers table
var NewsletterSubscribers = NewsletterSubscribersTable{
	Table:        "newsletter_subscribers",
	ID:           "id",
	Email:        "email",
	Confirmed:    "confirmed",
	SubscribedAt: "subscribed_at",
}
