package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table       string
	ID          string
	Name        string
	Role        string
	Bio         string
	AvatarURL   string
	SocialLinks string
	CreatedAt   string
}

// Authors is the schema definition for the authors table
var Authors = AuthorsTable{
	Table:       "authors",
	ID:          "id",
	Name:        "name",
	Role:        "role",
	Bio:         "bio",
	AvatarURL:   "avatar_url",
	SocialLinks: "social_links",
	CreatedAt:   "created_at",
}
