package schema

// PostsTable represents the 'posts' table
type PostsTable struct {
	Table          string
	ID             string
	Title          string
	Slug           string
	Content        string
	Summary        string
	Category       string
	ContentType    string
	AuthorID       string
	Published      string
	Featured       string
	ReadTime       string
	SEODescription string
	ImageURL       string
	PDFURL         string
	CreatedAt      string
	UpdatedAt      string
}

// Posts is the schema definition for the posts table
var Posts = PostsTable{
	Table:          "posts",
	ID:             "id",
	Title:          "title",
	Slug:           "slug",
	Content:        "content",
	Summary:        "summary",
	Category:       "category",
	ContentType:    "content_type",
	AuthorID:       "author_id",
	Published:      "published",
	Featured:       "featured",
	ReadTime:       "read_time",
	SEODescription: "seo_description",
	ImageURL:       "image_url",
	PDFURL:         "pdf_url",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}
