package posts

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAuthor is used when a post is created without an author.
const DefaultAuthor = "Admin"

var (
	// ErrNotFound is returned when no post matches the given identifier.
	ErrNotFound = errors.New("blog not found")

	// ErrSlugTaken is returned when the collection rejects a duplicate slug.
	// The unique index is the authority here; this error is never retried.
	ErrSlugTaken = errors.New("slug already exists")
)

// ValidationError describes a rejected request field. It maps to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func requiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// Post is the persisted blog entity. The revision counter is internal
// bookkeeping and is redacted from every response; the id is always exposed.
type Post struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	Content    string             `bson:"content" json:"content"`
	Author     string             `bson:"author" json:"author"`
	Slug       string             `bson:"slug" json:"slug"`
	Date       string             `bson:"date" json:"date"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Categories []string           `bson:"categories" json:"categories"`
	Tags       []string           `bson:"tags" json:"tags"`
	Revision   int64              `bson:"revision" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateInput is the allow-listed create payload. Clients can never supply
// id, revision or timestamps.
type CreateInput struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Slug       string   `json:"slug"`
	Date       string   `json:"date"`
	ImageURL   string   `json:"imageUrl"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

func (in *CreateInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return requiredError("title")
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		return requiredError("excerpt")
	}
	if strings.TrimSpace(in.Content) == "" {
		return requiredError("content")
	}
	if strings.TrimSpace(in.Date) == "" {
		return requiredError("date")
	}
	return nil
}

// UpdateInput is the allow-listed partial-update payload. Only fields present
// in the request body are applied; present fields follow the create rules.
type UpdateInput struct {
	Title      *string   `json:"title"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	Author     *string   `json:"author"`
	Slug       *string   `json:"slug"`
	Date       *string   `json:"date"`
	ImageURL   *string   `json:"imageUrl"`
	Categories *[]string `json:"categories"`
	Tags       *[]string `json:"tags"`
}

// changes validates the present fields and returns the document updates.
func (in *UpdateInput) changes() (bson.M, error) {
	set := bson.M{}

	required := []struct {
		field string
		value *string
	}{
		{"title", in.Title},
		{"excerpt", in.Excerpt},
		{"content", in.Content},
		{"date", in.Date},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		if strings.TrimSpace(*f.value) == "" {
			return nil, requiredError(f.field)
		}
		set[f.field] = *f.value
	}

	if in.Slug != nil {
		// An explicitly supplied slug is stored as-is; a collision surfaces
		// as a duplicate-key failure, never a regenerated slug.
		if strings.TrimSpace(*in.Slug) == "" {
			return nil, requiredError("slug")
		}
		set["slug"] = *in.Slug
	}
	if in.Author != nil {
		set["author"] = *in.Author
	}
	if in.ImageURL != nil {
		set["imageUrl"] = *in.ImageURL
	}
	if in.Categories != nil {
		set["categories"] = *in.Categories
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}

	return set, nil
}
