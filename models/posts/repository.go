package posts

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var objectIDHex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsObjectIDHex reports whether the identifier has the exact lexical shape of
// a MongoDB ObjectId (24 hexadecimal characters). The classification is
// purely syntactic and never queries the store: a slug that happens to match
// this shape is looked up as an id.
func IsObjectIDHex(identifier string) bool {
	return objectIDHex.MatchString(identifier)
}

// identifierFilter builds the lookup filter for an identifier-or-slug path
// segment.
func identifierFilter(identifier string) bson.M {
	if IsObjectIDHex(identifier) {
		oid, _ := primitive.ObjectIDFromHex(identifier)
		return bson.M{"_id": oid}
	}
	return bson.M{"slug": identifier}
}

// ListOptions control sort order and offset pagination for List.
type ListOptions struct {
	Sort  string // "recent" (default) or "oldest"
	Page  int64
	Limit int64
}

func (o ListOptions) sortOrder() int {
	if o.Sort == "oldest" {
		return 1
	}
	return -1
}

// perPage applies the default of 20 and the hard cap of 100.
func (o ListOptions) perPage() int64 {
	if o.Limit <= 0 {
		return defaultPageSize
	}
	if o.Limit > maxPageSize {
		return maxPageSize
	}
	return o.Limit
}

func (o ListOptions) skip() int64 {
	page := o.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * o.perPage()
}

// Repository provides CRUD access to the blogs collection. It holds the
// collection handle it was constructed with; nothing here is global.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository wraps the blogs collection.
func NewRepository(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

// slugExists is the existence probe used by slug resolution. One indexed
// count query per candidate, no writes.
func (r *Repository) slugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create validates the input, resolves a slug when none was supplied and
// inserts the post. A duplicate slug rejected by the unique index comes back
// as ErrSlugTaken.
func (r *Repository) Create(ctx context.Context, in CreateInput) (*Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &Post{
		ID:         primitive.NewObjectID(),
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		Author:     in.Author,
		Slug:       strings.TrimSpace(in.Slug),
		Date:       in.Date,
		ImageURL:   in.ImageURL,
		Categories: in.Categories,
		Tags:       in.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if post.Author == "" {
		post.Author = DefaultAuthor
	}
	if post.Categories == nil {
		post.Categories = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if post.Slug == "" {
		slug, err := ResolveSlug(ctx, post.Title, r.slugExists)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return nil, writeError(err)
	}
	return post, nil
}

// writeError translates a duplicate-key rejection from the unique slug index
// into ErrSlugTaken. This covers the race where two concurrent creates derive
// the same slug: the pre-write existence check is best-effort and the index
// is the arbiter, so the losing write surfaces as a conflict, never a retry.
func writeError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlugTaken
	}
	return err
}

// List returns a page of posts, newest first unless "oldest" is requested.
func (r *Repository) List(ctx context.Context, opts ListOptions) ([]Post, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: opts.sortOrder()}}).
		SetSkip(opts.skip()).
		SetLimit(opts.perPage())

	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []Post{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []Post{}
	}
	return results, nil
}

// GetByIdentifier fetches a post by ObjectId hex or by slug.
func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (*Post, error) {
	var post Post
	err := r.coll.FindOne(ctx, identifierFilter(identifier)).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateByIdentifier applies the present fields of a partial update, bumps
// the revision counter and refreshes updatedAt, returning the updated post.
func (r *Repository) UpdateByIdentifier(ctx context.Context, identifier string, in UpdateInput) (*Post, error) {
	set, err := in.changes()
	if err != nil {
		return nil, err
	}
	set["updatedAt"] = time.Now().UTC()

	update := bson.M{
		"$set": set,
		"$inc": bson.M{"revision": 1},
	}

	var post Post
	err = r.coll.FindOneAndUpdate(
		ctx,
		identifierFilter(identifier),
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, writeError(err)
	}
	return &post, nil
}

// DeleteByIdentifier removes a post and returns the deleted document.
// Deletion is physical.
func (r *Repository) DeleteByIdentifier(ctx context.Context, identifier string) (*Post, error) {
	var post Post
	err := r.coll.FindOneAndDelete(ctx, identifierFilter(identifier)).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}
