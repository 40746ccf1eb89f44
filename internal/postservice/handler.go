package postservice

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkwellhq/inkwell/internal/common"
)

func NewPostService(db *sql.DB) *PostService {
	return &PostService{
		posts:    newPostModel(db),
		comments: newCommentModel(db),
		likes:    newLikeModel(db),
	}
}

type CreatePostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	FeaturedImage *string  `json:"featured_image"`
	Status        string   `json:"status"`
	AuthorID      string   `json:"author_id"`
	AuthorName    string   `json:"author_name"`
	AuthorEmail   string   `json:"author_email"`
}

// CreatePost stores a new post and returns its id. Excerpt and read time
// are derived from the content when not supplied, the author snapshot is
// captured as-is, and published_at is stamped only when the post is created
// already published.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) (string, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateContent(v, req.Content)
	if req.Status != "" {
		validateStatus(v, req.Status)
	}
	if !v.Valid() {
		return "", v.ValidationError()
	}

	content := sanitizeContent(req.Content)

	post := &Post{
		Title:         req.Title,
		Content:       content,
		Excerpt:       req.Excerpt,
		AuthorID:      canonicalAuthorID(req.AuthorID),
		AuthorName:    req.AuthorName,
		AuthorEmail:   req.AuthorEmail,
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		ReadTime:      calculateReadTime(content),
	}

	if post.Excerpt == "" {
		post.Excerpt = makeExcerpt(content)
	}
	if post.AuthorID == "" {
		post.AuthorID = AnonymousAuthorID
	}
	if post.AuthorName == "" {
		post.AuthorName = AnonymousAuthorName
	}
	if post.AuthorEmail == "" {
		post.AuthorEmail = AnonymousAuthorEmail
	}
	if post.Category == "" {
		post.Category = DefaultCategory
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Status == "" {
		post.Status = StatusDraft
	}
	if post.Status == StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.posts.insert(ctx, post); err != nil {
		return "", err
	}

	return post.ID, nil
}

// GetPostByID returns the post and counts the read as a view. A malformed
// or unknown id is ErrRecordNotFound.
func (s *PostService) GetPostByID(ctx context.Context, id string) (*Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	return s.posts.getAndCountView(ctx, postID)
}

// GetPost returns the post without counting a view. Ownership checks and
// other internal reads go through here so they never inflate the counter.
func (s *PostService) GetPost(ctx context.Context, id string) (*Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	return s.posts.getByID(ctx, postID)
}

type UpdatePostRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	Excerpt       *string  `json:"excerpt"`
	Category      *string  `json:"category"`
	Tags          []string `json:"tags"`
	FeaturedImage *string  `json:"featured_image"`
	Status        *string  `json:"status"`
}

// UpdatePost applies a partial patch and reports whether a post was
// touched. A malformed or unknown id reports false rather than an error.
func (s *PostService) UpdatePost(ctx context.Context, id string, req *UpdatePostRequest) (bool, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	v := common.NewValidator()
	if req.Title != nil {
		validateTitle(v, *req.Title)
	}
	if req.Content != nil {
		validateContent(v, *req.Content)
	}
	if req.Status != nil {
		validateStatus(v, *req.Status)
	}
	if !v.Valid() {
		return false, v.ValidationError()
	}

	if req.Content != nil {
		clean := sanitizeContent(*req.Content)
		req.Content = &clean
	}

	return s.posts.update(ctx, postID, req)
}

// DeletePost reports whether a post was actually removed.
func (s *PostService) DeletePost(ctx context.Context, id string) (bool, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	return s.posts.delete(ctx, postID)
}

// ListPublishedPosts returns published posts newest first. Default page
// size is 20. Listing does not increment view counters.
func (s *PostService) ListPublishedPosts(ctx context.Context, limit, skip int) ([]Post, error) {
	if limit < 1 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	return s.posts.listPublished(ctx, limit, skip)
}

// ListPostsByAuthor returns every post of the author, drafts included.
func (s *PostService) ListPostsByAuthor(ctx context.Context, authorID string) ([]Post, error) {
	v := common.NewValidator()
	v.Check(authorID != "", "author", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.posts.listByAuthor(ctx, canonicalAuthorID(authorID))
}

// SearchPosts matches the query case-insensitively against title, content
// and tags of published posts.
func (s *PostService) SearchPosts(ctx context.Context, query string, limit int) ([]Post, error) {
	v := common.NewValidator()
	v.Check(v.NotBlank(query), "q", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if limit < 1 {
		limit = 20
	}

	return s.posts.search(ctx, query, limit)
}

// ToggleLike flips the user's like on the post and returns the resulting
// membership state and counter. Failures surface as errors; the result is
// never a zeroed placeholder.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*LikeResult, error) {
	v := common.NewValidator()
	validateUUID(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	pid, err := uuid.Parse(postID)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	return s.likes.toggle(ctx, pid, uuid.MustParse(userID))
}

// HasLiked reports the user's current like membership for the post.
// Malformed ids read as not liked.
func (s *PostService) HasLiked(ctx context.Context, postID, userID string) (bool, error) {
	pid, err := uuid.Parse(postID)
	if err != nil {
		return false, nil
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, nil
	}

	return s.likes.exists(ctx, pid, uid)
}

// ListLikedPosts returns the posts the user currently likes.
func (s *PostService) ListLikedPosts(ctx context.Context, userID string) ([]Post, error) {
	v := common.NewValidator()
	validateUUID(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	ids, err := s.likes.likedPostIDs(ctx, uuid.MustParse(userID))
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []Post{}, nil
	}

	return s.posts.getByIDs(ctx, ids)
}

// ListCommentsByPost returns the post's comments oldest first.
func (s *PostService) ListCommentsByPost(ctx context.Context, postID string) ([]Comment, error) {
	pid, err := uuid.Parse(postID)
	if err != nil {
		return nil, ErrRecordNotFound
	}

	return s.comments.listByPost(ctx, pid)
}

type CreateCommentRequest struct {
	PostID      string `json:"post_id"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}

// CreateComment stores a comment with the author snapshot captured at call
// time and returns the new comment's id.
func (s *PostService) CreateComment(ctx context.Context, req *CreateCommentRequest) (string, error) {
	content := strings.TrimSpace(req.Content)

	v := common.NewValidator()
	validateUUID(v, req.PostID, "post_id")
	validateUUID(v, req.AuthorID, "author_id")
	v.Check(content != "", "content", "must be provided")
	if !v.Valid() {
		return "", v.ValidationError()
	}

	comment := &Comment{
		PostID:      req.PostID,
		AuthorID:    req.AuthorID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     sanitizeContent(content),
	}

	if comment.AuthorName == "" {
		comment.AuthorName = AnonymousAuthorName
	}

	if err := s.comments.insert(ctx, comment); err != nil {
		return "", err
	}

	return comment.ID, nil
}

// DeleteComment removes the comment when it belongs to the requesting
// user. Malformed ids report false.
func (s *PostService) DeleteComment(ctx context.Context, id, requestingUserID string) (bool, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	uid, err := uuid.Parse(requestingUserID)
	if err != nil {
		return false, nil
	}

	return s.comments.delete(ctx, cid, uid)
}
