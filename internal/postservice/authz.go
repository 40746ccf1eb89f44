package postservice

// CanMutatePost reports whether the requesting user may update or delete the
// post. A missing post or a post without an author id resolves to false.
func CanMutatePost(post *Post, requestingUserID string) bool {
	if post == nil || post.AuthorID == "" {
		return false
	}

	return identitiesEqual(post.AuthorID, requestingUserID)
}
