package postservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutatePost(t *testing.T) {
	const authorID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	testCases := []struct {
		name      string
		post      *Post
		requester string
		want      bool
	}{
		{
			name:      "author in identical form",
			post:      &Post{AuthorID: authorID},
			requester: authorID,
			want:      true,
		},
		{
			name:      "author in alternate uuid form",
			post:      &Post{AuthorID: authorID},
			requester: "6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
			want:      true,
		},
		{
			name:      "different user",
			post:      &Post{AuthorID: authorID},
			requester: "11111111-2222-3333-4444-555555555555",
			want:      false,
		},
		{
			name:      "malformed requester",
			post:      &Post{AuthorID: authorID},
			requester: "definitely-not-an-id",
			want:      false,
		},
		{
			name:      "anonymous post never mutable by a session user",
			post:      &Post{AuthorID: AnonymousAuthorID},
			requester: authorID,
			want:      false,
		},
		{
			name:      "missing post",
			post:      nil,
			requester: authorID,
			want:      false,
		},
		{
			name:      "post without author",
			post:      &Post{},
			requester: authorID,
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanMutatePost(tc.post, tc.requester))
		})
	}
}
