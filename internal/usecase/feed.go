package usecase

import (
	"sort"
	"time"

	"go-jobnetwork-backend/internal/domain"
)

// annotateFeed attaches the viewer-specific flags to each post. The follow
// set is resolved once per call so the annotation cannot drift between
// posts of the same page.
func annotateFeed(posts []domain.Post, following map[string]bool, now time.Time) []domain.FeedPost {
	feed := make([]domain.FeedPost, 0, len(posts))
	for _, p := range posts {
		feed = append(feed, domain.FeedPost{
			Post:              p,
			IsExpired:         p.Expired(now),
			IsFollowingAuthor: following[p.UserID],
		})
	}
	return feed
}

// rankFeed orders the feed by the composite key:
//  1. expiration bucket (non-expired first)
//  2. follow bucket (followed authors first)
//  3. created_at descending
//
// Full-key ties break on post id descending so page boundaries are
// reproducible across calls.
func rankFeed(feed []domain.FeedPost) {
	sort.Slice(feed, func(i, j int) bool {
		a, b := &feed[i], &feed[j]
		if a.IsExpired != b.IsExpired {
			return !a.IsExpired
		}
		if a.IsFollowingAuthor != b.IsFollowingAuthor {
			return a.IsFollowingAuthor
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// rankOwn orders an owner's post listing: expiration bucket, then recency.
// The follow bucket does not apply when viewing a single author.
func rankOwn(feed []domain.FeedPost) {
	sort.Slice(feed, func(i, j int) bool {
		a, b := &feed[i], &feed[j]
		if a.IsExpired != b.IsExpired {
			return !a.IsExpired
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}

// pageSlice applies (page, limit) to an already ranked feed.
func pageSlice(feed []domain.FeedPost, page, limit int) []domain.FeedPost {
	start := (page - 1) * limit
	if start >= len(feed) {
		return []domain.FeedPost{}
	}
	end := start + limit
	if end > len(feed) {
		end = len(feed)
	}
	return feed[start:end]
}
