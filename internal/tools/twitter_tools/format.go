package twitter_tools

import (
	"fmt"
	"strings"

	"github.com/teemow/twitter-mcp/internal/twitter"
)

// formatPostedTweet renders the result of a successful post_tweet call.
func formatPostedTweet(tweet *twitter.Tweet, isReply bool) string {
	var b strings.Builder
	if isReply {
		b.WriteString("Tweet posted successfully as reply!\n")
	} else {
		b.WriteString("Tweet posted successfully!\n")
	}
	fmt.Fprintf(&b, "Tweet ID: %s\n", tweet.ID)
	fmt.Fprintf(&b, "Text: %s", tweet.Text)
	return b.String()
}

// formatSearchResults renders a recent-search result set as readable text.
// Author profiles come from the expansion includes; a tweet whose author was
// omitted falls back to the raw author ID.
func formatSearchResults(query string, results *twitter.SearchResults) string {
	if len(results.Tweets) == 0 {
		return fmt.Sprintf("No tweets found for query: %s", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d tweets for query %q:\n", len(results.Tweets), query)

	for i, tweet := range results.Tweets {
		b.WriteString("\n")
		author := tweet.AuthorID
		if user, ok := results.Users[tweet.AuthorID]; ok {
			author = fmt.Sprintf("%s (@%s)", user.Name, user.Username)
			if user.Verified {
				author += " [verified]"
			}
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, author)
		fmt.Fprintf(&b, "   %s\n", tweet.Text)
		if !tweet.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "   Posted: %s\n", tweet.CreatedAt.Format("2006-01-02 15:04"))
		}
		m := tweet.PublicMetrics
		fmt.Fprintf(&b, "   Likes: %d | Retweets: %d | Replies: %d\n",
			m.LikeCount, m.RetweetCount, m.ReplyCount)
		fmt.Fprintf(&b, "   Tweet ID: %s\n", tweet.ID)
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatUserInfo renders a user profile as readable text.
func formatUserInfo(user *twitter.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User: @%s\n", user.Username)
	fmt.Fprintf(&b, "Name: %s\n", user.Name)
	fmt.Fprintf(&b, "ID: %s\n", user.ID)
	if user.Description != "" {
		fmt.Fprintf(&b, "Bio: %s\n", user.Description)
	}
	fmt.Fprintf(&b, "Verified: %t\n", user.Verified)
	m := user.PublicMetrics
	fmt.Fprintf(&b, "Followers: %d\n", m.FollowersCount)
	fmt.Fprintf(&b, "Following: %d\n", m.FollowingCount)
	fmt.Fprintf(&b, "Tweets: %d\n", m.TweetCount)
	if !user.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Joined: %s\n", user.CreatedAt.Format("January 2006"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatDeleted renders the result of a delete_tweet call.
func formatDeleted(tweetID string, result *twitter.DeleteResult) string {
	if result.Deleted {
		return fmt.Sprintf("Tweet %s deleted successfully!", tweetID)
	}
	return fmt.Sprintf("Tweet %s was not deleted.", tweetID)
}
