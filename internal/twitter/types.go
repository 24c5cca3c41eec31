package twitter

import "time"

// Tweet is the payload returned when a tweet is created.
type Tweet struct {
	// ID is the tweet's numeric identifier as a string
	ID string `json:"id"`

	// Text is the tweet text as stored by the platform
	Text string `json:"text"`
}

// TweetMetrics holds the public engagement counters of a tweet.
type TweetMetrics struct {
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	LikeCount    int `json:"like_count"`
	QuoteCount   int `json:"quote_count"`
}

// SearchTweet is one result of a recent-tweet search, with the expanded
// fields requested by SearchRecent.
type SearchTweet struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	AuthorID      string       `json:"author_id"`
	CreatedAt     time.Time    `json:"created_at"`
	PublicMetrics TweetMetrics `json:"public_metrics"`
}

// UserMetrics holds the public counters of a user profile.
type UserMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
}

// User is a Twitter user profile.
type User struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Username      string      `json:"username"`
	Description   string      `json:"description"`
	Verified      bool        `json:"verified"`
	CreatedAt     time.Time   `json:"created_at"`
	PublicMetrics UserMetrics `json:"public_metrics"`
}

// SearchResults bundles the tweets of one search with the author profiles
// resolved from the response's expansion includes.
type SearchResults struct {
	// Tweets in the order returned by the API
	Tweets []SearchTweet

	// Users maps author ID to profile for the tweets above. An author may
	// be absent if the API omitted it from the includes.
	Users map[string]User

	// ResultCount as reported by the response meta object
	ResultCount int
}

// DeleteResult reports whether a tweet deletion took effect.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// API v2 request/response envelopes. The {data, includes, meta} wrapper is
// handled here and never leaks to callers as untyped JSON.

type createTweetRequest struct {
	Text  string      `json:"text"`
	Reply *tweetReply `json:"reply,omitempty"`
}

type tweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type tweetEnvelope struct {
	Data Tweet `json:"data"`
}

type userEnvelope struct {
	Data User `json:"data"`
}

type deleteEnvelope struct {
	Data DeleteResult `json:"data"`
}

type searchEnvelope struct {
	Data     []SearchTweet `json:"data"`
	Includes struct {
		Users []User `json:"users"`
	} `json:"includes"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}
