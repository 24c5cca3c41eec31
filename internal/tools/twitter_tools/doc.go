// Package twitter_tools registers the Twitter/X MCP tools: posting,
// searching, user lookup and deletion. Each handler validates its arguments
// before any network activity, delegates to the twitter.Client, and renders
// a plain-text result for the MCP caller.
//
// Write tools (post_tweet, delete_tweet) are skipped when the server runs in
// read-only mode; search_tweets and get_user_info are always registered.
package twitter_tools
