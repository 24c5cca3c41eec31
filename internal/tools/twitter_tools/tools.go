package twitter_tools

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/twitter-mcp/internal/instrumentation"
	"github.com/teemow/twitter-mcp/internal/logging"
	"github.com/teemow/twitter-mcp/internal/server"
	"github.com/teemow/twitter-mcp/internal/tools/common"
	"github.com/teemow/twitter-mcp/internal/twitter"
)

// RegisterTwitterTools registers all Twitter tools with the MCP server.
// Read tools are always available; write tools (post_tweet, delete_tweet)
// are skipped in read-only mode.
func RegisterTwitterTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register read tools: %w", err)
	}

	if readOnly {
		slog.Info("read-only mode enabled, skipping write tools",
			slog.String("tools", "post_tweet, delete_tweet"),
		)
		return nil
	}

	if err := registerWriteTools(s, sc); err != nil {
		return fmt.Errorf("failed to register write tools: %w", err)
	}

	return nil
}

func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchTool := mcp.NewTool("search_tweets",
		mcp.WithDescription("Search for recent tweets matching a query"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query (e.g., 'golang', 'from:user', '#hashtag')"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of results to return (10-100, default: 10)"),
		),
	)

	s.AddTool(searchTool, common.InstrumentedToolHandlerWithService(
		"search_tweets", "twitter", instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchTweets(ctx, request, sc)
		}))

	userInfoTool := mcp.NewTool("get_user_info",
		mcp.WithDescription("Get profile information about a Twitter user"),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Twitter username (with or without leading @)"),
		),
	)

	s.AddTool(userInfoTool, common.InstrumentedToolHandlerWithService(
		"get_user_info", "twitter", instrumentation.OperationLookupUser, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetUserInfo(ctx, request, sc)
		}))

	return nil
}

func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	postTool := mcp.NewTool("post_tweet",
		mcp.WithDescription("Post a new tweet, optionally as a reply to another tweet"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The text of the tweet (max 280 characters)"),
		),
		mcp.WithString("reply_to_tweet_id",
			mcp.Description("ID of the tweet to reply to (optional)"),
		),
	)

	s.AddTool(postTool, common.InstrumentedToolHandlerWithService(
		"post_tweet", "twitter", instrumentation.OperationCreateTweet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handlePostTweet(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("delete_tweet",
		mcp.WithDescription("Delete a tweet by its ID"),
		mcp.WithString("tweet_id",
			mcp.Required(),
			mcp.Description("ID of the tweet to delete"),
		),
	)

	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService(
		"delete_tweet", "twitter", instrumentation.OperationDeleteTweet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteTweet(ctx, request, sc)
		}))

	return nil
}

// toolArgs type-asserts the request arguments to a map, returning an empty
// map when the client sent none.
func toolArgs(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return make(map[string]interface{})
	}
	return args
}

// isNumericID reports whether s is a non-empty string of ASCII digits,
// the shape of every tweet ID.
func isNumericID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// handlePostTweet handles the post_tweet tool
func handlePostTweet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := toolArgs(request)

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	if n := utf8.RuneCountInString(text); n > twitter.MaxTweetLength {
		return mcp.NewToolResultError(fmt.Sprintf(
			"tweet text exceeds %d characters (current: %d)", twitter.MaxTweetLength, n)), nil
	}

	replyTo, _ := args["reply_to_tweet_id"].(string)
	if replyTo != "" && !isNumericID(replyTo) {
		return mcp.NewToolResultError("reply_to_tweet_id must be a numeric tweet ID"), nil
	}

	tweet, err := sc.TwitterClient().CreateTweet(ctx, text, replyTo)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to post tweet: %v", err)), nil
	}

	return mcp.NewToolResultText(formatPostedTweet(tweet, replyTo != "")), nil
}

// handleSearchTweets handles the search_tweets tool
func handleSearchTweets(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := toolArgs(request)

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	maxResults := 0
	if maxResultsVal, ok := args["max_results"].(float64); ok {
		maxResults = int(maxResultsVal)
	}

	slog.Debug("searching tweets",
		logging.Tool("search_tweets"),
		slog.String("query", instrumentation.TruncateQuery(query)),
		slog.Int("max_results", maxResults),
	)

	results, err := sc.TwitterClient().SearchRecent(ctx, query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search tweets: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSearchResults(query, results)), nil
}

// handleGetUserInfo handles the get_user_info tool
func handleGetUserInfo(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := toolArgs(request)

	username, ok := args["username"].(string)
	if !ok || twitter.NormalizeUsername(username) == "" {
		return mcp.NewToolResultError("username is required"), nil
	}

	user, err := sc.TwitterClient().LookupUser(ctx, username)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get user info: %v", err)), nil
	}

	return mcp.NewToolResultText(formatUserInfo(user)), nil
}

// handleDeleteTweet handles the delete_tweet tool
func handleDeleteTweet(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := toolArgs(request)

	tweetID, ok := args["tweet_id"].(string)
	if !ok || tweetID == "" {
		return mcp.NewToolResultError("tweet_id is required"), nil
	}
	if !isNumericID(tweetID) {
		return mcp.NewToolResultError("tweet_id must be a numeric tweet ID"), nil
	}

	result, err := sc.TwitterClient().DeleteTweet(ctx, tweetID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete tweet: %v", err)), nil
	}

	return mcp.NewToolResultText(formatDeleted(tweetID, result)), nil
}
