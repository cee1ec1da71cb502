package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// User is the subset of a Slack user the bot cares about.
type User struct {
	ID   string
	Name string
}

// Client is the chat-platform surface used by the bot. Handlers receive
// it explicitly so tests can substitute a fake.
type Client interface {
	// PostMessage sends text to a channel.
	PostMessage(ctx context.Context, channel, text string) error
	// ChannelMembers returns the user IDs present in a channel.
	ChannelMembers(ctx context.Context, channel string) ([]string, error)
	// Users returns the workspace user directory.
	Users(ctx context.Context) ([]User, error)
}

// API implements Client against the Slack Web API.
type API struct {
	client *slackapi.Client
}

// NewAPI creates a Slack-backed client from a bot user OAuth token.
func NewAPI(token string) *API {
	return &API{client: slackapi.New(token)}
}

func (a *API) PostMessage(ctx context.Context, channel, text string) error {
	_, _, err := a.client.PostMessageContext(ctx, channel, slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("chat.postMessage: %w", err)
	}
	return nil
}

func (a *API) ChannelMembers(ctx context.Context, channel string) ([]string, error) {
	var members []string
	params := &slackapi.GetUsersInConversationParameters{
		ChannelID: channel,
		Limit:     200,
	}
	for {
		page, cursor, err := a.client.GetUsersInConversationContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("conversations.members: %w", err)
		}
		members = append(members, page...)
		if cursor == "" {
			return members, nil
		}
		params.Cursor = cursor
	}
}

func (a *API) Users(ctx context.Context) ([]User, error) {
	apiUsers, err := a.client.GetUsersContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("users.list: %w", err)
	}

	users := make([]User, 0, len(apiUsers))
	for _, u := range apiUsers {
		users = append(users, User{ID: u.ID, Name: u.Name})
	}
	return users, nil
}

// MembersInChannel resolves the names of the users that are members of
// the given channel, joining the channel membership with the user
// directory.
func MembersInChannel(ctx context.Context, c Client, channel string) ([]string, error) {
	memberIDs, err := c.ChannelMembers(ctx, channel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChannelInfo, err)
	}

	users, err := c.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMembersList, err)
	}

	inChannel := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		inChannel[id] = struct{}{}
	}

	var names []string
	for _, user := range users {
		if _, ok := inChannel[user.ID]; ok {
			names = append(names, user.Name)
		}
	}
	return names, nil
}
