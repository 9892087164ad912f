package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"golang.org/x/oauth2"
)

// Endpoint is Slack's OAuth v2 endpoint
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://slack.com/oauth/v2/authorize",
	TokenURL:  "https://slack.com/api/oauth.v2.access",
	AuthStyle: oauth2.AuthStyleInParams,
}

// Scopes requested from the workspace when the bot is installed
var Scopes = []string{"chat:write", "commands", "users:read", "users:read.email", "incoming-webhook"}

// Config holds the Slack app credentials
type Config struct {
	ClientID      string
	ClientSecret  string
	SigningSecret string
	RedirectURL   string
	// APIURL overrides the Web API base URL; empty means slack.com
	APIURL string
}

// Installation is the result of a completed OAuth exchange
type Installation struct {
	WorkspaceID   string
	WorkspaceName string
	AccessToken   string
	BotUserID     string
	ChannelID     string
	ChannelName   string
}

// EventKind classifies an Events API payload
type EventKind string

const (
	EventURLVerification EventKind = "url_verification"
	EventAppUninstalled  EventKind = "app_uninstalled"
	EventOther           EventKind = "other"
)

// Event is the part of an Events API payload the backend reacts to
type Event struct {
	Kind        EventKind
	Challenge   string
	WorkspaceID string
}

// Command is a parsed slash command
type Command struct {
	Command     string
	Text        string
	UserID      string
	WorkspaceID string
}

// Client wraps the Slack OAuth flow, request verification and the Web API
type Client struct {
	cfg        Config
	oauth      *oauth2.Config
	httpClient *http.Client
}

// NewClient creates a new Slack client
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     Endpoint,
		},
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthCodeURL builds the workspace install URL. Slack expects a comma separated scope list.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("scope", strings.Join(Scopes, ",")))
}

// Exchange trades an OAuth code for a bot installation
func (c *Client) Exchange(ctx context.Context, code string) (*Installation, error) {
	resp, err := slack.GetOAuthV2ResponseContext(ctx, c.httpClient, c.cfg.ClientID, c.cfg.ClientSecret, code, c.cfg.RedirectURL)
	if err != nil {
		return nil, fmt.Errorf("slack oauth exchange: %w", err)
	}
	return &Installation{
		WorkspaceID:   resp.Team.ID,
		WorkspaceName: resp.Team.Name,
		AccessToken:   resp.AccessToken,
		BotUserID:     resp.BotUserID,
		ChannelID:     resp.IncomingWebhook.ChannelID,
		ChannelName:   resp.IncomingWebhook.Channel,
	}, nil
}

// Verify checks the X-Slack-Signature of a request body
func (c *Client) Verify(header http.Header, body []byte) error {
	verifier, err := slack.NewSecretsVerifier(header, c.cfg.SigningSecret)
	if err != nil {
		return err
	}
	if _, err := verifier.Write(body); err != nil {
		return err
	}
	return verifier.Ensure()
}

// ParseEvent decodes an Events API payload. The signature must already be verified.
func (c *Client) ParseEvent(body []byte) (*Event, error) {
	apiEvent, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		return nil, fmt.Errorf("parse slack event: %w", err)
	}

	switch apiEvent.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			return nil, fmt.Errorf("parse url verification: %w", err)
		}
		return &Event{Kind: EventURLVerification, Challenge: challenge.Challenge}, nil
	case slackevents.CallbackEvent:
		if apiEvent.InnerEvent.Type == string(slackevents.AppUninstalled) {
			return &Event{Kind: EventAppUninstalled, WorkspaceID: apiEvent.TeamID}, nil
		}
	}
	return &Event{Kind: EventOther, WorkspaceID: apiEvent.TeamID}, nil
}

// ParseCommand decodes a slash command form body
func (c *Client) ParseCommand(body []byte) (*Command, error) {
	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	cmd, err := slack.SlashCommandParse(req)
	if err != nil {
		return nil, fmt.Errorf("parse slash command: %w", err)
	}
	return &Command{
		Command:     cmd.Command,
		Text:        strings.TrimSpace(cmd.Text),
		UserID:      cmd.UserID,
		WorkspaceID: cmd.TeamID,
	}, nil
}

// PostMessage posts text to a channel with the bot token
func (c *Client) PostMessage(ctx context.Context, token, channelID, text string) error {
	_, _, err := c.api(token).PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("slack post message: %w", err)
	}
	return nil
}

// DirectMessage sends text to the workspace member registered with email
func (c *Client) DirectMessage(ctx context.Context, token, email, text string) error {
	api := c.api(token)
	user, err := api.GetUserByEmailContext(ctx, email)
	if err != nil {
		return fmt.Errorf("slack lookup %s: %w", email, err)
	}
	if _, _, err := api.PostMessageContext(ctx, user.ID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("slack direct message: %w", err)
	}
	return nil
}

// UserEmail resolves the email address of a workspace member
func (c *Client) UserEmail(ctx context.Context, token, userID string) (string, error) {
	user, err := c.api(token).GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("slack user info: %w", err)
	}
	return user.Profile.Email, nil
}

func (c *Client) api(token string) *slack.Client {
	opts := []slack.Option{slack.OptionHTTPClient(c.httpClient)}
	if c.cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(c.cfg.APIURL))
	}
	return slack.New(token, opts...)
}
