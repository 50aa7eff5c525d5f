package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Discord REST API client.
type Client struct {
	token      string
	appID      string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Discord client authenticating as the bot with token.
func NewClient(token, appID string) *Client {
	return &Client{
		token:      token,
		appID:      appID,
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Discord API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// CreateMessage posts content to a channel.
func (c *Client) CreateMessage(ctx context.Context, channelID, content string) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/channels/%s/messages", channelID)
	if err := c.do(ctx, http.MethodPost, path, messagePayload{Content: truncate(content)}, &msg); err != nil {
		return nil, fmt.Errorf("discord create message: %w", err)
	}
	return &msg, nil
}

// EditMessage replaces the content of an existing message.
// A message that no longer exists yields an error matching ErrNotFound.
func (c *Client) EditMessage(ctx context.Context, channelID, messageID, content string) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	if err := c.do(ctx, http.MethodPatch, path, messagePayload{Content: truncate(content)}, &msg); err != nil {
		return nil, fmt.Errorf("discord edit message: %w", err)
	}
	return &msg, nil
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("discord delete message: %w", err)
	}
	return nil
}

// EditOriginalResponse sets the content of a deferred interaction response.
func (c *Client) EditOriginalResponse(ctx context.Context, interactionToken, content string) error {
	path := fmt.Sprintf("/webhooks/%s/%s/messages/@original", c.appID, interactionToken)
	if err := c.do(ctx, http.MethodPatch, path, messagePayload{Content: truncate(content)}, nil); err != nil {
		return fmt.Errorf("discord edit original response: %w", err)
	}
	return nil
}

// RegisterGuildCommands overwrites the application's commands in a guild.
func (c *Client) RegisterGuildCommands(ctx context.Context, guildID string, cmds []ApplicationCommand) error {
	path := fmt.Sprintf("/applications/%s/guilds/%s/commands", c.appID, guildID)
	if err := c.do(ctx, http.MethodPut, path, cmds, nil); err != nil {
		return fmt.Errorf("discord register commands: %w", err)
	}
	return nil
}

// SetInteractionsEndpoint points the application's interactions endpoint at
// url. Discord sends a signed PING to url before accepting it.
func (c *Client) SetInteractionsEndpoint(ctx context.Context, url string) error {
	payload := struct {
		InteractionsEndpointURL string `json:"interactions_endpoint_url"`
	}{InteractionsEndpointURL: url}
	if err := c.do(ctx, http.MethodPatch, "/applications/@me", payload, nil); err != nil {
		return fmt.Errorf("discord set interactions endpoint: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(raw)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= MaxContentLength {
		return content
	}
	return string(runes[:MaxContentLength-1]) + "…"
}
