package line

import (
	"fmt"
	"sync"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"paytrack/internal/pkg/logger"
)

// Client wraps the linebot.Client as the push-delivery channel for reminders.
// A client with no credentials is valid but not ready; pushes fail until the
// CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN are configured.
type Client struct {
	bot *linebot.Client
	log logger.Logger
}

var (
	clientInstance *Client
	once           sync.Once
)

// NewClient creates a new singleton instance of the LINE Bot client.
func NewClient(channelSecret, channelToken string, log logger.Logger) *Client {
	once.Do(func() {
		c := &Client{log: log}
		if channelSecret == "" || channelToken == "" {
			log.Warn("LINE credentials not configured; notification delivery is disabled")
			clientInstance = c
			return
		}
		bot, err := linebot.New(channelSecret, channelToken)
		if err != nil {
			log.Error("Failed to create LINE Bot client", err)
			clientInstance = c
			return
		}
		c.bot = bot
		log.Info("LINE Bot client created.")
		clientInstance = c
	})
	return clientInstance
}

// Ready reports whether the client can deliver messages.
func (c *Client) Ready() bool {
	return c != nil && c.bot != nil
}

// Push sends a notification to the given LINE user via the PushMessage API.
// Title and body render as a single text message.
func (c *Client) Push(to, title, body string) error {
	if !c.Ready() {
		return fmt.Errorf("line client is not configured")
	}
	text := title
	if body != "" {
		text = title + "\n" + body
	}
	if _, err := c.bot.PushMessage(to, linebot.NewTextMessage(text)).Do(); err != nil {
		return err
	}
	c.log.Debug(fmt.Sprintf("Pushed notification to %s", to))
	return nil
}
