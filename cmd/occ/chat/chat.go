// Package chatcmder provides the chat command for talking to the
// migration data assistant through a running occ API server.
package chatcmder

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jivsocc/commandcenter/pkg/chat"
	"github.com/jivsocc/commandcenter/pkg/cliui"
	"github.com/jivsocc/commandcenter/pkg/config"
	"github.com/jivsocc/commandcenter/pkg/dotdir"
	"github.com/jivsocc/commandcenter/pkg/logger"
	"github.com/jivsocc/commandcenter/pkg/utils"
)

var (
	userPrompt     = cliui.PromptStyle.Render("you> ")
	assistantLabel = cliui.AssistantStyle.Render("assistant>")
)

type chatCommander struct {
	apiTarget string
	fresh     bool
	debug     bool
}

// chatRequest mirrors the API server's chat request body.
type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

// chatReply mirrors the API server's chat response bodies.
type chatReply struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

const chatLongDesc string = `Start an interactive chat session with the migration data assistant.

Messages go to a running occ API server's chat endpoint, which guards
every message before contacting the model. The conversation is saved
to the .occ/ directory and resumed on the next run; the history is
capped at 50 messages, dropping the oldest turns first.

Type /clear to discard the saved conversation, /exit or Ctrl+D to quit.

Examples:
  occ chat
  occ chat --fresh
  occ chat --api-target http://localhost:8080`

const chatShortDesc string = "Chat with the migration data assistant"

func NewChatCmd() *cobra.Command {
	cmder := &chatCommander{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: chatShortDesc,
		Long:  chatLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			cfg, err := cfger.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("api-target") {
				cmder.apiTarget = cfg.Client.APITarget
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.apiTarget, "api-target", "a", defaults.Client.APITarget, "occ API server URL")
	cmd.Flags().BoolVar(&cmder.fresh, "fresh", false, "Start a new conversation, discarding any saved session")

	return cmd
}

func (c *chatCommander) run() error {
	log := logger.New(logger.WithPretty(true), logger.WithDebug(c.debug))

	dotdirManager := dotdir.NewManager()
	if c.fresh {
		if err := dotdirManager.ClearSession(""); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
	}

	session, err := dotdirManager.LoadSessionState("")
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	var messages []chat.Message
	fmt.Println()
	if session != nil && len(session.Messages) > 0 {
		last := session.Messages[len(session.Messages)-1]
		fmt.Printf("  %s Resuming conversation %s\n",
			cliui.SuccessMark,
			cliui.DimStyle.Render(fmt.Sprintf("(%d messages)", len(session.Messages))),
		)
		fmt.Printf("  %s\n", cliui.DimStyle.Render(utils.Truncate(last.Content, 60)))
		for _, msg := range session.Messages {
			messages = append(messages, chat.Message{
				Role:    msg.Role,
				Content: msg.Content,
			})
		}
	} else {
		fmt.Printf("  %s New conversation\n", cliui.DimStyle.Render("●"))
	}

	fmt.Printf("  %s %s\n\n",
		cliui.KeyStyle.Render("Server:"),
		cliui.ValueStyle.Render(c.apiTarget),
	)
	fmt.Printf("  %s\n\n", cliui.DimStyle.Render("Type your message and press Enter. /clear to reset, /exit or Ctrl+D to quit."))

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(userPrompt)
		if !scanner.Scan() {
			// EOF or error
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" {
			break
		}
		if input == "/clear" {
			messages = nil
			if err := dotdirManager.ClearSession(""); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			fmt.Printf("  %s Conversation cleared\n\n", cliui.SuccessMark)
			continue
		}

		messages = append(messages, chat.Message{
			Role:    chat.RoleUser,
			Content: input,
		})
		messages = capHistory(messages)

		log.Debug("sending chat request",
			"api_target", c.apiTarget,
			"message_count", len(messages),
		)

		reply, err := c.send(messages)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s %v\n\n", cliui.FailMark, err)
			// Remove the failed user message so we can retry
			messages = messages[:len(messages)-1]
			continue
		}

		messages = append(messages, chat.Message{
			Role:    chat.RoleAssistant,
			Content: reply,
		})

		rendered, err := cliui.RenderMarkdown(reply)
		if err != nil {
			rendered = reply + "\n"
		}
		fmt.Printf("%s\n%s", assistantLabel, rendered)

		if err := c.saveSession(dotdirManager, messages); err != nil {
			log.Warn("failed to save session", "error", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println()
	return nil
}

// capHistory trims the oldest turns so the conversation stays within
// the server's message limit, always keeping the latest message.
func capHistory(messages []chat.Message) []chat.Message {
	if len(messages) <= chat.MaxMessages {
		return messages
	}
	return messages[len(messages)-chat.MaxMessages:]
}

// send posts the conversation to the chat endpoint and returns the
// assistant's reply text. Canned redirects arrive as ordinary replies.
func (c *chatCommander) send(messages []chat.Message) (string, error) {
	body, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := c.apiTarget + "/api/chat"
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		// Model responses can be slow
		Timeout: 5 * time.Minute,
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request to server: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var reply chatReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(raw))
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned status %d: %s", resp.StatusCode, reply.Error)
	}

	return reply.Message, nil
}

// saveSession persists the conversation for the next run.
func (c *chatCommander) saveSession(mgr *dotdir.Manager, messages []chat.Message) error {
	state := &dotdir.SessionState{
		Messages: make([]dotdir.SessionMessage, len(messages)),
	}
	for i, msg := range messages {
		state.Messages[i] = dotdir.SessionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return mgr.SaveSession(state, "")
}
