package bot

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"slices"

	"github.com/propsbot/props/internal/command"
	"github.com/propsbot/props/internal/config"
	"github.com/propsbot/props/internal/ledger"
	"github.com/propsbot/props/internal/slack"
)

//go:embed contribute.json
var contributeJSON []byte

// Handler handles Slack webhook events and the read-only service endpoints.
type Handler struct {
	client slack.Client
	store  *ledger.Store
	cfg    *config.Config
}

// NewHandler creates a new webhook handler
func NewHandler(client slack.Client, store *ledger.Store, cfg *config.Config) *Handler {
	return &Handler{
		client: client,
		store:  store,
		cfg:    cfg,
	}
}

// HandleEvent handles Slack Events API deliveries: the url_verification
// handshake and channel messages carrying props commands.
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading payload: %v", err)
		http.Error(w, "Error reading payload", http.StatusBadRequest)
		return
	}

	var cb EventCallback
	if err := json.Unmarshal(payload, &cb); err != nil {
		log.Printf("Error parsing event: %v", err)
		http.Error(w, "Error parsing event", http.StatusBadRequest)
		return
	}

	// Slack sends a one-time challenge when the endpoint is registered.
	if cb.Type == "url_verification" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cb.Challenge))
		return
	}

	// A structurally valid callback without text or channel is malformed;
	// log it and drop the request so Slack does not redeliver.
	channel, err := cb.Event.channel()
	if err != nil {
		log.Printf("Dropping malformed event: %v; payload=%s", err, payload)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Event dropped"))
		return
	}

	if channel != h.cfg.PropsChannelID {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Event ignored"))
		return
	}

	// Ignore the bot's own messages to avoid replying to replies.
	if cb.Event.Username == h.cfg.BotUsername {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Own message ignored"))
		return
	}

	text, err := cb.Event.text()
	if err != nil {
		log.Printf("Dropping malformed event: %v; payload=%s", err, payload)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Event dropped"))
		return
	}

	cmd, ok := command.Parse(text)
	if !ok {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("No command found"))
		return
	}

	// Membership gate: only recognized members of the channel can be
	// given props. A lookup failure rejects the request before any
	// ledger mutation.
	members, err := slack.MembersInChannel(r.Context(), h.client, channel)
	if err != nil {
		log.Printf("Membership lookup failed for channel %s: %v", channel, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Membership lookup failed"))
		return
	}

	if !slices.Contains(members, cmd.Target) {
		log.Printf("Target %q is not a member of channel %s, skipping", cmd.Target, channel)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Target not a member"))
		return
	}

	value, err := h.resolve(cmd)
	if err != nil {
		log.Printf("Rejecting command %q: %v", text, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Invalid command"))
		return
	}

	reply := formatReply(cmd, value)
	if err := h.client.PostMessage(r.Context(), channel, reply); err != nil {
		log.Printf("Failed to post reply to %s: %v", channel, err)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Reply failed"))
		return
	}

	log.Printf("Applied command: target=%s prop=%s op=%s value=%d", cmd.Target, cmd.Property, cmd.Operator, value)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// resolve applies a mutating command or reads the current value for a query.
func (h *Handler) resolve(cmd command.Command) (int, error) {
	if !cmd.HasOperator() {
		return h.store.Read(cmd.Target, cmd.Property), nil
	}
	op, err := ledger.ParseOp(cmd.Operator)
	if err != nil {
		return 0, err
	}
	return h.store.Apply(cmd.Target, cmd.Property, op, cmd.Operand)
}

func formatReply(cmd command.Command, value int) string {
	if cmd.Property == "" {
		return fmt.Sprintf("%s => %d", cmd.Target, value)
	}
	return fmt.Sprintf("%s:%s => %d", cmd.Target, cmd.Property, value)
}

// HandleSlashCommand handles the /props-bot slash command. Slack sends
// form-encoded payloads carrying the shared verification token.
func (h *Handler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("Error parsing slash command form: %v", err)
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	if !h.validRequest(r.FormValue("token"), r.FormValue("team_id")) {
		log.Printf("Slash command token validation failed for team %q", r.FormValue("team_id"))
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("wazzup playa?"))
}

func (h *Handler) validRequest(token, teamID string) bool {
	return token == h.cfg.SlackVerificationToken && teamID == h.cfg.SlackTeamID
}

// HandleInteractivity acknowledges Slack interactivity payloads.
func (h *Handler) HandleInteractivity(w http.ResponseWriter, r *http.Request) {
	io.Copy(io.Discard, r.Body)
	w.WriteHeader(http.StatusOK)
}

// HandleMessageMenus acknowledges Slack message menu payloads.
func (h *Handler) HandleMessageMenus(w http.ResponseWriter, r *http.Request) {
	io.Copy(io.Discard, r.Body)
	w.WriteHeader(http.StatusOK)
}

// HandleVersion reports the resolved build version.
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s\n", h.cfg.AppVersion)
}

// HandleContribute serves the embedded contribute.json document.
func (h *Handler) HandleContribute(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(contributeJSON)
}
