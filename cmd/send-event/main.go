// Command send-event posts a single skill event at a running health log
// service and prints the spoken response. Handy for exercising
// conversations without the voice platform in front.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

type skillEvent struct {
	RequestID  string            `json:"request_id"`
	Type       string            `json:"type"`
	Intent     string            `json:"intent,omitempty"`
	Slots      map[string]string `json:"slots,omitempty"`
	UserID     string            `json:"user_id"`
	NewSession bool              `json:"new_session"`
}

type skillResponse struct {
	Speech     string `json:"speech"`
	Reprompt   string `json:"reprompt"`
	EndSession bool   `json:"end_session"`
	Card       *struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"card"`
}

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		eventType  = flag.String("type", "IntentRequest", "Request type: LaunchRequest, IntentRequest or SessionEndedRequest")
		intent     = flag.String("intent", "", "Intent name, e.g. AddUserIntent")
		user       = flag.String("user", "local-test-user", "Opaque user identity")
		newSession = flag.Bool("new-session", false, "Mark the event as session-opening")
		slots      = flag.String("slots", "", "Comma-separated slot pairs, e.g. UserName=alex,WeightNumber=150")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	ev := skillEvent{
		RequestID:  uuid.NewString(),
		Type:       *eventType,
		Intent:     *intent,
		Slots:      parseSlots(*slots),
		UserID:     *user,
		NewSession: *newSession,
	}

	body, err := json.Marshal(ev)
	if err != nil {
		fatal("encode event: " + err.Error())
	}

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Post(*baseURL+"/skill", "application/json", bytes.NewReader(body))
	if err != nil {
		fatal("post event: " + err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		fatal(fmt.Sprintf("service returned %d: %s (%s)", resp.StatusCode, e.Message, e.Code))
	}

	var out skillResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fatal("decode response: " + err.Error())
	}

	fmt.Println("speech:     " + out.Speech)
	if out.Reprompt != "" {
		fmt.Println("reprompt:   " + out.Reprompt)
	}
	if out.Card != nil {
		fmt.Println("card title: " + out.Card.Title)
		fmt.Println(out.Card.Content)
	}
	fmt.Printf("end_session: %v\n", out.EndSession)
}

func parseSlots(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	slots := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			fatal("invalid slot pair: " + pair)
		}
		slots[k] = v
	}
	return slots
}

func fatal(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(1)
}
