// Command gcal-auth authorizes an OAuth desktop client against Google
// Calendar and writes the resulting token for the announcer to reuse.
//
// Usage:
//
//	go run ./cmd/gcal-auth -credentials google-credentials.json -out token.json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop client credentials file")
	outPath := flag.String("out", "token.json", "where to write the token")
	flag.Parse()

	if err := run(context.Background(), *credsPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "gcal-auth:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, credsPath, outPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	conf, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		return fmt.Errorf("parse credentials (expected an OAuth desktop client): %w", err)
	}

	fmt.Println("Open this URL, sign in with the calendar owner account and approve access:")
	fmt.Println()
	fmt.Println(conf.AuthCodeURL("event-announcer", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("Paste the authorization code: ")

	code, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(outPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Token saved to %s. Set google_calendar.credentials_path and restart the bot.\n", outPath)
	return nil
}
