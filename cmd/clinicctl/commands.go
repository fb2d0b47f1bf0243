package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"vet-clinic-ledger/internal/platform/httpclient"
)

const defaultAddr = "http://localhost:8080"

var errUsage = errors.New("usage: clinicctl [-addr URL] <walkin|treat|status|invoices|pay|unpay|total> [flags]")

type command func(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error

var commands = map[string]command{
	"walkin":   walkInCmd,
	"treat":    treatCmd,
	"status":   statusCmd,
	"invoices": invoicesCmd,
	"pay":      payCmd(true),
	"unpay":    payCmd(false),
	"total":    totalCmd,
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("clinicctl", flag.ContinueOnError)
	global.SetOutput(io.Discard)

	addr := global.String("addr", envOr("CLINIC_ADDR", defaultAddr), "API base URL")
	timeout := global.Duration("timeout", httpclient.DefaultTimeout, "request timeout")
	if err := global.Parse(args); err != nil {
		return errUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", rest[0], errUsage)
	}

	c, err := httpclient.New(*addr, *timeout)
	if err != nil {
		return err
	}
	return cmd(ctx, c, rest[1:], out)
}

func walkInCmd(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error {
	fs := newFlagSet("walkin")
	var body struct {
		ClientName string `json:"client_name"`
		Contact    string `json:"contact"`
		Address    string `json:"address"`
		PetName    string `json:"pet_name"`
		Species    string `json:"species"`
		Breed      string `json:"breed"`
		Age        string `json:"age"`
		Reason     string `json:"reason"`
		Date       string `json:"date"`
	}
	fs.StringVar(&body.ClientName, "client", "", "client name (required)")
	fs.StringVar(&body.Contact, "contact", "", "client contact")
	fs.StringVar(&body.Address, "address", "", "client address")
	fs.StringVar(&body.PetName, "pet", "", "pet name (required)")
	fs.StringVar(&body.Species, "species", "", "species")
	fs.StringVar(&body.Breed, "breed", "", "breed")
	fs.StringVar(&body.Age, "age", "", "age in years")
	fs.StringVar(&body.Reason, "reason", "", "reason for the visit")
	fs.StringVar(&body.Date, "date", "", "YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return post(ctx, c, "/walkins", body, out)
}

func treatCmd(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error {
	fs := newFlagSet("treat")
	var body struct {
		Reason        string `json:"reason"`
		Pet           string `json:"pet"`
		Client        string `json:"client"`
		TreatmentType string `json:"treatment_type"`
		Date          string `json:"date"`
		Confined      bool   `json:"confined"`
		Notes         string `json:"notes"`
	}
	fs.StringVar(&body.Reason, "reason", "", "reason (required)")
	fs.StringVar(&body.Pet, "pet", "", "pet name (required)")
	fs.StringVar(&body.Client, "client", "", "client name (required)")
	fs.StringVar(&body.TreatmentType, "type", "", "treatment type, e.g. Checkup (required)")
	fs.StringVar(&body.Date, "date", today(), "YYYY-MM-DD")
	fs.BoolVar(&body.Confined, "confined", false, "pet stays confined")
	fs.StringVar(&body.Notes, "notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return post(ctx, c, "/treatments", body, out)
}

func statusCmd(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error {
	fs := newFlagSet("status")
	var body struct {
		Pet    string `json:"pet"`
		Client string `json:"client"`
		Status string `json:"status"`
		Date   string `json:"date"`
		Notes  string `json:"notes"`
	}
	fs.StringVar(&body.Pet, "pet", "", "pet name (required)")
	fs.StringVar(&body.Client, "client", "", "client name (required)")
	fs.StringVar(&body.Status, "set", "", "new status: Appointment, Confined, Daily Treatment, Discharged")
	fs.StringVar(&body.Date, "date", today(), "YYYY-MM-DD")
	fs.StringVar(&body.Notes, "notes", "", "notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Sin -set solo consulta el estado actual.
	if body.Status == "" {
		var resp any
		q := url.Values{"pet": {body.Pet}, "client": {body.Client}}
		if err := c.Do(ctx, http.MethodGet, "/pet-status/current", q, nil, &resp); err != nil {
			return err
		}
		return printJSON(out, resp)
	}
	return post(ctx, c, "/pet-status", body, out)
}

func invoicesCmd(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error {
	fs := newFlagSet("invoices")
	client := fs.String("client", "", "filter by client name (substring)")
	outstanding := fs.Bool("outstanding", false, "only unpaid invoices")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var resp any
	var err error
	if *outstanding {
		err = c.Do(ctx, http.MethodGet, "/invoices/outstanding", nil, nil, &resp)
	} else {
		var q url.Values
		if *client != "" {
			q = url.Values{"client": {*client}}
		}
		err = c.Do(ctx, http.MethodGet, "/invoices", q, nil, &resp)
	}
	if err != nil {
		return err
	}
	return printJSON(out, resp)
}

func payCmd(paid bool) command {
	action := "unpay"
	if paid {
		action = "pay"
	}
	return func(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error {
		fs := newFlagSet(action)
		id := fs.Int64("id", 0, "invoice id (required)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id <= 0 {
			return fmt.Errorf("%s: -id is required", action)
		}

		var resp any
		path := fmt.Sprintf("/invoices/%d/%s", *id, action)
		if err := c.Do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
			return err
		}
		return printJSON(out, resp)
	}
}

func totalCmd(ctx context.Context, c *httpclient.Client, args []string, out io.Writer) error {
	fs := newFlagSet("total")
	client := fs.String("client", "", "client name, exactly as stored (required)")
	pet := fs.String("pet", "", "pet name, exactly as stored")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := url.Values{"client": {*client}}
	if *pet != "" {
		q.Set("pet", *pet)
	}
	var resp any
	if err := c.Do(ctx, http.MethodGet, "/billing/total", q, nil, &resp); err != nil {
		return err
	}
	return printJSON(out, resp)
}

func post(ctx context.Context, c *httpclient.Client, path string, body any, out io.Writer) error {
	var resp any
	if err := c.Do(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return err
	}
	return printJSON(out, resp)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func today() string {
	return time.Now().Format("2006-01-02")
}
