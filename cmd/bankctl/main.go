// bankctl is a command-line client for the corporate banking API. It keeps a
// local session under the state directory and enforces the same navigation
// rules the web frontend does.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/corebank/banking-system/internal/client/api"
	"github.com/corebank/banking-system/internal/client/gateway"
	"github.com/corebank/banking-system/internal/client/nav"
	"github.com/corebank/banking-system/internal/client/session"
	"github.com/corebank/banking-system/pkg/logger"
)

var serverBaseURL = "http://localhost:8080"

func main() {
	cmd := flag.String("cmd", "", "Command: login|logout|whoami|open|register|user-status|client-create|client-show|request-create|review")
	serverFlag := flag.String("server", "", "Override server base URL")
	stateDir := flag.String("state", "", "State directory (default ~/.bankctl)")

	username := flag.String("username", "", "Username (login/register)")
	password := flag.String("password", "", "Password (login/register)")
	email := flag.String("email", "", "Email (register)")
	role := flag.String("role", "", "Role: ADMIN|RM|ANALYST (register)")
	path := flag.String("path", "", "Path to open (open)")
	id := flag.String("id", "", "Resource ID")
	active := flag.Bool("active", true, "Desired account status (user-status)")
	payloadFile := flag.String("payload", "", "JSON payload file (client-create/request-create)")
	status := flag.String("status", "", "Review decision: Pending|Approved|Rejected (review)")
	remarks := flag.String("remarks", "", "Review remarks (review)")
	flag.Parse()

	if env := os.Getenv("BANKCTL_SERVER"); env != "" {
		serverBaseURL = strings.TrimRight(env, "/")
	}
	if *serverFlag != "" {
		serverBaseURL = strings.TrimRight(*serverFlag, "/")
	}

	log := logger.Init(logger.Options{Level: os.Getenv("BANKCTL_LOG"), Pretty: true, Output: os.Stderr})

	dir := *stateDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fail(err)
		}
		dir = filepath.Join(home, ".bankctl")
	}

	storage, err := session.NewFileStorage(dir)
	if err != nil {
		fail(err)
	}
	store := session.NewStore(storage)
	if err := store.Restore(); err != nil {
		fail(err)
	}

	gw := gateway.New(serverBaseURL, store, log)
	apiClient := api.New(serverBaseURL, gw.HTTPClient())
	shell := nav.NewShell("Corporate Banking", store, gw)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app := &cli{store: store, gw: gw, api: apiClient, shell: shell}

	switch *cmd {
	case "login":
		err = app.login(ctx, *username, *password)
	case "logout":
		err = app.logout()
	case "whoami":
		err = app.whoami()
	case "open":
		err = app.open(*path)
	case "register":
		err = app.register(ctx, *username, *email, *password, *role)
	case "user-status":
		err = app.userStatus(ctx, *id, *active)
	case "client-create":
		err = app.clientCreate(ctx, *payloadFile)
	case "client-show":
		err = app.clientShow(ctx, *id)
	case "request-create":
		err = app.requestCreate(ctx, *payloadFile)
	case "review":
		err = app.review(ctx, *id, *status, *remarks)
	default:
		fmt.Fprintln(os.Stderr, "Unknown command, see -h")
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

type cli struct {
	store *session.Store
	gw    *gateway.Gateway
	api   *api.Client
	shell *nav.Shell
}

func (c *cli) login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("-username and -password are required")
	}
	if err := c.gw.Login(ctx, username, password); err != nil {
		return err
	}
	c.shell.Render(os.Stdout)
	fmt.Println("Home:", c.shell.HomePath())
	return nil
}

func (c *cli) logout() error {
	next := c.shell.Logout()
	fmt.Println("Signed out. Navigate to:", next)
	return nil
}

func (c *cli) whoami() error {
	sess := c.store.Current()
	if sess == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	return printJSON(sess.Identity)
}

func (c *cli) open(path string) error {
	if path == "" {
		return fmt.Errorf("-path is required")
	}
	resolver := nav.NewResolver(c.store)
	decision := resolver.Resolve(path)
	switch {
	case decision.NotFound:
		fmt.Println("404:", path)
	case decision.RedirectTo != "":
		fmt.Println("Redirect:", decision.RedirectTo)
	default:
		c.shell.Render(os.Stdout)
		fmt.Println("Open:", path)
	}
	return nil
}

func (c *cli) register(ctx context.Context, username, email, password, role string) error {
	user, err := c.api.RegisterUser(ctx, api.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (c *cli) userStatus(ctx context.Context, id string, active bool) error {
	if id == "" {
		return fmt.Errorf("-id is required")
	}
	user, err := c.api.SetUserStatus(ctx, id, active)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (c *cli) clientCreate(ctx context.Context, payloadFile string) error {
	var input api.ClientInput
	if err := readPayload(payloadFile, &input); err != nil {
		return err
	}
	created, err := c.api.CreateClient(ctx, input)
	if err != nil {
		return err
	}
	return printJSON(created)
}

func (c *cli) clientShow(ctx context.Context, id string) error {
	if id == "" {
		clients, err := c.api.ListClients(ctx)
		if err != nil {
			return err
		}
		return printJSON(clients)
	}
	client, err := c.api.GetClient(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(client)
}

func (c *cli) requestCreate(ctx context.Context, payloadFile string) error {
	var input api.CreditRequestInput
	if err := readPayload(payloadFile, &input); err != nil {
		return err
	}
	created, err := c.api.CreateCreditRequest(ctx, input)
	if err != nil {
		return err
	}
	return printJSON(created)
}

func (c *cli) review(ctx context.Context, id, status, remarks string) error {
	if id == "" {
		return fmt.Errorf("-id is required")
	}
	input := api.ReviewInput{Status: status}
	if remarks != "" {
		input.Remarks = &remarks
	}
	updated, err := c.api.ReviewCreditRequest(ctx, id, input)
	if err != nil {
		return err
	}
	return printJSON(updated)
}

func readPayload(path string, out interface{}) error {
	if path == "" {
		return fmt.Errorf("-payload is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func printJSON(v interface{}) error {
	enc, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(enc))
	return nil
}
