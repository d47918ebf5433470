// Command storefront is a terminal front end for the food ordering API.
// It keeps the guest cart token and admin bearer token in a small state
// file, so carts and sessions survive between invocations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/foodcourt/storefront/internal/infrastructure/config"
	"github.com/foodcourt/storefront/internal/infrastructure/logger"
	"github.com/foodcourt/storefront/storefront/api"
	"github.com/foodcourt/storefront/storefront/cart"
	"github.com/foodcourt/storefront/storefront/checkout"
	"github.com/foodcourt/storefront/storefront/menu"
	"github.com/foodcourt/storefront/storefront/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app bundles the SDK pieces every command needs
type app struct {
	client   *api.Client
	identity *session.Identity
	log      *zap.Logger
}

func run(args []string) error {
	flags := flag.NewFlagSet("storefront", flag.ExitOnError)
	baseURL := flags.String("base-url", "", "API base URL (overrides config)")
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Usage = usage
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		usage()
		return errors.New("a command is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.Client.BaseURL = *baseURL
	}

	log := logger.New(&logger.Config{Level: *logLevel, Format: "console", Output: "stderr"})
	defer func() {
		_ = log.Sync()
	}()

	identity, err := newIdentity(cfg.Client.StateDir)
	if err != nil {
		return err
	}
	a := &app{
		client: api.NewClient(api.Config{
			BaseURL:  cfg.Client.BaseURL,
			Timeout:  cfg.Client.Timeout,
			Identity: identity,
			Logger:   log,
		}),
		identity: identity,
		log:      log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	command, rest := flags.Arg(0), flags.Args()[1:]
	switch command {
	case "menu":
		return a.showMenu(ctx, rest)
	case "cart":
		return a.showCart(ctx)
	case "cart-set":
		return a.setCartItem(ctx, rest)
	case "checkout":
		return a.placeOrder(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "register":
		return a.register(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "dashboard":
		return a.dashboard(ctx)
	case "foods":
		return a.listFoods(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: storefront [flags] <command>

Customer commands:
  menu [-cuisine id]              browse the menu, optionally one cuisine
  cart                            show the guest cart
  cart-set -food id -qty n        set a line's quantity (0 removes it)
  checkout -name s -address s -phone s [-notes s]
                                  place the order in the cart
  login -email s -password s      sign in to the admin console
  register -name s -email s -password s
  logout                          revoke the admin session

Admin commands (require login):
  dashboard                       show store statistics
  foods                           list all foods including inactive ones

Flags:
  -base-url url                   API base URL
  -log-level level                debug, info, warn, error
`)
}

// newIdentity opens the persistent token store, defaulting to the user's
// config directory
func newIdentity(stateDir string) (*session.Identity, error) {
	if stateDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine state directory: %w", err)
		}
		stateDir = filepath.Join(configDir, "storefront")
	}
	store, err := session.NewFileStore(stateDir)
	if err != nil {
		return nil, err
	}
	return session.NewIdentity(store), nil
}

func (a *app) loadMenu(ctx context.Context) (*menu.Projection, error) {
	projection := menu.NewProjection(a.client)
	if err := projection.Load(ctx); err != nil {
		return nil, err
	}
	return projection, nil
}

func (a *app) loadCart(ctx context.Context, projection *menu.Projection) (*cart.Store, error) {
	store := cart.NewStore(a.client, projection, a.identity)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (a *app) showMenu(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("menu", flag.ExitOnError)
	cuisineID := flags.Uint("cuisine", 0, "show only this cuisine")
	if err := flags.Parse(args); err != nil {
		return err
	}

	projection, err := a.loadMenu(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if *cuisineID != 0 {
		foods := projection.FilterByCuisine(cuisineID)
		if len(foods) == 0 {
			fmt.Println("No foods found for that cuisine.")
			return nil
		}
		printFoods(w, foods)
		return nil
	}
	for _, c := range projection.Cuisines() {
		fmt.Fprintf(w, "%s (id %d)\n", c.Name, c.ID)
		printFoods(w, c.Foods)
		fmt.Fprintln(w)
	}
	return nil
}

func printFoods(w *tabwriter.Writer, foods []menu.Food) {
	for _, f := range foods {
		stock := strconv.Itoa(f.Stock)
		if f.Stock == 0 {
			stock = "out of stock"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", f.ID, f.Name, f.SellPrice, stock)
	}
}

func (a *app) showCart(ctx context.Context) error {
	projection, err := a.loadMenu(ctx)
	if err != nil {
		return err
	}
	store, err := a.loadCart(ctx, projection)
	if err != nil {
		return err
	}
	if store.IsEmpty() {
		fmt.Println("Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, line := range store.Lines() {
		fmt.Fprintf(w, "%d\t%s\tx%d\t%s\n",
			line.FoodID, line.FoodName, line.Quantity, line.UnitPrice.String())
	}
	fmt.Fprintf(w, "\tTotal\t\t%s\n", store.TotalString())
	return w.Flush()
}

func (a *app) setCartItem(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("cart-set", flag.ExitOnError)
	foodID := flags.Uint("food", 0, "food id")
	qty := flags.Int("qty", -1, "desired quantity, 0 removes the line")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *foodID == 0 || *qty < 0 {
		return errors.New("cart-set requires -food and a non-negative -qty")
	}

	projection, err := a.loadMenu(ctx)
	if err != nil {
		return err
	}
	store, err := a.loadCart(ctx, projection)
	if err != nil {
		return err
	}

	if err := store.SetQuantity(ctx, *foodID, *qty); err != nil {
		var violation *cart.StockViolation
		if errors.As(err, &violation) {
			return errors.New(violation.Error())
		}
		return err
	}
	fmt.Printf("Cart updated. Total: %s\n", store.TotalString())
	return nil
}

func (a *app) placeOrder(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("checkout", flag.ExitOnError)
	name := flags.String("name", "", "customer name")
	address := flags.String("address", "", "delivery address")
	phone := flags.String("phone", "", "phone number")
	notes := flags.String("notes", "", "order notes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	projection, err := a.loadMenu(ctx)
	if err != nil {
		return err
	}
	store, err := a.loadCart(ctx, projection)
	if err != nil {
		return err
	}

	flow, err := checkout.NewFlow(store, a.client, a.identity)
	if errors.Is(err, checkout.ErrEmptyCart) {
		return errors.New("your cart is empty, add something from the menu first")
	}
	if err != nil {
		return err
	}

	conf, err := flow.PlaceOrder(ctx, checkout.Details{
		CustomerName:    *name,
		DeliveryAddress: *address,
		PhoneNumber:     *phone,
		OrderNotes:      *notes,
	})
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			printFieldErrors(apiErr)
			return errors.New(apiErr.Message)
		}
		return err
	}

	fmt.Printf("Order #%d placed. Total %s, payment on delivery.\n", conf.OrderID, conf.Total)
	return nil
}

func printFieldErrors(apiErr *api.APIError) {
	for field, messages := range apiErr.Errors {
		for _, msg := range messages {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ExitOnError)
	email := flags.String("email", "", "email")
	password := flags.String("password", "", "password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, api.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s. Session valid until %s.\n",
		resp.User.Name, resp.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("register", flag.ExitOnError)
	name := flags.String("name", "", "name")
	email := flags.String("email", "", "email")
	password := flags.String("password", "", "password, at least 8 characters")
	if err := flags.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.Register(ctx, api.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered and signed in as %s.\n", resp.User.Name)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		// the local session is gone either way
		a.log.Warn("server-side logout failed", zap.Error(err))
	}
	fmt.Println("Signed out.")
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	stats, err := a.client.Dashboard(ctx)
	if err != nil {
		return describeAdminError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Foods\t%d (%d active)\n", stats.TotalFoods, stats.ActiveFoods)
	fmt.Fprintf(w, "Cuisines\t%d\n", stats.TotalCuisines)
	fmt.Fprintf(w, "Orders\t%d\n", stats.TotalOrders)
	if len(stats.RecentOrders) > 0 {
		fmt.Fprintln(w, "\nRecent orders:")
		for _, o := range stats.RecentOrders {
			fmt.Fprintf(w, "  #%d\t%s\t%s\t%s\n", o.ID, o.CustomerName, o.TotalAmount, o.Status)
		}
	}
	return w.Flush()
}

func (a *app) listFoods(ctx context.Context) error {
	foods, err := a.client.ListFoods(ctx)
	if err != nil {
		return describeAdminError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, f := range foods {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\tstock %d\t%s\n",
			f.ID, f.Name, f.CuisineName, f.DiscountPrice, f.StockQuantity, f.Status)
	}
	return w.Flush()
}

// describeAdminError turns a 401 into a hint to log in again; the client
// has already dropped the stale token by then
func describeAdminError(err error) error {
	if api.IsUnauthorized(err) {
		return errors.New("your session has expired, run 'storefront login' again")
	}
	return err
}
