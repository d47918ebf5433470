package api

import "time"

// FoodItem is a menu item as served by the API. Price fields arrive as
// quoted decimal strings and stay strings here; the pricing package owns
// their interpretation.
type FoodItem struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	DiscountPrice string `json:"discount_price"`
	VATPercentage string `json:"vat_percentage"`
	StockQuantity int    `json:"stock_quantity"`
	CuisineID     uint   `json:"cuisine_id"`
	CuisineName   string `json:"cuisine_name"`
	Image         string `json:"image"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

// Cuisine is one cuisine group of the public menu
type Cuisine struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Foods []FoodItem `json:"foods"`
}

// CartItem is one server-held cart line
type CartItem struct {
	FoodID    uint   `json:"food_id"`
	FoodName  string `json:"food_name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	ItemTotal string `json:"item_total"`
}

// UpdateCartRequest carries the full desired state of one cart line
type UpdateCartRequest struct {
	FoodID    uint   `json:"food_id"`
	Quantity  int    `json:"quantity"`
	CartToken string `json:"cart_token"`
}

// PlaceOrderItem is one snapshotted line of a checkout submission
type PlaceOrderItem struct {
	FoodID       uint   `json:"food_id"`
	FoodName     string `json:"food_name"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder string `json:"price_at_order"`
	Image        string `json:"image"`
}

// PlaceOrderRequest is the checkout submission payload
type PlaceOrderRequest struct {
	GuestCartToken  string           `json:"guest_cart_token"`
	CustomerName    string           `json:"customer_name"`
	DeliveryAddress string           `json:"delivery_address"`
	PhoneNumber     string           `json:"phone_number"`
	OrderNotes      string           `json:"order_notes"`
	Items           []PlaceOrderItem `json:"items"`
	TotalAmount     string           `json:"total_amount"`
	PaymentMethod   string           `json:"payment_method"`
}

// OrderPlaced confirms a successfully placed order
type OrderPlaced struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
}

// User is the public view of an admin account
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse carries a bearer token and its owner
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// LoginRequest authenticates an admin
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates an admin account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CuisineSummary is a cuisine without its foods
type CuisineSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CreateCuisineRequest creates a cuisine
type CreateCuisineRequest struct {
	Name string `json:"name"`
}

// FoodInput carries admin input for creating or updating a food item.
// Price fields are sent as strings, matching what the server parses.
type FoodInput struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	DiscountPrice string `json:"discount_price"`
	VATPercentage string `json:"vat_percentage"`
	StockQuantity int    `json:"stock_quantity"`
	CuisineID     uint   `json:"cuisine_id"`
	Image         string `json:"image"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

// OrderSummary is one order of the dashboard's recent list
type OrderSummary struct {
	ID              uint   `json:"id"`
	CustomerName    string `json:"customer_name"`
	DeliveryAddress string `json:"delivery_address"`
	PhoneNumber     string `json:"phone_number"`
	TotalAmount     string `json:"total_amount"`
	PaymentMethod   string `json:"payment_method"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// DashboardStats is the admin dashboard summary
type DashboardStats struct {
	TotalFoods    int            `json:"total_foods"`
	ActiveFoods   int            `json:"active_foods"`
	TotalCuisines int            `json:"total_cuisines"`
	TotalOrders   int64          `json:"total_orders"`
	RecentOrders  []OrderSummary `json:"recent_orders"`
}
