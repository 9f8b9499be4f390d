package handler

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	models "github.com/Dawood573189/simple-online-shop/model"
	"github.com/Dawood573189/simple-online-shop/service"
	"github.com/Dawood573189/simple-online-shop/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handler is the HTTP layer that talks to service.ServiceInterface. It
// renders the six menu screens and resolves the per-session cart from a
// cookie before every call into the service.
type Handler struct {
	svc      service.ServiceInterface
	sessions *session.Store
	cookie   string
	log      *logrus.Logger
}

// NewHandler returns a Handler instance
func NewHandler(svc service.ServiceInterface, sessions *session.Store, cookieName string, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, sessions: sessions, cookie: cookieName, log: log}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Products
	r.HandleFunc("/", h.Products).Methods("GET")
	r.HandleFunc("/products", h.Products).Methods("GET")

	// Cart
	r.HandleFunc("/cart/add", h.AddForm).Methods("GET")
	r.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart", h.ViewCart).Methods("GET")
	r.HandleFunc("/cart/remove", h.RemoveForm).Methods("GET")
	r.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")

	// Checkout: GET previews the bill, POST confirms and clears
	r.HandleFunc("/checkout", h.CheckoutForm).Methods("GET")
	r.HandleFunc("/checkout", h.Checkout).Methods("POST")

	// Debug
	r.HandleFunc("/debug/cart", h.DebugCart).Methods("GET")
}

// page is the data handed to every screen template.
type page struct {
	Title    string
	Active   string
	Message  string
	Error    string
	Products []models.Product
	Lines    []service.LineDetail
	Total    int64
}

// --- helpers ---

// cart resolves the session cart from the request cookie, minting a new
// session (and setting the cookie) when none exists.
func (h *Handler) cart(w http.ResponseWriter, r *http.Request) *models.Cart {
	var id string
	if c, err := r.Cookie(h.cookie); err == nil {
		id = c.Value
	}
	newID, cart := h.sessions.GetOrCreate(id)
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
		})
	}
	return cart
}

// cartForm reads product_id and quantity from a posted form. Quantity
// defaults to 1 when omitted.
func cartForm(r *http.Request) (int64, int, error) {
	if err := r.ParseForm(); err != nil {
		return 0, 0, errors.New("invalid form data")
	}
	productID, err := strconv.ParseInt(r.PostFormValue("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return 0, 0, errors.New("product id must be a positive number")
	}
	qty := 1
	if v := r.PostFormValue("quantity"); v != "" {
		qty, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, errors.New("quantity must be a number")
		}
	}
	return productID, qty, nil
}

func (h *Handler) render(w http.ResponseWriter, name string, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.WithError(err).WithField("template", name).Error("render failed")
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// --- screens ---

// Products handles GET / and GET /products
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	h.cart(w, r)
	h.render(w, "products", page{
		Title:    "Available Products",
		Active:   "products",
		Products: h.svc.ListProducts(),
	})
}

// AddForm handles GET /cart/add
func (h *Handler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.cart(w, r)
	h.render(w, "add", page{
		Title:    "Add Product to Cart",
		Active:   "add",
		Products: h.svc.ListProducts(),
	})
}

// AddToCart handles POST /cart/add
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	p := page{Title: "Add Product to Cart", Active: "add", Products: h.svc.ListProducts()}

	productID, qty, err := cartForm(r)
	if err == nil {
		err = h.svc.AddToCart(cart, productID, qty)
	}
	if err != nil {
		p.Error = err.Error()
	} else {
		p.Message = fmt.Sprintf("%d unit(s) of product %d added to cart!", qty, productID)
	}
	h.render(w, "add", p)
}

// ViewCart handles GET /cart
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	h.render(w, "cart", page{
		Title:  "Your Cart",
		Active: "cart",
		Lines:  h.svc.ViewCart(cart),
		Total:  h.svc.CalculateTotal(cart),
	})
}

// RemoveForm handles GET /cart/remove
func (h *Handler) RemoveForm(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	h.render(w, "remove", page{
		Title:  "Remove Item from Cart",
		Active: "remove",
		Lines:  h.svc.ViewCart(cart),
	})
}

// RemoveFromCart handles POST /cart/remove
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	p := page{Title: "Remove Item from Cart", Active: "remove"}

	productID, qty, err := cartForm(r)
	if err == nil {
		err = h.svc.RemoveFromCart(cart, productID, qty)
	}
	if err != nil {
		p.Error = err.Error()
	} else {
		p.Message = fmt.Sprintf("%d unit(s) of product %d removed from cart.", qty, productID)
	}
	p.Lines = h.svc.ViewCart(cart)
	h.render(w, "remove", p)
}

// CheckoutForm handles GET /checkout. It previews the bill without
// touching the cart; clearing only happens on the confirming POST.
func (h *Handler) CheckoutForm(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	h.render(w, "checkout", page{
		Title:  "Checkout",
		Active: "checkout",
		Lines:  h.svc.ViewCart(cart),
		Total:  h.svc.CalculateTotal(cart),
	})
}

// Checkout handles POST /checkout
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	total := h.svc.Checkout(cart)
	h.render(w, "checkout", page{
		Title:   "Checkout",
		Active:  "checkout",
		Message: fmt.Sprintf("Checkout successful! Your final bill is Rs %d. Cart is now empty.", total),
	})
}

// DebugCart handles GET /debug/cart and dumps the raw cart lines as JSON.
func (h *Handler) DebugCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(w, r)
	writeJSON(w, http.StatusOK, cart)
}
