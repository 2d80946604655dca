package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/order-desk/internal/entities"
	"github.com/SergeyBogomolovv/order-desk/internal/postal"
	"github.com/SergeyBogomolovv/order-desk/internal/service"
	"github.com/SergeyBogomolovv/order-desk/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type DraftService interface {
	CreateDraft(ctx context.Context) (service.View, error)
	GetDraft(ctx context.Context, draftID string) (service.View, error)
	Products(ctx context.Context, draftID, query string) ([]entities.Product, error)
	SetCustomer(ctx context.Context, draftID, name string) (service.View, error)
	SetAddress(ctx context.Context, draftID string, addr entities.Address) (service.View, error)
	LookupPostalCode(ctx context.Context, draftID, code string) (service.View, error)
	SetPayment(ctx context.Context, draftID string, method entities.PaymentMethod) (service.View, error)
	AddLine(ctx context.Context, draftID, productID string) (service.View, error)
	RemoveLine(ctx context.Context, draftID, lineID string) (service.View, error)
	MoveLineUp(ctx context.Context, draftID, lineID string) (service.View, error)
	MoveLineDown(ctx context.Context, draftID, lineID string) (service.View, error)
	SetLineQuantity(ctx context.Context, draftID, lineID string, quantity int) (service.View, error)
	SetLinePrice(ctx context.Context, draftID, lineID, price string) (service.View, error)
	SelectLineProduct(ctx context.Context, draftID, lineID, productID string) (service.View, error)
	SearchForLine(ctx context.Context, draftID, lineID, query string) (service.View, error)
	SearchProducts(ctx context.Context, query string) []entities.Product
	Preview(ctx context.Context, draftID string) (string, error)
	Send(ctx context.Context, draftID string) (service.SendResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      DraftService
}

func NewHTTPHandler(logger *slog.Logger, svc DraftService) *HTTPHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validate,
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/products", h.SearchProducts)

	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", h.CreateDraft)

		r.Route("/{draftID}", func(r chi.Router) {
			r.Get("/", h.GetDraft)
			r.Get("/products", h.DraftProducts)
			r.Put("/customer", h.SetCustomer)
			r.Put("/address", h.SetAddress)
			r.Post("/address/lookup", h.LookupPostalCode)
			r.Put("/payment", h.SetPayment)
			r.Get("/preview", h.Preview)
			r.Post("/send", h.Send)

			r.Post("/lines", h.AddLine)
			r.Route("/lines/{lineID}", func(r chi.Router) {
				r.Delete("/", h.RemoveLine)
				r.Post("/up", h.MoveLineUp)
				r.Post("/down", h.MoveLineDown)
				r.Put("/quantity", h.SetLineQuantity)
				r.Put("/price", h.SetLinePrice)
				r.Put("/product", h.SelectLineProduct)
				r.Put("/search", h.SearchForLine)
			})
		})
	})
}

// SearchProducts queries the remote catalog, bypassing any draft.
// @Summary      Search the catalog
// @Tags         products
// @Param        search  query  string  false  "Name fragment"
// @Success      200  {array}   Product
// @Router       /products [get]
func (h *HTTPHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products := h.svc.SearchProducts(r.Context(), r.URL.Query().Get("search"))
	utils.WriteJSON(w, ProductsToJSON(products), http.StatusOK)
}

// CreateDraft opens a session with a fresh catalog snapshot.
// @Summary      Create a draft
// @Tags         drafts
// @Success      201  {object}  Draft
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /drafts [post]
func (h *HTTPHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.CreateDraft(r.Context())
	h.writeView(w, r, view, err, http.StatusCreated)
}

// GetDraft returns the draft with its gate and message preview.
// @Summary      Get a draft
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Router       /drafts/{draftID} [get]
func (h *HTTPHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetDraft(r.Context(), chi.URLParam(r, "draftID"))
	h.writeView(w, r, view, err, http.StatusOK)
}

// DraftProducts lists the draft's catalog snapshot, optionally filtered by name or code.
// @Summary      List draft products
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Param        search   query  string  false  "Name or code fragment"
// @Success      200  {array}   Product
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /drafts/{draftID}/products [get]
func (h *HTTPHandler) DraftProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Products(r.Context(), chi.URLParam(r, "draftID"), r.URL.Query().Get("search"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, ProductsToJSON(products), http.StatusOK)
}

// SetCustomer sets the customer name.
// @Summary      Set customer
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Param        body     body  customerRequest  true  "Customer"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Router       /drafts/{draftID}/customer [put]
func (h *HTTPHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SetCustomer(r.Context(), chi.URLParam(r, "draftID"), req.Name)
	h.writeView(w, r, view, err, http.StatusOK)
}

// SetAddress replaces the delivery address.
// @Summary      Set address
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Param        body     body  addressRequest  true  "Address"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Router       /drafts/{draftID}/address [put]
func (h *HTTPHandler) SetAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SetAddress(r.Context(), chi.URLParam(r, "draftID"), AddressJSONToEntity(req))
	h.writeView(w, r, view, err, http.StatusOK)
}

// LookupPostalCode fills the address from a CEP, keeping number and complement.
// @Summary      Look up a CEP
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Param        body     body  postalLookupRequest  true  "CEP"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Failure      422  {object}  utils.ErrorResponse "Invalid or unknown CEP"
// @Router       /drafts/{draftID}/address/lookup [post]
func (h *HTTPHandler) LookupPostalCode(w http.ResponseWriter, r *http.Request) {
	var req postalLookupRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.LookupPostalCode(r.Context(), chi.URLParam(r, "draftID"), req.PostalCode)
	h.writeView(w, r, view, err, http.StatusOK)
}

// SetPayment sets the payment method.
// @Summary      Set payment method
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Param        body     body  paymentRequest  true  "Payment method"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Router       /drafts/{draftID}/payment [put]
func (h *HTTPHandler) SetPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SetPayment(r.Context(), chi.URLParam(r, "draftID"), entities.PaymentMethod(req.Method))
	h.writeView(w, r, view, err, http.StatusOK)
}

// AddLine appends an order line. The body is optional; without a product the line is empty.
// @Summary      Add an order line
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        body     body  addLineRequest  false  "Product"
// @Success      201  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft or product not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /drafts/{draftID}/lines [post]
func (h *HTTPHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req addLineRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	view, err := h.svc.AddLine(r.Context(), chi.URLParam(r, "draftID"), req.ProductID)
	h.writeView(w, r, view, err, http.StatusCreated)
}

// RemoveLine deletes an order line and cancels its pending search.
// @Summary      Remove an order line
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse "Draft or line not found"
// @Router       /drafts/{draftID}/lines/{lineID} [delete]
func (h *HTTPHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.RemoveLine(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"))
	h.writeView(w, r, view, err, http.StatusOK)
}

// @Summary      Move a line up
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse "Draft or line not found"
// @Router       /drafts/{draftID}/lines/{lineID}/up [post]
func (h *HTTPHandler) MoveLineUp(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.MoveLineUp(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"))
	h.writeView(w, r, view, err, http.StatusOK)
}

// @Summary      Move a line down
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse "Draft or line not found"
// @Router       /drafts/{draftID}/lines/{lineID}/down [post]
func (h *HTTPHandler) MoveLineDown(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.MoveLineDown(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"))
	h.writeView(w, r, view, err, http.StatusOK)
}

// SetLineQuantity sets a line quantity, which must be at least 1.
// @Summary      Set line quantity
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Param        body     body  quantityRequest  true  "Quantity"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft or line not found"
// @Router       /drafts/{draftID}/lines/{lineID}/quantity [put]
func (h *HTTPHandler) SetLineQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SetLineQuantity(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"), req.Quantity)
	h.writeView(w, r, view, err, http.StatusOK)
}

// SetLinePrice stores the unit price text as typed.
// @Summary      Set line price
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Param        body     body  priceRequest  true  "Price"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft or line not found"
// @Router       /drafts/{draftID}/lines/{lineID}/price [put]
func (h *HTTPHandler) SetLinePrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SetLinePrice(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"), req.Price)
	h.writeView(w, r, view, err, http.StatusOK)
}

// SelectLineProduct binds a product to the line and resolves its minimum price.
// @Summary      Select line product
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Param        body     body  productRequest  true  "Product"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft, line or product not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /drafts/{draftID}/lines/{lineID}/product [put]
func (h *HTTPHandler) SelectLineProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SelectLineProduct(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"), req.ProductID)
	h.writeView(w, r, view, err, http.StatusOK)
}

// SearchForLine schedules a debounced suggestion search for the line.
// @Summary      Search products for a line
// @Tags         lines
// @Param        draftID  path  string  true  "Draft ID"
// @Param        lineID   path  string  true  "Order line ID"
// @Param        body     body  searchRequest  true  "Query"
// @Success      202  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Draft or line not found"
// @Router       /drafts/{draftID}/lines/{lineID}/search [put]
func (h *HTTPHandler) SearchForLine(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SearchForLine(r.Context(), chi.URLParam(r, "draftID"), chi.URLParam(r, "lineID"), req.Query)
	h.writeView(w, r, view, err, http.StatusAccepted)
}

// Preview renders the WhatsApp message.
// @Summary      Preview the order message
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Produce      plain
// @Success      200  {string}  string
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Router       /drafts/{draftID}/preview [get]
func (h *HTTPHandler) Preview(w http.ResponseWriter, r *http.Request) {
	msg, err := h.svc.Preview(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteText(w, msg, http.StatusOK)
}

// Send submits the order to intake and returns the WhatsApp handoff link.
// A failed submission still returns the link with submitted set to false.
// @Summary      Send the order
// @Tags         drafts
// @Param        draftID  path  string  true  "Draft ID"
// @Success      200  {object}  SendResponse
// @Failure      404  {object}  utils.ErrorResponse "Draft not found"
// @Failure      409  {object}  utils.ErrorResponse "A line is below its minimum price"
// @Router       /drafts/{draftID}/send [post]
func (h *HTTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Send(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, SendResponse{Message: res.Message, URL: res.URL, Submitted: res.Submitted}, http.StatusOK)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := utils.DecodeBody(r, req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) writeView(w http.ResponseWriter, r *http.Request, view service.View, err error, code int) {
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, ViewToJSON(view), code)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var blocked *service.BlockedError

	switch {
	case errors.As(err, &blocked):
		utils.WriteReason(w, "submission blocked", blocked.Gate.Reason(), http.StatusConflict)
	case errors.Is(err, entities.ErrDraftNotFound):
		utils.WriteError(w, "draft not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineNotFound):
		utils.WriteError(w, "order line not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidQuantity), errors.Is(err, entities.ErrInvalidPayment):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, postal.ErrInvalidCode):
		utils.WriteReason(w, "invalid postal code", "CEP inválido", http.StatusUnprocessableEntity)
	case errors.Is(err, postal.ErrNotFound):
		utils.WriteReason(w, "postal code not found", "CEP não encontrado", http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
