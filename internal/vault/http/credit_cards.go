package http

import (
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

type CreditCardsHandler struct {
	crud[domain.CreditCard, domain.CreditCardPatch, vaultsdk.CreateCreditCardRequest, vaultsdk.UpdateCreditCardRequest, vaultsdk.CreditCard]
}

func newCreditCardsHandler(svc *service.CreditCardsService, errs errorWriter) *CreditCardsHandler {
	h := &CreditCardsHandler{}
	h.svc = svc
	h.errs = errs
	h.deleted = "Credit card deleted successfully"
	h.view = creditCardView
	h.secret = func(c *domain.CreditCard) any {
		return vaultsdk.CreditCardSecret{CardID: c.ID, CardNumber: c.CardNumberEncrypted, CVV: c.CVVEncrypted}
	}
	h.fromCreate = func(req vaultsdk.CreateCreditCardRequest) (domain.CreditCard, error) {
		exp, err := parseDate("expiration_date", req.ExpirationDate)
		if err != nil {
			return domain.CreditCard{}, err
		}
		return domain.CreditCard{
			UserID:              req.UserID,
			CardHolderName:      req.CardHolderName,
			CardNumberEncrypted: req.CardNumber,
			ExpirationDate:      exp,
			CVVEncrypted:        req.CVV,
			BillingAddress:      req.BillingAddress,
			CardType:            domain.CardType(req.CardType),
		}, nil
	}
	h.fromUpdate = func(req vaultsdk.UpdateCreditCardRequest) (domain.CreditCardPatch, error) {
		exp, err := parseDate("expiration_date", req.ExpirationDate)
		if err != nil {
			return domain.CreditCardPatch{}, err
		}
		p := domain.CreditCardPatch{
			UserID:              req.UserID,
			CardHolderName:      req.CardHolderName,
			CardNumberEncrypted: req.CardNumber,
			ExpirationDate:      exp,
			CVVEncrypted:        req.CVV,
			BillingAddress:      req.BillingAddress,
		}
		if req.CardType != nil {
			ct := domain.CardType(*req.CardType)
			p.CardType = &ct
		}
		return p, nil
	}
	return h
}

// creditCardView leaves out the card number and CVV.
func creditCardView(c *domain.CreditCard) vaultsdk.CreditCard {
	return vaultsdk.CreditCard{
		CardID:         c.ID,
		UserID:         c.UserID,
		CardHolderName: c.CardHolderName,
		ExpirationDate: formatDate(c.ExpirationDate),
		BillingAddress: c.BillingAddress,
		CardType:       string(c.CardType),
		CreatedAt:      c.CreatedAt,
	}
}

// List godoc
//
//	@Summary		List credit cards
//	@Description	Card numbers and CVVs are never included.
//	@Tags			CreditCards
//	@Produce		json
//	@Success		200	{array}		vaultsdk.CreditCard
//	@Failure		500	{object}	vaultsdk.ErrorResponse	"Database error"
//	@Router			/credit_cards [get].
func (h *CreditCardsHandler) List(w http.ResponseWriter, r *http.Request) { h.list(w, r) }

// Get godoc
//
//	@Summary	Get a credit card
//	@Tags		CreditCards
//	@Produce	json
//	@Param		id	path		int	true	"Card ID"
//	@Success	200	{object}	vaultsdk.CreditCard
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Credit card not found"
//	@Router		/credit_cards/{id} [get].
func (h *CreditCardsHandler) Get(w http.ResponseWriter, r *http.Request) { h.get(w, r) }

// Create godoc
//
//	@Summary		Create a credit card
//	@Description	card_type defaults to Credit. The response omits the card number and CVV.
//	@Tags			CreditCards
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateCreditCardRequest	true	"New card"
//	@Success		201		{object}	vaultsdk.CreditCard
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failure"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"User not found"
//	@Router			/credit_cards [post].
func (h *CreditCardsHandler) Create(w http.ResponseWriter, r *http.Request) { h.create(w, r) }

// Update godoc
//
//	@Summary		Update a credit card
//	@Description	Only supplied fields change. A new user_id must name an existing user.
//	@Tags			CreditCards
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Card ID"
//	@Param			request	body		vaultsdk.UpdateCreditCardRequest	true	"Fields to change"
//	@Success		200		{object}	vaultsdk.CreditCard
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failure or no fields to update"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"Credit card or user not found"
//	@Router			/credit_cards/{id} [put].
func (h *CreditCardsHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r) }

// Delete godoc
//
//	@Summary	Delete a credit card
//	@Tags		CreditCards
//	@Produce	json
//	@Param		id	path		int	true	"Card ID"
//	@Success	200	{object}	vaultsdk.MessageResponse
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Credit card not found"
//	@Router		/credit_cards/{id} [delete].
func (h *CreditCardsHandler) Delete(w http.ResponseWriter, r *http.Request) { h.remove(w, r) }

// Secret godoc
//
//	@Summary	Reveal a card number and CVV
//	@Tags		CreditCards
//	@Produce	json
//	@Param		id	path		int	true	"Card ID"
//	@Success	200	{object}	vaultsdk.CreditCardSecret
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Credit card not found"
//	@Failure	429	{object}	vaultsdk.ErrorResponse	"Rate limit exceeded"
//	@Router		/credit_cards/{id}/secret [get].
func (h *CreditCardsHandler) Secret(w http.ResponseWriter, r *http.Request) { h.reveal(w, r) }
