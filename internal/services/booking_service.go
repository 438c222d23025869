package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/payOSHQ/payos-lib-golang"

	"retreatly/internal/models/db_models"
	"retreatly/internal/models/request_models"
	"retreatly/internal/models/response_models"
	"retreatly/internal/repositories"
	"retreatly/pkg/utils"
)

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string // secret used to sign webhooks
	ReturnURL    string
	CancelURL    string
	ProviderName string // "payos" (stored on Transaction.Provider)
}

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, userId uuid.UUID, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	ListBookings(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]response_models.BookingResponse, error)
	CancelBooking(ctx context.Context, userId uuid.UUID, bookingId string) error
	CreateCheckout(ctx context.Context, userId uuid.UUID, bookingId string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	retreatRepo repositories.RetreatRepository
	accountRepo repositories.AccountRepository
	mail        IMailService
	cfg         PayOSConfig
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	retreatRepo repositories.RetreatRepository,
	accountRepo repositories.AccountRepository,
	mail IMailService,
	cfg PayOSConfig,
) BookingServiceInterface {
	return &bookingService{
		bookingRepo: bookingRepo,
		retreatRepo: retreatRepo,
		accountRepo: accountRepo,
		mail:        mail,
		cfg:         cfg,
	}
}

func (b *bookingService) CreateBooking(ctx context.Context, userId uuid.UUID, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	retreat, err := b.retreatRepo.GetByID(ctx, request.RetreatID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if retreat == nil || !retreat.IsPublished {
		return nil, utils.ErrRetreatNotFound
	}

	guests := request.Guests
	if guests < 1 {
		guests = 1
	}

	confirmed, err := b.retreatRepo.CountConfirmedGuests(ctx, retreat.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if int(confirmed)+guests > retreat.Capacity {
		return nil, utils.ErrRetreatFull
	}

	booking := &db_models.Booking{
		RetreatID: retreat.ID,
		UserID:    userId,
		Guests:    guests,
		Status:    db_models.BookingStatusPending,
		Notes:     request.Notes,
	}

	if err := b.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toBookingResponse(*booking, retreat.Title)
	return &resp, nil
}

func (b *bookingService) ListBookings(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]response_models.BookingResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	bookings, err := b.bookingRepo.ListByUserId(ctx, userId.String(), page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		title := ""
		if booking.Retreat != nil {
			title = booking.Retreat.Title
		}
		responses = append(responses, toBookingResponse(booking, title))
	}
	return responses, nil
}

func (b *bookingService) CancelBooking(ctx context.Context, userId uuid.UUID, bookingId string) error {
	booking, err := b.bookingRepo.GetByID(ctx, bookingId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil || booking.UserID != userId {
		return utils.ErrBookingNotFound
	}
	if booking.Status == db_models.BookingStatusCancelled {
		return nil
	}

	if err := b.bookingRepo.UpdateStatus(ctx, bookingId, db_models.BookingStatusCancelled); err != nil {
		return utils.ErrDatabaseError
	}

	b.sendCancellationMail(ctx, booking)
	return nil
}

func (b *bookingService) sendCancellationMail(ctx context.Context, booking *db_models.Booking) {
	account, err := b.accountRepo.FindById(ctx, booking.UserID.String())
	if err != nil || account == nil || booking.Retreat == nil {
		return
	}

	subject := fmt.Sprintf("Booking cancelled: %s", booking.Retreat.Title)
	body := fmt.Sprintf("Your booking for %s has been cancelled. If this wasn't you, please get in touch.", booking.Retreat.Title)
	if err := b.mail.SendMailToNotifyUser(account.Email, subject, body, "", ""); err != nil {
		log.Printf("booking cancellation mail for %s: %v", booking.ID, err)
	}
}

// CreateCheckout creates a pending transaction and a payOS payment link for
// the booking. The booking stays pending until the webhook confirms payment.
func (b *bookingService) CreateCheckout(ctx context.Context, userId uuid.UUID, bookingId string) (*response_models.CreateCheckoutResponse, error) {
	booking, err := b.bookingRepo.GetByID(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil || booking.UserID != userId {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Retreat == nil {
		return nil, utils.ErrRetreatNotFound
	}

	amount := booking.Retreat.PriceMinor * int64(booking.Guests)
	if amount <= 0 {
		return nil, utils.ErrInvalidInput
	}

	// payOS expects an int64 order code; unix seconds plus a short random
	// suffix keeps it unique enough and within 13 digits.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	txn := &db_models.Transaction{
		AccountID:     userId,
		BookingID:     booking.ID,
		AmountMinor:   amount,
		Currency:      strings.ToUpper(booking.Retreat.Currency),
		Status:        db_models.TxnStatusPending,
		Provider:      b.cfg.ProviderName,
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}

	if err := b.bookingRepo.InsertTransaction(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := payos.Key(b.cfg.ClientID, b.cfg.ApiKey, b.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(amount),
		Items: []payos.Item{{
			Name:     booking.Retreat.Title,
			Price:    int(booking.Retreat.PriceMinor),
			Quantity: booking.Guests,
		}},
		Description: fmt.Sprintf("Retreat booking %s", booking.ID),
		CancelUrl:   b.cfg.CancelURL,
		ReturnUrl:   b.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = b.bookingRepo.UpdateTransactionStatus(ctx, txn.ID.String(), db_models.TxnStatusFailed)
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	// Snapshot the provider payload for traceability.
	meta := map[string]any{
		"payos_link": resp,
		"booking_id": booking.ID,
	}
	if bytes, _ := json.Marshal(meta); bytes != nil {
		_ = b.bookingRepo.UpdateTransactionMetadata(ctx, txn.ID.String(), bytes)
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amount,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: b.cfg.ProviderName,
	}, nil
}

func (b *bookingService) HandleWebhook(c *gin.Context) {
	if err := payos.Key(os.Getenv("PAYOS_CLIENT_ID"),
		os.Getenv("PAYOS_API_KEY"),
		os.Getenv("CHECK_SUM_KEY")); err != nil {
		log.Printf("payos key init: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment provider unavailable"})
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("webhook verification failed: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	// payOS sends a test event with this order code when the webhook URL is
	// registered; just acknowledge it.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"message": "webhook confirmed"})
		return
	}

	providerTxn := fmt.Sprintf("payos:%d", data.OrderCode)

	ctx := c.Request.Context()
	txn, err := b.bookingRepo.FindTransactionByProviderTxnID(ctx, providerTxn)
	if err != nil || txn == nil {
		// Ack 200 on unknown orders to avoid a retry storm, but log it.
		log.Printf("webhook: transaction not found for order %d", data.OrderCode)
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
		return
	}

	// Idempotency: a paid transaction is never touched again.
	if txn.Status != db_models.TxnStatusPaid {
		if err := b.bookingRepo.MarkTransactionPaid(ctx, txn, time.Now().Unix()); err != nil {
			log.Printf("webhook: failed to mark order %d paid: %v", data.OrderCode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
		b.sendConfirmationMail(ctx, txn)
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func (b *bookingService) sendConfirmationMail(ctx context.Context, txn *db_models.Transaction) {
	account, err := b.accountRepo.FindById(ctx, txn.AccountID.String())
	if err != nil || account == nil {
		return
	}
	booking, err := b.bookingRepo.GetByID(ctx, txn.BookingID.String())
	if err != nil || booking == nil || booking.Retreat == nil {
		return
	}

	if err := b.mail.SendBookingConfirmation(account.Email, booking.Retreat.Title, utils.FormatDisplayDatePT(utils.FromUnixSecondsPT(booking.Retreat.StartDate))); err != nil {
		log.Printf("booking confirmation mail for %s: %v", booking.ID, err)
	}
}

func toBookingResponse(booking db_models.Booking, retreatTitle string) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:           booking.ID.String(),
		RetreatID:    booking.RetreatID.String(),
		RetreatTitle: retreatTitle,
		Guests:       booking.Guests,
		Status:       booking.Status,
		CreatedAt:    utils.FormatRFC3339PT(utils.FromUnixSecondsPT(booking.CreatedAt)),
	}
}

func NewPayOSConfigFromEnv() (PayOSConfig, error) {
	cfg := PayOSConfig{
		ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:       os.Getenv("PAYOS_API_KEY"),
		ChecksumKey:  os.Getenv("CHECK_SUM_KEY"),
		ReturnURL:    os.Getenv("PAYOS_RETURN_URL"),
		CancelURL:    os.Getenv("PAYOS_CANCEL_URL"),
		ProviderName: "payos",
	}
	if cfg.ClientID == "" || cfg.ApiKey == "" || cfg.ChecksumKey == "" {
		return PayOSConfig{}, fmt.Errorf("missing payOS credentials")
	}
	return cfg, nil
}
