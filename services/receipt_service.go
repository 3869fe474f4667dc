package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/visheshkakadiya/hotel-management/configs"
	"github.com/visheshkakadiya/hotel-management/models"
	"github.com/visheshkakadiya/hotel-management/notifications"
	"gorm.io/gorm"
)

// GenerateBookingReceipt renders a PDF receipt for a confirmed or
// completed booking, uploads it to Cloudinary and stores the URL on the
// booking. Repeat calls return the stored URL without regenerating.
func GenerateBookingReceipt(db *gorm.DB, bookingID, userID uuid.UUID) (string, error) {
	var booking models.Booking
	if err := db.Preload("Room").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBookingNotFound
		}
		return "", fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.UserID != userID {
		return "", ErrNotBookingOwner
	}
	if !IsActiveBookingStatus(booking.Status) {
		return "", ErrBookingNotActive
	}

	if booking.ReceiptURL != nil && *booking.ReceiptURL != "" {
		return *booking.ReceiptURL, nil
	}

	htmlContent, err := generateReceiptHTML(&booking)
	if err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}

	pdfBytes, err := generatePDFFromHTML(htmlContent)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt PDF: %w", err)
	}

	receiptURL, err := uploadReceiptPDF(pdfBytes, booking.ID.String())
	if err != nil {
		return "", fmt.Errorf("failed to upload receipt: %w", err)
	}

	if err := db.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("receipt_url", receiptURL).Error; err != nil {
		return "", fmt.Errorf("failed to save receipt url: %w", err)
	}

	go notifications.SendEmail(
		booking.User.FullName,
		booking.User.Email,
		"Your Booking Receipt",
		fmt.Sprintf("<h1>Booking Receipt</h1><p>Thank you for staying with us. Your receipt for room %s is ready.</p><p><a href='%s'>Download Receipt</a></p>",
			booking.Room.RoomNo, receiptURL),
	)

	log.Printf("✅ Generated receipt for booking %s", booking.ID)
	return receiptURL, nil
}

func generateReceiptHTML(booking *models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	nights := NightsBetween(booking.CheckInDate, booking.CheckOutDate)
	roomRate := float64(nights) * booking.Room.Price

	data := struct {
		GuestName    string
		RoomNo       string
		RoomType     string
		CheckInDate  string
		CheckOutDate string
		Nights       int
		Guests       int
		RoomRate     string
		Tax          string
		TotalPrice   string
		IssuedOn     string
	}{
		GuestName:    booking.User.FullName,
		RoomNo:       booking.Room.RoomNo,
		RoomType:     booking.Room.RoomType,
		CheckInDate:  booking.CheckInDate.Format("January 2, 2006"),
		CheckOutDate: booking.CheckOutDate.Format("January 2, 2006"),
		Nights:       nights,
		Guests:       booking.Guests,
		RoomRate:     fmt.Sprintf("%.2f", roomRate),
		Tax:          fmt.Sprintf("%.2f", roomRate*TaxRate),
		TotalPrice:   fmt.Sprintf("%.2f", booking.TotalPrice),
		IssuedOn:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptPDF(fileBytes []byte, bookingID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", bookingID, uuid.New().String()),
		Folder:       imageFolder,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
