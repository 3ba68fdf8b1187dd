package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	config "github.com/jatinvaland/dwarka-getaways/configs"
	"github.com/jatinvaland/dwarka-getaways/database"
	"github.com/jatinvaland/dwarka-getaways/models"
	"github.com/google/uuid"
)

const invoiceTemplate = `
<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, serif; margin: 40px; color: #222; }
  h1 { color: #8a3324; border-bottom: 2px solid #8a3324; padding-bottom: 8px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  td { padding: 6px 0; }
  td.amount { text-align: right; }
  tr.total td { border-top: 1px solid #222; font-weight: bold; }
  .meta { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
  <h1>Dwarka Getaways — Booking Invoice</h1>
  <p class="meta">Booking {{.BookingID}} · Issued {{.IssuedOn}}</p>
  <p><b>{{.GuestName}}</b><br>{{.HotelName}}<br>{{.CheckIn}} to {{.CheckOut}} · {{.Nights}} night(s) · {{.Rooms}} room(s)</p>
  <table>
    <tr><td>Room charges</td><td class="amount">{{.BasePrice}}</td></tr>
    <tr><td>Hotel discount</td><td class="amount">-{{.DiscountAmount}}</td></tr>
    {{if .CouponCode}}<tr><td>Coupon ({{.CouponCode}})</td><td class="amount">-{{.CouponDiscount}}</td></tr>{{end}}
    <tr><td>GST (12%)</td><td class="amount">{{.Taxes}}</td></tr>
    <tr class="total"><td>Total paid</td><td class="amount">{{.Total}}</td></tr>
  </table>
</body>
</html>
`

type invoiceData struct {
	BookingID      string
	IssuedOn       string
	GuestName      string
	HotelName      string
	CheckIn        string
	CheckOut       string
	Nights         int
	Rooms          int
	BasePrice      string
	DiscountAmount string
	CouponCode     string
	CouponDiscount string
	Taxes          string
	Total          string
}

// GenerateBookingInvoice renders a PDF invoice for a paid booking and writes
// it under INVOICE_DIR. Best-effort: failures are logged, never surfaced to
// the guest.
func GenerateBookingInvoice(bookingID uuid.UUID) {
	var booking models.Booking
	if err := database.DB.
		Preload("Hotel").
		Preload("GuestDetail").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		log.Printf("🔥 Invoice: booking %s not found: %v", bookingID, err)
		return
	}

	htmlContent, err := renderInvoiceHTML(&booking)
	if err != nil {
		log.Printf("🔥 Invoice: failed to render HTML for %s: %v", booking.BookingID, err)
		return
	}

	pdfBytes, err := renderPDFFromHTML(htmlContent)
	if err != nil {
		log.Printf("🔥 Invoice: failed to render PDF for %s: %v", booking.BookingID, err)
		return
	}

	dir := config.ConfigOr("INVOICE_DIR", "invoices")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("🔥 Invoice: failed to create %s: %v", dir, err)
		return
	}
	path := filepath.Join(dir, booking.BookingID+".pdf")
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		log.Printf("🔥 Invoice: failed to write %s: %v", path, err)
		return
	}
	log.Printf("✅ Invoice written for booking %s", booking.BookingID)
}

func renderInvoiceHTML(booking *models.Booking) (string, error) {
	tmpl, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return "", err
	}

	data := invoiceData{
		BookingID:      booking.BookingID,
		IssuedOn:       time.Now().Format("January 2, 2006"),
		GuestName:      booking.GuestDetail.FullName,
		HotelName:      booking.Hotel.Name,
		CheckIn:        booking.CheckIn.Format("02 Jan 2006"),
		CheckOut:       booking.CheckOut.Format("02 Jan 2006"),
		Nights:         booking.Nights,
		Rooms:          booking.NumRooms,
		BasePrice:      fmt.Sprintf("₹%s", booking.BasePrice.StringFixed(2)),
		DiscountAmount: fmt.Sprintf("₹%s", booking.DiscountAmount.StringFixed(2)),
		CouponCode:     booking.CouponCode,
		CouponDiscount: fmt.Sprintf("₹%s", booking.CouponDiscount.StringFixed(2)),
		Taxes:          fmt.Sprintf("₹%s", booking.Taxes.StringFixed(2)),
		Total:          fmt.Sprintf("₹%s", booking.TotalAmount.StringFixed(2)),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func renderPDFFromHTML(htmlContent string) ([]byte, error) {
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
