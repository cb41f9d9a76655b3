package ticketart

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

type Config struct {
	Secret string `mapstructure:"secret"`
}

// Generator renders ticket artifacts: a PDF carrying the purchase
// details and a QR code whose payload any check-in scanner can verify
// against the shared secret.
type Generator struct {
	secret []byte
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{secret: []byte(cfg.Secret)}
}

// VerificationPayload returns transactionID|email|issuedAt|signature.
// The signature covers everything before it, so tampering with any
// field invalidates the token.
func (g *Generator) VerificationPayload(transactionID int64, email string, issuedAt time.Time) string {
	data := fmt.Sprintf("%d|%s|%d", transactionID, email, issuedAt.Unix())
	return fmt.Sprintf("%s|%s", data, g.sign(data))
}

// Verify checks a scanned payload and returns the transaction ID and
// buyer email it encodes. The signature sits after the last separator
// and the two outer fields are numeric, so an email containing the
// separator still parses.
func (g *Generator) Verify(payload string) (int64, string, error) {
	sigIdx := strings.LastIndex(payload, "|")
	if sigIdx < 0 {
		return 0, "", errors.New("malformed verification payload")
	}

	data := payload[:sigIdx]
	idIdx := strings.Index(data, "|")
	tsIdx := strings.LastIndex(data, "|")
	if idIdx < 0 || idIdx == tsIdx {
		return 0, "", errors.New("malformed verification payload")
	}

	if !hmac.Equal([]byte(g.sign(data)), []byte(payload[sigIdx+1:])) {
		return 0, "", errors.New("verification payload signature mismatch")
	}

	transactionID, err := strconv.ParseInt(data[:idIdx], 10, 64)
	if err != nil {
		return 0, "", errors.New("malformed verification payload")
	}
	if _, err := strconv.ParseInt(data[tsIdx+1:], 10, 64); err != nil {
		return 0, "", errors.New("malformed verification payload")
	}

	return transactionID, data[idIdx+1 : tsIdx], nil
}

func (g *Generator) GenerateTicket(eventName, buyerName string, finalAmount int64, payload string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Your Event Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, fmt.Sprintf(
		"Name: %s\nEvent: %s\nPaid: %d\nIssued: %s",
		buyerName,
		eventName,
		finalAmount,
		time.Now().Format("02 Jan 2006 15:04"),
	), "", "L", false)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 60, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Show this ticket at entry. Scanners validate the QR payload.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) sign(data string) string {
	h := hmac.New(sha256.New, g.secret)
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
