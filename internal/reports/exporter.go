package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/xuri/excelize/v2"
	"github.com/yeqown/go-qrcode"
)

// ReportExporter renders report data into downloadable files.
type ReportExporter interface {
	ExportSankalpa(format string, rows []SankalpaRow) (*Export, error)
	ExportReceipt(templeName string, v *booking.BookingView) (*Export, error)
}

type reportExporter struct {
	now      func() time.Time
	fontPath string
}

// NewReportExporter renders PDFs with the UTF-8 TrueType font at fontPath so
// Kannada names print. With no path, or one that fails to load, the core
// Arial font is used and only Latin-1 text renders.
func NewReportExporter(fontPath string) ReportExporter {
	return &reportExporter{now: time.Now, fontPath: fontPath}
}

const unicodeFamily = "seva-unicode"

// newPDF returns a document and the font family to draw text with.
func (e *reportExporter) newPDF(orientation, size string) (*gofpdf.Fpdf, string) {
	pdf := gofpdf.New(orientation, "mm", size, "")
	if e.fontPath == "" {
		return pdf, "Arial"
	}

	pdf.AddUTF8Font(unicodeFamily, "", e.fontPath)
	pdf.AddUTF8Font(unicodeFamily, "B", e.fontPath)
	if err := pdf.Error(); err != nil {
		log.Printf("⚠️ PDF font %s not loaded, using Arial: %v", e.fontPath, err)
		pdf.ClearError()
		return pdf, "Arial"
	}
	return pdf, unicodeFamily
}

var sankalpaHeaders = []string{"Date", "Seva", "Devotee", "Gothram", "Rashi", "Nakshatra", "Count", "Contact", "Phone", "Reference"}

func sankalpaRecord(r SankalpaRow) []string {
	return []string{
		r.BookingDate.Format("02-01-2006"),
		r.SevaTitle,
		r.DevoteeName,
		r.Gothram,
		r.Rashi,
		r.Nakshatra,
		strconv.Itoa(r.Count),
		r.ContactName,
		r.ContactPhone,
		r.Reference,
	}
}

//// ============================
/// SANKALPA LIST EXPORTS
//// ============================

// ExportSankalpa chooses the export format for the sankalpa list.
func (e *reportExporter) ExportSankalpa(format string, rows []SankalpaRow) (*Export, error) {
	timestamp := e.now().Format("20060102_150405")

	switch format {
	case FormatExcel:
		data, err := e.sankalpaExcel(rows)
		if err != nil {
			return nil, err
		}
		return &Export{data, fmt.Sprintf("sankalpa_list_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}, nil

	case FormatCSV:
		data, err := e.sankalpaCSV(rows)
		if err != nil {
			return nil, err
		}
		return &Export{data, fmt.Sprintf("sankalpa_list_%s.csv", timestamp), "text/csv"}, nil

	case FormatPDF:
		data, err := e.sankalpaPDF(rows)
		if err != nil {
			return nil, err
		}
		return &Export{data, fmt.Sprintf("sankalpa_list_%s.pdf", timestamp), "application/pdf"}, nil

	default:
		return nil, fmt.Errorf("unsupported format for sankalpa list: %s", format)
	}
}

func (e *reportExporter) sankalpaCSV(rows []SankalpaRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(sankalpaHeaders); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := writer.Write(sankalpaRecord(r)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) sankalpaExcel(rows []SankalpaRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sankalpa"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range sankalpaHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range rows {
		for j, v := range sankalpaRecord(r) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if j == 6 {
				f.SetCellValue(sheetName, cell, r.Count)
				continue
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) sankalpaPDF(rows []SankalpaRow) ([]byte, error) {
	pdf, font := e.newPDF("L", "A4")
	pdf.AddPage()
	pdf.SetFont(font, "B", 16)
	pdf.Cell(0, 10, "Sankalpa List")
	pdf.Ln(8)
	pdf.SetFont(font, "", 9)
	pdf.Cell(0, 6, "Generated "+e.now().Format("02 Jan 2006 15:04"))
	pdf.Ln(10)

	widths := []float64{22, 40, 40, 30, 22, 25, 12, 30, 25, 25}

	pdf.SetFont(font, "B", 9)
	for i, header := range sankalpaHeaders {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(font, "", 8)
	for _, r := range rows {
		for i, v := range sankalpaRecord(r) {
			align := "L"
			if i == 0 || i == 6 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, v, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// BOOKING RECEIPT
//// ============================

// ExportReceipt renders a one-page receipt with a QR code of the booking
// reference.
func (e *reportExporter) ExportReceipt(templeName string, v *booking.BookingView) (*Export, error) {
	qrPath, err := writeQRCode(v.Reference)
	if err != nil {
		return nil, err
	}
	defer os.Remove(qrPath)

	pdf, font := e.newPDF("P", "A5")
	pdf.AddPage()

	pdf.SetFont(font, "B", 16)
	pdf.CellFormat(0, 10, templeName, "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.CellFormat(0, 7, "Seva Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	lines := [][2]string{
		{"Reference", v.Reference},
		{"Seva", v.SevaTitle()},
		{"Seva date", v.BookingDate.Format("02 Jan 2006")},
		{"Devotee", v.DevoteeName},
		{"Gothram", v.Gothram},
		{"Rashi", v.Rashi},
		{"Nakshatra", v.Nakshatra},
		{"Persons", strconv.Itoa(v.Count)},
		{"Amount", fmt.Sprintf("%.2f", v.TotalAmount)},
		{"Status", v.Status},
		{"Contact", v.GuestName},
		{"Phone", v.GuestPhone},
	}
	for _, l := range lines {
		pdf.SetFont(font, "B", 10)
		pdf.CellFormat(35, 7, l[0], "", 0, "L", false, 0, "")
		pdf.SetFont(font, "", 10)
		pdf.CellFormat(0, 7, l[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.ImageOptions(qrPath, 54, pdf.GetY(), 40, 40, false, gofpdf.ImageOptions{ImageType: "JPG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &Export{buf.Bytes(), fmt.Sprintf("receipt_%s.pdf", v.Reference), "application/pdf"}, nil
}

func writeQRCode(text string) (string, error) {
	qrc, err := qrcode.New(text)
	if err != nil {
		return "", err
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("receipt_qr_%s_%d.jpeg", text, time.Now().UnixNano()))
	if err := qrc.Save(path); err != nil {
		return "", fmt.Errorf("could not save qrcode to file [%s]: %w", path, err)
	}
	return path, nil
}
