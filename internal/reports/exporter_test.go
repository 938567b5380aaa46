package reports

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/sharath018/seva-booking-backend/internal/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixedExporter() *reportExporter {
	return &reportExporter{now: func() time.Time { return time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC) }}
}

func sampleRows() []SankalpaRow {
	return []SankalpaRow{{
		Reference:    "SB-1A2B3C4D",
		DevoteeName:  "Ramesh Kumar",
		Gothram:      "Kashyapa",
		Rashi:        "Mesha",
		Nakshatra:    "Ashwini",
		SevaTitle:    "Rudra Abhisheka",
		BookingDate:  time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		Count:        2,
		ContactName:  "Ramesh Kumar",
		ContactPhone: "9876543210",
		Status:       booking.StatusConfirmed,
	}}
}

func TestExportSankalpaCSV(t *testing.T) {
	out, err := fixedExporter().ExportSankalpa(FormatCSV, sampleRows())
	require.NoError(t, err)
	assert.Equal(t, "sankalpa_list_20250410_080000.csv", out.Filename)
	assert.Equal(t, "text/csv", out.MimeType)

	records, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, sankalpaHeaders, records[0])
	assert.Equal(t, []string{"12-04-2025", "Rudra Abhisheka", "Ramesh Kumar", "Kashyapa", "Mesha", "Ashwini", "2", "Ramesh Kumar", "9876543210", "SB-1A2B3C4D"}, records[1])
}

func TestExportSankalpaExcel(t *testing.T) {
	out, err := fixedExporter().ExportSankalpa(FormatExcel, sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out.Data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Sankalpa", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", v)
	v, err = f.GetCellValue("Sankalpa", "G2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestExportSankalpaPDFAndUnknownFormat(t *testing.T) {
	out, err := fixedExporter().ExportSankalpa(FormatPDF, sampleRows())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF")))

	_, err = fixedExporter().ExportSankalpa("docx", sampleRows())
	assert.Error(t, err)
}

func TestExportReceipt(t *testing.T) {
	v := &booking.BookingView{
		Booking: booking.Booking{
			ID:          1,
			Reference:   "SB-1A2B3C4D",
			DevoteeName: "Ramesh Kumar",
			GuestPhone:  "9876543210",
			BookingDate: time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
			Count:       1,
			TotalAmount: 350,
			Status:      booking.StatusConfirmed,
		},
		Seva: &booking.SevaSummary{ID: 1, TitleEn: "Rudra Abhisheka"},
	}

	out, err := fixedExporter().ExportReceipt("Shree Kshetra Ramtirtha", v)
	require.NoError(t, err)
	assert.Equal(t, "receipt_SB-1A2B3C4D.pdf", out.Filename)
	assert.Equal(t, "application/pdf", out.MimeType)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF")))
}

func TestPDFFontFallsBackToArial(t *testing.T) {
	pdf, family := fixedExporter().newPDF("P", "A5")
	assert.Equal(t, "Arial", family)
	assert.NoError(t, pdf.Error())

	missing := &reportExporter{now: time.Now, fontPath: filepath.Join(t.TempDir(), "NotoSansKannada-Regular.ttf")}
	pdf, family = missing.newPDF("L", "A4")
	assert.Equal(t, "Arial", family)
	assert.NoError(t, pdf.Error())

	out, err := missing.ExportSankalpa(FormatPDF, sampleRows())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Data, []byte("%PDF")))
}
