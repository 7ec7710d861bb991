package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler streams a user's records as a spreadsheet. Exports
// always read the full unfiltered list of the requested kind; the
// on-screen filter never leaks into the file.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func labelHeader(kind analytics.Kind) string {
	if kind == analytics.KindIncome {
		return "Source"
	}
	return "Category"
}

func exportFilename(kind analytics.Kind, ext string) string {
	prefix := "Expense_List"
	if kind == analytics.KindIncome {
		prefix = "Income_List"
	}
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}

// exportRow is one spreadsheet line: sequence number, icon, label,
// amount, formatted date.
func exportRow(seq int, r *analytics.Record) []interface{} {
	return []interface{}{seq, r.Icon, r.Label, r.Amount, r.Date}
}

// XLSX writes the records of one kind as an Excel workbook.
func (h *ExportHandler) XLSX(kind analytics.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		records, err := loadRecords(h.DB, user.ID, kind)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}

		f := excelize.NewFile()
		sheetName := "Incomes"
		if kind == analytics.KindExpense {
			sheetName = "Expenses"
		}
		index, err := f.NewSheet(sheetName)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headers := []string{"S_No", "Icon", labelHeader(kind), "Amount", "Date"}
		for i, head := range headers {
			cell := fmt.Sprintf("%c1", 'A'+i)
			f.SetCellValue(sheetName, cell, head)
		}

		for idx := range records {
			row := idx + 2
			for col, v := range exportRow(idx+1, &records[idx]) {
				cell := fmt.Sprintf("%c%d", 'A'+col, row)
				f.SetCellValue(sheetName, cell, v)
			}
		}

		f.SetColWidth(sheetName, "A", "A", 8)
		f.SetColWidth(sheetName, "B", "B", 8)
		f.SetColWidth(sheetName, "C", "C", 20)
		f.SetColWidth(sheetName, "D", "D", 12)
		f.SetColWidth(sheetName, "E", "E", 14)

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(kind, "xlsx")))

		if err := f.Write(c.Writer); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
		}
	}
}

// CSV writes the records of one kind as CSV.
func (h *ExportHandler) CSV(kind analytics.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		records, err := loadRecords(h.DB, user.ID, kind)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load records")
			return
		}

		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(kind, "csv")))

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		// UTF-8 BOM so Excel renders emoji icons correctly
		c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

		writer.Write([]string{"S_No", "Icon", labelHeader(kind), "Amount", "Date"})
		for i := range records {
			r := &records[i]
			writer.Write([]string{
				strconv.Itoa(i + 1),
				r.Icon,
				r.Label,
				strconv.FormatFloat(r.Amount, 'f', -1, 64),
				r.Date,
			})
		}
	}
}
