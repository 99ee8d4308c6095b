package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

type AttendanceEntry struct {
	UserName    string
	WorkDay     string
	ClockIn     string
	ClockOut    string
	Punctuality string
	TotalHours  string
}

type EmployeeEntry struct {
	ID       int
	Username string
	Email    string
	FullName string
	Role     string
	Position string
}

// BuildAttendanceReport writes the monthly attendance rows into a workbook
// and returns its path.
func BuildAttendanceReport(entries []AttendanceEntry, year int, month int) (string, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee", "Date", "Clock In", "Clock Out", "Punctuality", "Total Hours"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range entries {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.UserName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.WorkDay)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.ClockIn)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.ClockOut)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.Punctuality)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.TotalHours)
		rowNum++
	}

	fileName, err := exportPath(fmt.Sprintf("attendance-%d-%02d", year, month))
	if err != nil {
		return "", err
	}

	if err := f.SaveAs(fileName); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return fileName, nil
}

// BuildEmployeeExport writes the employee list into a workbook and returns
// its path.
func BuildEmployeeExport(entries []EmployeeEntry) (string, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Username", "Email", "Full Name", "Role", "Position"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range entries {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.Username)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Email)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.Role)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.Position)
		rowNum++
	}

	fileName, err := exportPath("employees")
	if err != nil {
		return "", err
	}

	if err := f.SaveAs(fileName); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return fileName, nil
}

func exportPath(prefix string) (string, error) {
	dir := filepath.Join(baseDir, "exports")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format("20060102-150405"))), nil
}
