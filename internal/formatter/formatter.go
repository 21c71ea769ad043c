// package formatter renders entities for CLI output (CSV, plain text) and writes backup files
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/gymtrack/internal/models"
	"github.com/desertthunder/gymtrack/internal/shared"
)

// BackupFilename returns the canonical backup file name for the given export
// date: gym-tracker-backup-<YYYY-MM-DD>.json
func BackupFilename(exportDate time.Time) string {
	return fmt.Sprintf("gym-tracker-backup-%s.json", exportDate.Format("2006-01-02"))
}

// WriteBackupFile writes the document to dir as pretty-printed UTF-8 JSON
// under its canonical name and returns the full path.
func WriteBackupFile(doc *models.BackupDocument, dir string) (string, error) {
	data, err := shared.MarshalJSON(doc, true)
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup document: %w", err)
	}

	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("%w: failed to create backup directory: %v", shared.ErrIO, err)
		}
	}

	path := filepath.Join(dir, BackupFilename(doc.ExportDate))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: failed to write backup file: %v", shared.ErrIO, err)
	}

	return path, nil
}

// CustomersToCSV converts customers to CSV with columns: ID, Name, Email, Phone, Deactivated, CreatedAt
func CustomersToCSV(customers []models.Customer) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Email", "Phone", "Deactivated", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, customer := range customers {
		record := []string{
			customer.ID,
			customer.Name,
			customer.Email,
			customer.Phone,
			strconv.FormatBool(customer.Deactivated),
			customer.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// MachinesToCSV converts machines to CSV with columns: ID, Name, Type, CreatedAt
func MachinesToCSV(machines []models.Machine) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Type", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, machine := range machines {
		record := []string{
			machine.ID,
			machine.Name,
			machine.Type,
			machine.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// HistoryToCSV converts a workout history projection to CSV with columns:
// Date, Customer, Machine, Series, Notes
func HistoryToCSV(history []models.WorkoutWithDetails) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Date", "Customer", "Machine", "Series", "Notes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range history {
		record := []string{
			entry.Date.Format("2006-01-02"),
			entry.CustomerName,
			entry.MachineName,
			FormatSeries(entry.Series),
			entry.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// CustomersToText converts customers to a plain text listing.
func CustomersToText(customers []models.Customer) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Customers: %d\n\n", len(customers)))
	for i, customer := range customers {
		line := fmt.Sprintf("%d. %s", i+1, customer.Name)
		if customer.Deactivated {
			line += " (deactivated)"
		}
		if customer.Email != "" {
			line += fmt.Sprintf(" <%s>", customer.Email)
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes()
}

// HistoryToText converts a workout history projection to a plain text listing.
func HistoryToText(history []models.WorkoutWithDetails) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Workouts: %d\n\n", len(history)))
	for i, entry := range history {
		buf.WriteString(fmt.Sprintf("%d. %s  %s  %s\n", i+1, entry.Date.Format("2006-01-02"), entry.MachineName, FormatSeries(entry.Series)))
		if entry.Notes != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", entry.Notes))
		}
	}

	return buf.Bytes()
}

// FormatSeries renders a series list as "3x10@50 2x8@60".
func FormatSeries(series []models.Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, fmt.Sprintf("%dx%d@%s", s.Sets, s.Reps, strconv.FormatFloat(s.Weight, 'f', -1, 64)))
	}
	return strings.Join(parts, " ")
}
