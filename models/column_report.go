package models

import (
	"fmt"
	"io"

	"gorm.io/gorm"
)

/*
Column Mismatch Report Usage:

Compares the columns that exist in the SQLite file against the fields declared
on the Go models. Useful after hand-editing portfolio.db.

1. Set the environment variable: GENERATE_COLUMN_REPORT=true
2. Run the application: go run .

Example output:
=== COLUMN MISMATCH REPORT ===
--- Table: projects ---
All columns are accounted for in the model.

--- Table: testimonials ---
Found 1 columns not accounted for in model:
  - featured

=== SUMMARY ===
Total mismatched columns across all tables: 1
*/

// TableReport holds the column differences for one table.
type TableReport struct {
	Table string
	// Missing is set when the table does not exist yet.
	Missing bool
	// UnmappedColumns exist in the database but not on the model.
	UnmappedColumns []string
	// MissingColumns exist on the model but not in the database.
	MissingColumns []string
}

func (r TableReport) Mismatches() int {
	return len(r.UnmappedColumns) + len(r.MissingColumns)
}

// ColumnMismatchReport inspects every model in All against the live schema.
func ColumnMismatchReport(db *gorm.DB) ([]TableReport, error) {
	var reports []TableReport

	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("error parsing model %T: %w", model, err)
		}

		report := TableReport{Table: stmt.Schema.Table}

		if !db.Migrator().HasTable(model) {
			report.Missing = true
			reports = append(reports, report)
			continue
		}

		dbColumns, err := getTableColumns(db, model)
		if err != nil {
			return nil, fmt.Errorf("error getting columns for table %s: %w", report.Table, err)
		}

		modelFields := stmt.Schema.DBNames
		report.UnmappedColumns = findColumnMismatches(dbColumns, modelFields)
		report.MissingColumns = findColumnMismatches(modelFields, dbColumns)
		reports = append(reports, report)
	}

	return reports, nil
}

// PrintColumnMismatchReport writes reports in a human readable form.
func PrintColumnMismatchReport(w io.Writer, reports []TableReport) {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	totalMismatches := 0
	for _, report := range reports {
		fmt.Fprintf(w, "--- Table: %s ---\n", report.Table)

		if report.Missing {
			fmt.Fprintln(w, "Table does not exist yet (will be created on startup)")
			fmt.Fprintln(w)
			continue
		}

		if report.Mismatches() == 0 {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
			fmt.Fprintln(w)
			continue
		}

		if len(report.UnmappedColumns) > 0 {
			fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(report.UnmappedColumns))
			for _, col := range report.UnmappedColumns {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
		if len(report.MissingColumns) > 0 {
			fmt.Fprintf(w, "Found %d model fields without a column:\n", len(report.MissingColumns))
			for _, col := range report.MissingColumns {
				fmt.Fprintf(w, "  - %s\n", col)
			}
		}
		totalMismatches += report.Mismatches()
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "=== SUMMARY ===")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", totalMismatches)
}

// getTableColumns retrieves column names from a database table
func getTableColumns(db *gorm.DB, model any) ([]string, error) {
	columnTypes, err := db.Migrator().ColumnTypes(model)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

// findColumnMismatches returns the entries of have that are absent from want
func findColumnMismatches(have, want []string) []string {
	wantSet := make(map[string]bool, len(want))
	for _, field := range want {
		wantSet[field] = true
	}

	var mismatches []string
	for _, col := range have {
		if !wantSet[col] {
			mismatches = append(mismatches, col)
		}
	}

	return mismatches
}
