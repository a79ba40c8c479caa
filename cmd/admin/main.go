package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pqrchat/backend/internal/models"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command>")
		fmt.Println("Commands: report, export, faq")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "report":
		if err := report(db); err != nil {
			log.Fatalf("Error building report: %v", err)
		}
	case "export":
		if err := exportCSV(db, os.Stdout); err != nil {
			log.Fatalf("Error exporting submissions: %v", err)
		}
	case "faq":
		if err := listFAQ(db); err != nil {
			log.Fatalf("Error listing FAQ entries: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

type countRow struct {
	Key   string
	Total int64
}

// report prints submission volumes grouped by type, by department, and by day.
func report(db *gorm.DB) error {
	printGroup := func(title, column string) error {
		var rows []countRow
		err := db.Model(&models.Submission{}).
			Select(column + " as key, count(*) as total").
			Group(column).
			Order("total desc").
			Scan(&rows).Error
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", title)
		for _, r := range rows {
			fmt.Printf("  %-20s %d\n", r.Key, r.Total)
		}
		fmt.Println()
		return nil
	}

	if err := printGroup("Submissions by type:", "tipo"); err != nil {
		return err
	}
	if err := printGroup("Submissions by department:", "departamento"); err != nil {
		return err
	}

	var daily []countRow
	err := db.Model(&models.Submission{}).
		Select("to_char(created_at, 'YYYY-MM-DD') as key, count(*) as total").
		Group("key").
		Order("key").
		Scan(&daily).Error
	if err != nil {
		return err
	}
	fmt.Println("Daily volume:")
	for _, r := range daily {
		fmt.Printf("  %s %d\n", r.Key, r.Total)
	}
	return nil
}

// exportCSV dumps all submissions in creation order.
func exportCSV(db *gorm.DB, out *os.File) error {
	var subs []models.Submission
	if err := db.Order("created_at asc").Find(&subs).Error; err != nil {
		return err
	}

	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"radicado", "fecha", "tipo", "nombre", "documento", "email",
		"telefono", "departamento", "municipio", "canal", "descripcion", "autorizo",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range subs {
		row := []string{
			s.RadicadoID, s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Tipo, s.Nombre, s.Documento, s.Email, s.Telefono,
			s.Departamento, s.Municipio, s.Canal, s.Descripcion, s.Autorizo,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// listFAQ prints the audited FAQ corpus.
func listFAQ(db *gorm.DB) error {
	var entries []models.FAQEntry
	if err := db.Order("id asc").Find(&entries).Error; err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("Q: %s\nA: %s\n", e.Question, e.Answer)
		if len(e.Keywords) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(e.Keywords, ", "))
		}
		fmt.Println()
	}
	return nil
}
