// Viewer is a read-only inspection tool for the complaint store. It opens
// the Badger directory alongside a running server (BypassLockGuard) and
// renders the stored complaints as a table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"rail-madad/domain"
)

const complaintPrefix = "complaint:"

func main() {
	dbPath := flag.String("db", "./badger", "Path to badger DB")
	category := flag.String("category", "", "Only show this category")
	flag.Parse()

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Category", "Urgency", "Department", "Status", "Sentiment", "Submitted", "Description"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var total int
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(complaintPrefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// The ID sequence shares the prefix; it is not a record.
			if strings.HasSuffix(string(item.Key()), ":seq") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var complaint domain.Complaint
				if err := json.Unmarshal(v, &complaint); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				if *category != "" && string(complaint.Category) != *category {
					return nil
				}

				total++
				table.Append([]string{
					strconv.FormatUint(complaint.ID, 10),
					string(complaint.Category),
					colorUrgency(complaint.Urgency),
					complaint.Department,
					string(complaint.Status),
					string(complaint.Sentiment),
					complaint.SubmittedAt.Format("02 Jan 15:04"),
					truncate(complaint.Description, 60),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	color.Cyan.Printf("%d complaint(s)\n", total)
}

func colorUrgency(urgency domain.Urgency) string {
	label := urgency.String()
	switch urgency {
	case domain.UrgencyEmergency, domain.UrgencyHigh:
		return color.Red.Sprint(label)
	case domain.UrgencyMedium:
		return color.Yellow.Sprint(label)
	default:
		return color.Green.Sprint(label)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
