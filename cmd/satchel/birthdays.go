// Birthdays command lists upcoming congratulation dates.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dovetail-labs/satchel/pkg/types"
)

var birthdaysDays int

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List contacts with birthdays coming up",
	Long: `Birthdays lists every contact whose birthday falls within the given
number of days from today, with the date the congratulation falls on.
A birthday today counts, and so does one exactly the window away.

Example:
  satchel birthdays
  satchel birthdays --days 30`,
	Args: cobra.NoArgs,
	RunE: runBirthdays,
}

func init() {
	birthdaysCmd.Flags().IntVar(&birthdaysDays, "days", 7, "window in days")
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	return withBook(func(book *types.Book) error {
		reminders := book.UpcomingBirthdays(time.Now(), birthdaysDays)

		if flagJSON {
			type reminderRow struct {
				Name               string `json:"name"`
				CongratulationDate string `json:"congratulation_date"`
			}
			rows := make([]reminderRow, len(reminders))
			for i, r := range reminders {
				rows[i] = reminderRow{
					Name:               r.Name,
					CongratulationDate: r.Congratulation.Format(types.BirthdayLayout),
				}
			}
			return printJSON(rows)
		}

		if len(reminders) == 0 {
			fmt.Printf("No upcoming birthdays in %d days.\n", birthdaysDays)
			return nil
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCONGRATULATION DATE")
		fmt.Fprintln(w, "----\t-------------------")
		for _, r := range reminders {
			fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Congratulation.Format(types.BirthdayLayout))
		}
		w.Flush()
		printTrimmed(sb.String())
		return nil
	})
}
