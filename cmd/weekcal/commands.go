package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/weekcal/internal/api"
	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/internal/daemon"
	"github.com/username/weekcal/pkg/dateutil"
	"github.com/username/weekcal/pkg/weekcal"
	"go.uber.org/zap"
)

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [YYYY-MM-DD]",
		Short: "Show the calendar date of a Gregorian date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := a.calendar()
			if err != nil {
				return err
			}

			e := dateutil.Today(time.Local)
			if len(args) == 1 {
				if e, err = dateutil.ParseDate(args[0]); err != nil {
					return err
				}
			}
			return a.printDay(cmd.OutOrStdout(), cal.DayInfo(e))
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date YEAR WEEK|MONTH DAY",
		Short: "Show the Gregorian date of a calendar date",
		Long: "Show the Gregorian date of a calendar date. Week calendars take the week and the day of week,\n" +
			"month calendars the month and the day of month.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			d, err := parseDate(cal.Kind(), args)
			if err != nil {
				return err
			}
			e, err := cal.EpochDay(d)
			if err != nil {
				return err
			}
			return a.printDay(cmd.OutOrStdout(), cal.DayInfo(e))
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info YEAR",
		Short: "Summarize a calendar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			year, err := parseInt("YEAR", args[0])
			if err != nil {
				return err
			}

			info := cal.YearInfo(year)
			return a.printer().print(cmd.OutOrStdout(), info, func(w io.Writer) {
				fmt.Fprintf(w, "%d (%s): %s..%s, %d days", info.Year, info.Calendar, info.First, info.Last, info.Days)
				if info.Weeks > 0 {
					fmt.Fprintf(w, ", %d weeks", info.Weeks)
				}
				if info.Long {
					fmt.Fprint(w, ", long")
				}
				if info.GregorianFrom == info.GregorianTo {
					fmt.Fprintf(w, ", Gregorian %d\n", info.GregorianFrom)
				} else {
					fmt.Fprintf(w, ", Gregorian %d-%d\n", info.GregorianFrom, info.GregorianTo)
				}
			})
		},
	}
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range UNIT YEAR [N]",
		Short: "Show the Gregorian days of a year, quarter, month or week",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			unit, err := weekcal.ParseUnit(args[0])
			if err != nil {
				return err
			}
			year, err := parseInt("YEAR", args[1])
			if err != nil {
				return err
			}
			var n int
			if len(args) == 3 {
				if n, err = parseInt("N", args[2]); err != nil {
					return err
				}
			} else if unit != weekcal.Years {
				return fmt.Errorf("N is required for %s", unit)
			}

			info, err := calendar.DescribeRange(cal, unit, year, n)
			if err != nil {
				return err
			}
			return a.printer().print(cmd.OutOrStdout(), info, func(w io.Writer) {
				fmt.Fprintf(w, "%s..%s (%d days)\n", info.First, info.Last, info.Days)
			})
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var unitName string
	var n int
	var coerce bool

	cmd := &cobra.Command{
		Use:   "add YEAR WEEK|MONTH DAY",
		Short: "Add years, quarters, months, weeks or days to a calendar date",
		Example: "  weekcal add 2020 53 7 --unit months -n 1 --coerce\n" +
			"  weekcal add 2021 1 1 --unit weeks -n -1",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			d, err := parseDate(cal.Kind(), args)
			if err != nil {
				return err
			}
			unit, err := weekcal.ParseUnit(unitName)
			if err != nil {
				return err
			}

			res, err := calendar.Add(cal, d, unit, n, coerce)
			if err != nil {
				return err
			}
			return a.printer().print(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "%s %+d %s = %s (%s)\n", res.From.Label, res.N, res.Unit, res.To.Label, res.To.Gregorian)
			})
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "days", "Unit: years, quarters, months, weeks or days")
	cmd.Flags().IntVarP(&n, "count", "n", 1, "Number of units to add, negative to subtract")
	cmd.Flags().BoolVar(&coerce, "coerce", false, "Clamp a week or day of month that does not exist in the target")

	return cmd
}

// calendarList wraps the list output so TOML has a top-level table
type calendarList struct {
	Calendars []calendar.Summary `json:"calendars" yaml:"calendars" toml:"calendars"`
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list calendarList
			for _, c := range a.registry.List() {
				list.Calendars = append(list.Calendars, calendar.Summarize(c, a.registry.Default()))
			}
			return a.printer().print(cmd.OutOrStdout(), list, func(w io.Writer) {
				for _, s := range list.Calendars {
					mark := " "
					if s.Default {
						mark = "*"
					}
					fmt.Fprintf(w, "%s %-12s %s\n", mark, s.Name, s.Config)
				}
			})
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			router := api.NewRouter(api.NewHandlers(a.registry, a.logger), a.logger)

			a.logger.Info("Starting HTTP API",
				zap.String("addr", addr),
				zap.String("default_calendar", a.registry.Default()))
			return daemon.NewDaemon(addr, router, a.logger).Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr from config)")

	return cmd
}

func (a *app) printer() *printer {
	p, _ := newPrinter(a.output)
	return p
}

func (a *app) printDay(w io.Writer, info calendar.DayInfo) error {
	return a.printer().print(w, info, func(w io.Writer) {
		fmt.Fprintf(w, "%s = %s (%s)\n", info.Gregorian, info.Label, info.Calendar)
		fmt.Fprintf(w, "  quarter %d, month %d, day of month %d\n", info.Quarter, info.Month, info.DayOfMonth)
		fmt.Fprintf(w, "  day of year %d, weekday %d\n", info.DayOfYear, info.DayOfWeek)
	})
}

// parseDate reads YEAR WEEK DAY or YEAR MONTH DAY, depending on kind
func parseDate(kind calendar.Kind, args []string) (calendar.Date, error) {
	var nums [3]int
	for i, name := range []string{"YEAR", "WEEK|MONTH", "DAY"} {
		v, err := parseInt(name, args[i])
		if err != nil {
			return calendar.Date{}, err
		}
		nums[i] = v
	}
	if kind == calendar.KindWeek {
		return calendar.Date{Year: nums[0], Week: nums[1], Day: nums[2]}, nil
	}
	return calendar.Date{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got '%s'", name, s)
	}
	return v, nil
}
