package housecall

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// GetBookingWindows fetches the CRM's bookable windows starting at the
// given date, spanning showForDays days.
func (c *Client) GetBookingWindows(ctx context.Context, startDate time.Time, showForDays int) ([]domain.TimeWindow, error) {
	q := url.Values{}
	q.Set("start_date", startDate.Format(domain.DateFormat))
	q.Set("show_for_days", fmt.Sprint(showForDays))

	var out bookingWindowsWire
	if err := c.do(ctx, http.MethodGet, "/company/schedule_availability/booking_windows", q, nil, &out); err != nil {
		return nil, err
	}

	windows := make([]domain.TimeWindow, 0, len(out.BookingWindows))
	for _, w := range out.BookingWindows {
		windows = append(windows, domain.TimeWindow{
			Start:     w.StartTime,
			End:       w.EndTime,
			Available: w.Available,
		})
	}
	return windows, nil
}

// GetEmployees lists dispatchable technicians.
func (c *Client) GetEmployees(ctx context.Context) ([]Employee, error) {
	var out employeeListWire
	if err := c.do(ctx, http.MethodGet, "/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Employees, nil
}
