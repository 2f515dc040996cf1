package housecall

import (
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/internal/domain"
)

// CustomerProfile is the payload for creating a CRM customer.
type CustomerProfile struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	MobileNumber  string  `json:"mobile_number"`
	Email         *string `json:"email,omitempty"`
	LeadSource    string  `json:"lead_source,omitempty"`
	Notifications bool    `json:"notifications_enabled"`
}

// AddressInput is the payload for creating a service address.
type AddressInput struct {
	Street  string `json:"street"`
	Street2 string `json:"street_line_2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country,omitempty"`
}

type customerWire struct {
	ID           string        `json:"id"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	MobileNumber string        `json:"mobile_number"`
	HomeNumber   string        `json:"home_number"`
	WorkNumber   string        `json:"work_number"`
	Email        string        `json:"email"`
	Addresses    []addressWire `json:"addresses"`
	CreatedAt    *time.Time    `json:"created_at"`
}

type addressWire struct {
	ID      string `json:"id"`
	Street  string `json:"street"`
	Street2 string `json:"street_line_2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type customerListWire struct {
	Customers []customerWire `json:"customers"`
}

func (w customerWire) toDomain() *domain.Customer {
	c := &domain.Customer{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Phone:     w.MobileNumber,
		HomePhone: w.HomeNumber,
		WorkPhone: w.WorkNumber,
		Email:     w.Email,
		CreatedAt: w.CreatedAt,
	}
	for _, a := range w.Addresses {
		c.Addresses = append(c.Addresses, domain.Address(a))
	}
	return c
}

type bookingWindowWire struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Available bool      `json:"available"`
}

type bookingWindowsWire struct {
	BookingWindows []bookingWindowWire `json:"booking_windows"`
}

// JobSchedule pins a job to a concrete time.
type JobSchedule struct {
	ScheduledStart       time.Time `json:"scheduled_start"`
	ScheduledEnd         time.Time `json:"scheduled_end"`
	ArrivalWindowMinutes int       `json:"arrival_window_in_minutes"`
}

// JobInput is the payload for creating a job.
type JobInput struct {
	CustomerID string       `json:"customer_id"`
	AddressID  string       `json:"address_id"`
	Schedule   *JobSchedule `json:"schedule,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	LeadSource string       `json:"lead_source,omitempty"`
}

// Job is a CRM-owned job record.
type Job struct {
	ID                  string       `json:"id"`
	CustomerID          string       `json:"customer_id"`
	AddressID           string       `json:"address_id"`
	Address             *JobAddress  `json:"address"`
	Schedule            *JobSchedule `json:"schedule"`
	WorkStatus          string       `json:"work_status"`
	AssignedEmployeeIDs []string     `json:"assigned_employee_ids"`
	Tags                []string     `json:"tags"`
}

// JobAddress is the slim address view embedded on a job.
type JobAddress struct {
	ID  string `json:"id"`
	Zip string `json:"zip"`
}

type jobListWire struct {
	Jobs []Job `json:"jobs"`
}

// Appointment narrows a job to a concrete dispatch window.
type Appointment struct {
	ID                    string    `json:"id"`
	JobID                 string    `json:"job_id"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	ArrivalWindowMinutes  int       `json:"arrival_window_in_minutes"`
	DispatchedEmployeeIDs []string  `json:"dispatched_employee_ids"`
}

// Employee is a dispatchable technician.
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type employeeListWire struct {
	Employees []Employee `json:"employees"`
}

// Lead is an out-of-band follow-up request attached to a customer.
type Lead struct {
	ID         string   `json:"id"`
	CustomerID string   `json:"customer_id"`
	Source     string   `json:"source"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
}
