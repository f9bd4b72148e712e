package dto

import (
	"time"
	distanceModel "wbrent/internal/domains/distance/model"
	quoteModel "wbrent/internal/domains/quote/model"
	resModel "wbrent/internal/domains/reservation/model"
	"wbrent/shared"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	gModel "wbrent/shared/model"
	"wbrent/shared/timezone"
	"wbrent/shared/validator"

	"github.com/google/uuid"
)

const MessageCreated = "Reservation created"

func init() {
	validator.RegisterValidation("reservation_status", resModel.IsValidStatus)
}

type CreateReservationRequest struct {
	ProductID                     string `json:"productId"                     validate:"required,max=100"`
	StartDate                     string `json:"startDate"                     validate:"required,date"`
	EndDate                       string `json:"endDate"                       validate:"required,date"`
	StartTime                     string `json:"startTime"                     validate:"omitempty,clock"`
	EndTime                       string `json:"endTime"                       validate:"omitempty,clock"`
	Delivery                      bool   `json:"delivery"`
	City                          string `json:"city"                          validate:"required_if=Delivery true,max=100"`
	Address                       string `json:"address"                       validate:"max=200"`
	FirstName                     string `json:"firstName"                     validate:"required,max=100"`
	LastName                      string `json:"lastName"                      validate:"required,max=100"`
	Email                         string `json:"email"                         validate:"required,email,max=200"`
	Phone                         string `json:"phone"                         validate:"required,min=7,max=20"`
	Company                       string `json:"company"                       validate:"max=200"`
	Notes                         string `json:"notes"                         validate:"max=2000"`
	TotalPrice                    *int64 `json:"totalPrice"                    validate:"omitempty,gte=0"`
	AcknowledgeUnverifiedDistance bool   `json:"acknowledgeUnverifiedDistance"`
}

func (r *CreateReservationRequest) ToQuoteInput() quoteModel.Input {
	return quoteModel.Input{
		ProductID: r.ProductID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Delivery:  r.Delivery,
	}
}

// ToModel builds a pending reservation priced by quote. Distance fields are
// filled in by the caller.
func (r *CreateReservationRequest) ToModel(quote quoteModel.Quote, user string) resModel.Reservation {
	now := timezone.Now()

	return resModel.Reservation{
		ID:               uuid.NewString(),
		ProductID:        quote.Product.ID,
		ProductName:      quote.Product.Name,
		CategoryID:       quote.Product.CategoryID,
		StartDate:        quote.Range.Start,
		EndDate:          quote.Range.End,
		StartTime:        optional(r.StartTime),
		EndTime:          optional(r.EndTime),
		Delivery:         r.Delivery,
		City:             r.City,
		Address:          r.Address,
		DistanceStatus:   resModel.DistanceNotRequired,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Company:          r.Company,
		Notes:            r.Notes,
		Days:             quote.Days,
		BasePrice:        quote.Breakdown.BasePrice,
		DeliveryFee:      quote.Breakdown.DeliveryFee,
		WeekendPickupFee: quote.Breakdown.WeekendPickupFeeAmount,
		TotalPrice:       quote.Breakdown.Total,
		Status:           resModel.StatusPending,
		Metadata:         gModel.NewMetadata(user, now),
	}
}

type CreateReservationResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,reservation_status"`
}

type ConflictResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

func (r *ConflictResponse) FromModel(conflict resModel.Conflict) {
	r.StartDate = conflict.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = conflict.EndDate.Format(constant.DateOnlyFormat)
	r.Status = conflict.Status.String()
}

func FromConflicts(conflicts []resModel.Conflict) []ConflictResponse {
	res := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		res[i].FromModel(c)
	}

	return res
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

func (r *AvailabilityResponse) FromModels(conflicts []resModel.Conflict) {
	r.Available = len(conflicts) == 0
	r.Conflicts = FromConflicts(conflicts)
}

type PriceMismatch struct {
	Expected int64 `json:"expected"`
	Received int64 `json:"received"`
}

type DistanceDetails struct {
	Status     distanceModel.Status `json:"status"`
	DistanceKm *float64             `json:"distanceKm,omitempty"`
	MaxKm      float64              `json:"maxKm"`
}

func (d *DistanceDetails) FromModel(result distanceModel.Result) {
	d.Status = result.Status
	d.DistanceKm = result.DistanceKm
	d.MaxKm = result.MaxKm
}

type ReservationResponse struct {
	ID               string   `json:"id"`
	ProductID        string   `json:"productId"`
	ProductName      string   `json:"productName"`
	CategoryID       string   `json:"categoryId"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	StartTime        *string  `json:"startTime"`
	EndTime          *string  `json:"endTime"`
	Delivery         bool     `json:"delivery"`
	City             string   `json:"city"`
	Address          string   `json:"address"`
	DistanceKm       *float64 `json:"distanceKm"`
	DistanceStatus   string   `json:"distanceStatus"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Company          string   `json:"company"`
	Notes            string   `json:"notes"`
	Days             int      `json:"days"`
	BasePrice        int64    `json:"basePrice"`
	DeliveryFee      int64    `json:"deliveryFee"`
	WeekendPickupFee int64    `json:"weekendPickupFee"`
	TotalPrice       int64    `json:"totalPrice"`
	Status           string   `json:"status"`
	ReminderSentAt   *string  `json:"reminderSentAt"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m resModel.Reservation) {
	r.ID = m.ID
	r.ProductID = m.ProductID
	r.ProductName = m.ProductName
	r.CategoryID = m.CategoryID
	r.StartDate = m.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = m.EndDate.Format(constant.DateOnlyFormat)
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.Delivery = m.Delivery
	r.City = m.City
	r.Address = m.Address
	r.DistanceKm = m.DistanceKm
	r.DistanceStatus = string(m.DistanceStatus)
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Company = m.Company
	r.Notes = m.Notes
	r.Days = m.Days
	r.BasePrice = m.BasePrice
	r.DeliveryFee = m.DeliveryFee
	r.WeekendPickupFee = m.WeekendPickupFee
	r.TotalPrice = m.TotalPrice
	r.Status = m.Status.String()

	if m.ReminderSentAt != nil {
		sent := timezone.Format(*m.ReminderSentAt, constant.DateFormat)
		r.ReminderSentAt = &sent
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []resModel.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, m := range models {
		r.Reservations[i].FromModel(m)
	}
}

// ListFilter holds the admin list query string.
type ListFilter struct {
	Status    string `json:"status"    validate:"omitempty,reservation_status"`
	ProductID string `json:"productId" validate:"omitempty,max=100"`
	From      string `json:"from"      validate:"omitempty,date"`
	To        string `json:"to"        validate:"omitempty,date"`
}

// ToFilterGroup selects reservations by status and product, and those whose
// pickup falls in [From, To).
func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: resModel.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: resModel.TableName})
	}

	if f.ProductID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: resModel.FieldProductID, Value: f.ProductID, Operator: gDto.FilterOperatorEq, Table: resModel.TableName})
	}

	if f.From != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "from", Field: resModel.FieldStartDate, Value: f.From, Operator: gDto.FilterOperatorGreaterEq, Table: resModel.TableName})
	}

	if f.To != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "to", Field: resModel.FieldStartDate, Value: f.To, Operator: gDto.FilterOperatorLess, Table: resModel.TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

// DueReminderFilter selects confirmed reservations picked up on day that were not reminded yet.
func DueReminderFilter(day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: resModel.FieldStatus, Value: resModel.StatusConfirmed.String(), Operator: gDto.FilterOperatorEq, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldStartDate, Value: day.Format(constant.DateOnlyFormat), Operator: gDto.FilterOperatorEq, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldReminderSentAt, Operator: gDto.FilterIsNull, Table: resModel.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func optional(value string) *string {
	if value == constant.Empty {
		return nil
	}

	return &value
}
